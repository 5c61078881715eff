package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("project not found")
	ErrFetch            = errors.New("failed to load data")
	ErrDecode           = errors.New("record could not be decoded")
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrUnknownList      = errors.New("unknown list kind")
)

// FetchError reports a failed collection or document retrieval.
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Collection, e.Err)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
