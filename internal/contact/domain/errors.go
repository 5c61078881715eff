package domain

import "errors"

var (
	ErrValidation = errors.New("name, email, and message are required")
	ErrDelivery   = errors.New("mail delivery failed")
	ErrUnknown    = errors.New("failed to send email")

	ErrInvalidTransition = errors.New("invalid form state transition")
)

// ProviderError is an error reported by the mail provider itself.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// DeliveryError carries the provider's message verbatim.
type DeliveryError struct {
	Message string
}

func (e *DeliveryError) Error() string {
	return e.Message
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrDelivery
}

// UnknownError wraps anything the relay did not expect.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	if e.Err == nil {
		return ErrUnknown.Error()
	}
	return e.Err.Error()
}

func (e *UnknownError) Is(target error) bool {
	return target == ErrUnknown
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}
