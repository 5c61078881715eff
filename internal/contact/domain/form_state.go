package domain

import "fmt"

type FormStatus string

const (
	FormIdle       FormStatus = "idle"
	FormSubmitting FormStatus = "submitting"
	FormSuccess    FormStatus = "success"
	FormFailed     FormStatus = "failed"
)

// FormState tracks the contact form through
// Idle -> Submitting -> {Success, Failed} -> Idle.
type FormState struct {
	status FormStatus
	values Submission
}

func NewFormState() *FormState {
	return &FormState{status: FormIdle}
}

func (f *FormState) Status() FormStatus {
	return f.status
}

func (f *FormState) Values() Submission {
	return f.values
}

// InputsDisabled reports whether fields and the submit control are locked.
func (f *FormState) InputsDisabled() bool {
	return f.status == FormSubmitting
}

// Edit replaces the entered values. Not allowed while submitting.
func (f *FormState) Edit(values Submission) error {
	if f.status == FormSubmitting {
		return f.invalid("edit")
	}
	f.values = values
	return nil
}

func (f *FormState) Submit() error {
	if f.status != FormIdle {
		return f.invalid("submit")
	}
	f.status = FormSubmitting
	return nil
}

// Succeed clears the entered values.
func (f *FormState) Succeed() error {
	if f.status != FormSubmitting {
		return f.invalid("succeed")
	}
	f.status = FormSuccess
	f.values = Submission{}
	return nil
}

// Fail keeps the entered values so the user can resubmit.
func (f *FormState) Fail() error {
	if f.status != FormSubmitting {
		return f.invalid("fail")
	}
	f.status = FormFailed
	return nil
}

// Reset returns to Idle once the outcome has been shown.
func (f *FormState) Reset() error {
	if f.status != FormSuccess && f.status != FormFailed {
		return f.invalid("reset")
	}
	f.status = FormIdle
	return nil
}

func (f *FormState) invalid(action string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, f.status)
}
