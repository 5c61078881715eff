package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmission_Validate(t *testing.T) {
	assert.NoError(t, Submission{Name: "A", Email: "a@b.com", Message: "hi"}.Validate())

	for name, s := range map[string]Submission{
		"empty name":       {Name: "", Email: "a@b.com", Message: "hi"},
		"empty email":      {Name: "A", Email: "", Message: "hi"},
		"empty message":    {Name: "A", Email: "a@b.com", Message: ""},
		"whitespace name":  {Name: "  ", Email: "a@b.com", Message: "hi"},
		"everything empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.Validate(), ErrValidation)
		})
	}
}

func TestErrors(t *testing.T) {
	var err error = &DeliveryError{Message: "quota exceeded"}
	assert.ErrorIs(t, err, ErrDelivery)
	assert.Equal(t, "quota exceeded", err.Error())

	cause := errors.New("template exploded")
	err = &UnknownError{Err: cause}
	assert.ErrorIs(t, err, ErrUnknown)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrDelivery)
	assert.Equal(t, "failed to send email", (&UnknownError{}).Error())
}

func TestFormState_HappyPath(t *testing.T) {
	f := NewFormState()
	assert.Equal(t, FormIdle, f.Status())
	assert.False(t, f.InputsDisabled())

	values := Submission{Name: "A", Email: "a@b.com", Message: "hi"}
	require.NoError(t, f.Edit(values))
	require.NoError(t, f.Submit())
	assert.True(t, f.InputsDisabled())
	assert.ErrorIs(t, f.Edit(Submission{}), ErrInvalidTransition)

	require.NoError(t, f.Succeed())
	assert.Equal(t, FormSuccess, f.Status())
	assert.Equal(t, Submission{}, f.Values())

	require.NoError(t, f.Reset())
	assert.Equal(t, FormIdle, f.Status())
}

func TestFormState_FailureKeepsValues(t *testing.T) {
	f := NewFormState()
	values := Submission{Name: "A", Email: "a@b.com", Message: "hi"}
	require.NoError(t, f.Edit(values))
	require.NoError(t, f.Submit())
	require.NoError(t, f.Fail())

	assert.Equal(t, FormFailed, f.Status())
	assert.False(t, f.InputsDisabled())
	assert.Equal(t, values, f.Values())

	require.NoError(t, f.Reset())
	require.NoError(t, f.Submit())
}

func TestFormState_InvalidTransitions(t *testing.T) {
	f := NewFormState()
	assert.ErrorIs(t, f.Succeed(), ErrInvalidTransition)
	assert.ErrorIs(t, f.Fail(), ErrInvalidTransition)
	assert.ErrorIs(t, f.Reset(), ErrInvalidTransition)

	require.NoError(t, f.Submit())
	assert.ErrorIs(t, f.Submit(), ErrInvalidTransition)
	assert.ErrorIs(t, f.Reset(), ErrInvalidTransition)
}
