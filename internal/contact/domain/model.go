package domain

import "strings"

// Submission is what the contact form posts.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (s Submission) Trimmed() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

// Validate fails with ErrValidation when any field is blank.
func (s Submission) Validate() error {
	t := s.Trimmed()
	if t.Name == "" || t.Email == "" || t.Message == "" {
		return ErrValidation
	}
	return nil
}

// Notification is the outbound email handed to the mail provider.
type Notification struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// SendResult is what the provider reports for an accepted message.
type SendResult struct {
	ID string `json:"id"`
}
