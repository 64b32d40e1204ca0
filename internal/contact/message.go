// Package contact delivers contact form submissions by mail and exposes the
// HTTP endpoint the form posts to.
package contact

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	cosmicerrors "github.com/alexisbeaulieu97/cosmicui/pkg/errors"
)

// Messages shown to the person filling in the form.
const (
	MsgMissingFields  = "Missing required fields"
	MsgInvalidEmail   = "Please enter a valid email address."
	MsgInvalidBody    = "Invalid request body"
	MsgDeliveryFailed = "Failed to send email. Please try again later."
	MsgSent           = "Email sent successfully!"
)

var (
	// ErrMissingFields is returned when name, email or message is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidEmail is returned when the reply address is malformed.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Message is one contact form submission.
type Message struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" validate:"required"`
}

var (
	validateOnce sync.Once
	validateInst *validator.Validate
)

func messageValidator() *validator.Validate {
	validateOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Normalize trims surrounding whitespace from every field.
func (m Message) Normalize() Message {
	return Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Subject: strings.TrimSpace(m.Subject),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate reports missing fields before a malformed email, so an empty form
// always yields ErrMissingFields.
func (m Message) Validate() error {
	err := messageValidator().Struct(m.Normalize())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return cosmicerrors.NewValidationError(strings.ToLower(fe.Field()), MsgMissingFields, ErrMissingFields)
		}
	}
	return cosmicerrors.NewValidationError("email", MsgInvalidEmail, ErrInvalidEmail)
}

// UserMessage returns the text to show for a Validate error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingFields):
		return MsgMissingFields
	case errors.Is(err, ErrInvalidEmail):
		return MsgInvalidEmail
	default:
		return MsgDeliveryFailed
	}
}
