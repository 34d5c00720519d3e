package service

import (
	"regexp"
	"strings"

	"oldenfyre/internal/domain"
	apperrors "oldenfyre/internal/errors"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	phoneStrip   = strings.NewReplacer(" ", "", "-", "")
)

// FormValidator checks a normalized order form. Every rule is evaluated;
// nothing short-circuits, so one pass reports every invalid field. Details
// are emitted in domain.FormFieldOrder so the client can focus the first
// invalid field. altPhone and notes are optional and never validated.
type FormValidator struct{}

func NewFormValidator() *FormValidator {
	return &FormValidator{}
}

// Validate returns nil when the form is valid. The same form always yields
// the same error set.
func (v *FormValidator) Validate(form domain.OrderForm) *apperrors.ValidationError {
	messages := map[string]string{}

	if form.FirstName == "" {
		messages["firstName"] = "First name is required"
	}
	if form.LastName == "" {
		messages["lastName"] = "Last name is required"
	}
	if form.Email == "" {
		messages["email"] = "Email is required"
	} else if !emailPattern.MatchString(form.Email) {
		messages["email"] = "Invalid email format"
	}
	if form.Phone == "" {
		messages["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(phoneStrip.Replace(form.Phone)) {
		messages["phone"] = "Invalid phone number"
	}
	if form.Address == "" {
		messages["address"] = "Address is required"
	}
	if form.City == "" {
		messages["city"] = "City is required"
	}
	if form.PostalCode == "" {
		messages["postalCode"] = "Postal code is required"
	}
	if form.Country == "" {
		messages["country"] = "Country is required"
	}

	if len(messages) == 0 {
		return nil
	}

	details := make([]apperrors.ValidationDetail, 0, len(messages))
	for _, field := range domain.FormFieldOrder {
		if msg, ok := messages[field]; ok {
			details = append(details, apperrors.ValidationDetail{
				Field:   field,
				Message: msg,
			})
		}
	}

	return apperrors.NewValidationError("validation failed", details...)
}
