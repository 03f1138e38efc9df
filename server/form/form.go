package form

import (
	"reflect"
	"strings"

	"github.com/Daskott/launchpad/server/models"
	"github.com/go-playground/validator"
)

const (
	Required      = "required"
	InvalidFormat = "invalid_format"
	InvalidLength = "invalid_length"
)

// ContactForm holds the raw values posted by the contact page
type ContactForm struct {
	Name    string `form:"name" validate:"notblank,max=25"`
	Email   string `form:"email" validate:"notblank,email"`
	PhoneNo string `form:"phoneno" validate:"notblank,len=10"`
	Desc    string `form:"desc" validate:"notblank"`
}

// Draft is a validated contact request that has not been persisted yet
type Draft struct {
	Name        string
	Email       string
	PhoneNumber string
	Description string
}

func (d Draft) Submission() *models.ContactSubmission {
	return &models.ContactSubmission{
		Name:        d.Name,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Description: d.Description,
	}
}

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

// For returns the error attached to field, if any
func (errs FieldErrors) For(field string) *FieldError {
	for i := range errs {
		if errs[i].Field == field {
			return &errs[i]
		}
	}
	return nil
}

// ByField is handy in templates, e.g. {{ with index .Errors "email" }}
func (errs FieldErrors) ByField() map[string]string {
	messages := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		messages[fieldErr.Field] = fieldErr.Message
	}
	return messages
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})

	_ = RegisterValidators(validate)
}

func RegisterValidators(validate *validator.Validate) error {
	return validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Validate checks every field of contactForm and reports all the fields that
// failed, one error per field.
func Validate(contactForm ContactForm) (*Draft, FieldErrors) {
	err := validate.Struct(contactForm)
	if err == nil {
		return &Draft{
			Name:        contactForm.Name,
			Email:       contactForm.Email,
			PhoneNumber: contactForm.PhoneNo,
			Description: contactForm.Desc,
		}, nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, FieldErrors{{Field: "", Code: InvalidFormat, Message: err.Error()}}
	}

	fieldErrs := FieldErrors{}
	for _, validationErr := range validationErrs {
		fieldErrs = append(fieldErrs, toFieldError(validationErr))
	}

	return nil, fieldErrs
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func toFieldError(validationErr validator.FieldError) FieldError {
	fieldErr := FieldError{Field: validationErr.Field()}

	switch validationErr.Tag() {
	case "required", "notblank":
		fieldErr.Code = Required
		fieldErr.Message = "This field is required."
	case "email":
		fieldErr.Code = InvalidFormat
		fieldErr.Message = "Invalid email address."
	case "len":
		fieldErr.Code = InvalidLength
		fieldErr.Message = "Field must be exactly " + validationErr.Param() + " characters long."
	case "max":
		fieldErr.Code = InvalidLength
		fieldErr.Message = "Field cannot be longer than " + validationErr.Param() + " characters."
	default:
		fieldErr.Code = InvalidFormat
		fieldErr.Message = "Invalid value."
	}

	return fieldErr
}
