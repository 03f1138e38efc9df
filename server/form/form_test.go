package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validContactForm() ContactForm {
	return ContactForm{
		Name:    "Ada",
		Email:   "ada@example.com",
		PhoneNo: "5551234567",
		Desc:    "Interested in internship",
	}
}

func TestValidateAcceptsValidForm(t *testing.T) {
	draft, errs := Validate(validContactForm())

	assert.Nil(t, errs)
	assert.Equal(t, &Draft{
		Name:        "Ada",
		Email:       "ada@example.com",
		PhoneNumber: "5551234567",
		Description: "Interested in internship",
	}, draft)
}

func TestValidateFieldRules(t *testing.T) {
	testCases := []struct {
		description  string
		modify       func(f *ContactForm)
		field        string
		expectedCode string
	}{
		{"Should reject empty name", func(f *ContactForm) { f.Name = "" }, "name", Required},
		{"Should reject whitespace-only name", func(f *ContactForm) { f.Name = "   " }, "name", Required},
		{"Should reject name longer than 25 characters", func(f *ContactForm) { f.Name = strings.Repeat("a", 26) }, "name", InvalidLength},
		{"Should reject empty email", func(f *ContactForm) { f.Email = "" }, "email", Required},
		{"Should reject whitespace-only email", func(f *ContactForm) { f.Email = "   " }, "email", Required},
		{"Should reject malformed email", func(f *ContactForm) { f.Email = "ada-at-example.com" }, "email", InvalidFormat},
		{"Should reject empty phone number", func(f *ContactForm) { f.PhoneNo = "" }, "phoneno", Required},
		{"Should reject phone number of ten spaces", func(f *ContactForm) { f.PhoneNo = strings.Repeat(" ", 10) }, "phoneno", Required},
		{"Should reject 9 digit phone number", func(f *ContactForm) { f.PhoneNo = "555123456" }, "phoneno", InvalidLength},
		{"Should reject 11 digit phone number", func(f *ContactForm) { f.PhoneNo = "55512345678" }, "phoneno", InvalidLength},
		{"Should reject empty description", func(f *ContactForm) { f.Desc = "" }, "desc", Required},
	}

	for _, tcase := range testCases {
		t.Run(tcase.description, func(t *testing.T) {
			contactForm := validContactForm()
			tcase.modify(&contactForm)

			draft, errs := Validate(contactForm)
			assert.Nil(t, draft)
			assert.Len(t, errs, 1)

			fieldErr := errs.For(tcase.field)
			if assert.NotNil(t, fieldErr, "Expected an error for %q", tcase.field) {
				assert.Equal(t, tcase.expectedCode, fieldErr.Code)
				assert.NotEmpty(t, fieldErr.Message)
			}
		})
	}
}

func TestValidateReportsEveryInvalidField(t *testing.T) {
	draft, errs := Validate(ContactForm{})

	assert.Nil(t, draft)
	assert.Len(t, errs, 4)
	for _, field := range []string{"name", "email", "phoneno", "desc"} {
		fieldErr := errs.For(field)
		if assert.NotNil(t, fieldErr, "Expected an error for %q", field) {
			assert.Equal(t, Required, fieldErr.Code)
		}
	}
}

func TestValidatePhoneNumberOfExactlyTenCharactersPasses(t *testing.T) {
	contactForm := validContactForm()
	contactForm.PhoneNo = "0000000000"

	_, errs := Validate(contactForm)
	assert.Nil(t, errs.For("phoneno"))
}

func TestFieldErrorsByField(t *testing.T) {
	errs := FieldErrors{
		{Field: "email", Code: InvalidFormat, Message: "Invalid email address."},
		{Field: "desc", Code: Required, Message: "This field is required."},
	}

	assert.Equal(t, map[string]string{
		"email": "Invalid email address.",
		"desc":  "This field is required.",
	}, errs.ByField())
}

func TestDraftSubmission(t *testing.T) {
	draft := Draft{Name: "Ada", Email: "ada@example.com", PhoneNumber: "5551234567", Description: "Hi"}
	submission := draft.Submission()

	assert.Zero(t, submission.ID)
	assert.Equal(t, "Ada", submission.Name)
	assert.Equal(t, "ada@example.com", submission.Email)
	assert.Equal(t, "5551234567", submission.PhoneNumber)
	assert.Equal(t, "Hi", submission.Description)
}
