package server

import (
	"html/template"
	"net/http"

	"github.com/Daskott/launchpad/server/form"
	"github.com/Daskott/launchpad/server/submission"
	"github.com/gorilla/csrf"
)

const (
	SUCCESS_FLASH = "success"
	WARNING_FLASH = "warning"
	DANGER_FLASH  = "danger"
)

const (
	SUCCESS_MSG          = "Thanks for contacting us. We will get back to you soon!"
	DUPLICATE_EMAIL_MSG  = "This email is already registered. Please use a different email."
	INTEGRITY_ERROR_MSG  = "An error occurred. Please try again."
	UNEXPECTED_ERROR_MSG = "An unexpected error occurred. Please try again later."
	APPLICATION_ERR_MSG  = "Sorry an application error has occured. Please try again later."
)

type Flash struct {
	Category string
	Message  string
}

type PageData struct {
	Title     string
	Active    string
	Flashes   []Flash
	CSRFField template.HTML
	Form      form.ContactForm
	Errors    map[string]string
}

func (app *App) page(name, title string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		app.render(rw, r, name, PageData{Title: title, Active: name}, http.StatusOK)
	}
}

func (app *App) contactForm(rw http.ResponseWriter, r *http.Request) {
	app.render(rw, r, "contact", PageData{Title: "Contact", Active: "contact"}, http.StatusOK)
}

func (app *App) contactSubmit(rw http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		logg.Infof("contactSubmit: unreadable form: %v", err)
		http.Error(rw, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	contactForm := form.ContactForm{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		PhoneNo: r.PostForm.Get("phoneno"),
		Desc:    r.PostForm.Get("desc"),
	}

	result := app.submissions.Submit(r.Context(), contactForm)
	if result.Outcome == submission.RejectedValidation {
		app.render(rw, r, "contact", PageData{
			Title:  "Contact",
			Active: "contact",
			Form:   contactForm,
			Errors: result.FieldErrors.ByField(),
		}, http.StatusOK)
		return
	}

	app.addFlash(rw, r, flashFor(result.Outcome))
	http.Redirect(rw, r, "/contact", http.StatusSeeOther)
}

func (app *App) csrfFailure(rw http.ResponseWriter, r *http.Request) {
	logg.Infof("CSRF check failed for %v %v: %v", r.Method, r.RequestURI, csrf.FailureReason(r))
	http.Error(rw, http.StatusText(http.StatusForbidden), http.StatusForbidden)
}

func flashFor(outcome submission.Outcome) Flash {
	switch outcome {
	case submission.Acknowledged:
		return Flash{Category: SUCCESS_FLASH, Message: SUCCESS_MSG}
	case submission.RejectedDuplicate:
		return Flash{Category: WARNING_FLASH, Message: DUPLICATE_EMAIL_MSG}
	case submission.FailedPersistIntegrity:
		return Flash{Category: DANGER_FLASH, Message: INTEGRITY_ERROR_MSG}
	}
	return Flash{Category: DANGER_FLASH, Message: UNEXPECTED_ERROR_MSG}
}
