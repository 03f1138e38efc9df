package submission

import (
	"context"
	"errors"

	"github.com/Daskott/launchpad/server/form"
	"github.com/Daskott/launchpad/server/logger"
	"github.com/Daskott/launchpad/server/models"
	"github.com/Daskott/launchpad/server/notify"
)

type Outcome int

const (
	Acknowledged Outcome = iota
	RejectedValidation
	RejectedDuplicate
	FailedPersistIntegrity
	FailedPersistUnexpected
)

var logg = logger.NewLogger()

func (o Outcome) String() string {
	switch o {
	case Acknowledged:
		return "acknowledged"
	case RejectedValidation:
		return "rejected-validation"
	case RejectedDuplicate:
		return "rejected-duplicate"
	case FailedPersistIntegrity:
		return "failed-persist-integrity"
	case FailedPersistUnexpected:
		return "failed-persist-unexpected"
	}
	return "unknown"
}

// Result is what a single contact submission ended with.
// Submission is set once the record is persisted.
type Result struct {
	Outcome     Outcome
	FieldErrors form.FieldErrors
	Submission  *models.ContactSubmission
	Notified    bool
}

type Service struct {
	store    models.ContactStore
	notifier notify.Notifier
}

func NewService(store models.ContactStore, notifier notify.Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// Submit validates contactForm, rejects emails that are already registered,
// persists the new submission and then notifies the operator. The record is
// kept even when the notification fails.
func (s *Service) Submit(ctx context.Context, contactForm form.ContactForm) Result {
	draft, fieldErrs := form.Validate(contactForm)
	if fieldErrs != nil {
		logg.Infof("Contact form rejected: %v", fieldErrs.ByField())
		return Result{Outcome: RejectedValidation, FieldErrors: fieldErrs}
	}

	_, err := s.store.FindByEmail(ctx, draft.Email)
	if err == nil {
		logg.Infof("Contact submission rejected, email already registered")
		return Result{Outcome: RejectedDuplicate}
	}

	if !errors.Is(err, models.ErrNotFound) {
		logg.Errorf("Contact submission lookup failed: %v", err)
		return Result{Outcome: FailedPersistUnexpected}
	}

	submission := draft.Submission()
	err = s.store.Insert(ctx, submission)
	if errors.Is(err, models.ErrDuplicateEmail) {
		logg.Warnf("Contact submission insert hit integrity conflict: %v", err)
		return Result{Outcome: FailedPersistIntegrity}
	}

	if err != nil {
		logg.Errorf("Contact submission insert failed: %v", err)
		return Result{Outcome: FailedPersistUnexpected}
	}

	result := Result{Outcome: Acknowledged, Submission: submission}

	err = s.notifier.Notify(ctx, *submission)
	if err != nil {
		logg.Errorf("Notification for contact submission id=%v failed: %v", submission.ID, err)
		return result
	}

	result.Notified = true
	return result
}
