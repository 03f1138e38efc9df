package notify

import (
	"context"
	"fmt"

	"github.com/Daskott/launchpad/server/models"
	"github.com/Daskott/launchpad/server/twilio"
	"github.com/Daskott/launchpad/shared"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const SUBJECT = "New Contact Form Submission"

// Notifier tells the site operator about a new contact submission
type Notifier interface {
	Notify(ctx context.Context, submission models.ContactSubmission) error
}

// Message is the email sent to the operator for one submission
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

func NewMessage(from, to string, submission models.ContactSubmission) Message {
	return Message{
		From:    from,
		To:      to,
		Subject: SUBJECT,
		Body:    messageBody(submission),
	}
}

// Fanout notifies through every notifier, even when some of them fail
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, submission models.ContactSubmission) error {
	var err error
	for _, notifier := range f {
		err = multierr.Append(err, notifier.Notify(ctx, submission))
	}
	return err
}

// New builds the notifier for config.Mail.Transport, fanned out with an sms
// alert when twilio is enabled.
func New(config shared.ServerConfig, logg *zap.SugaredLogger) (Notifier, error) {
	var mailer Notifier

	switch config.Mail.Transport {
	case "smtp":
		mailer = NewSMTPNotifier(config.Mail)
	case "postmark":
		mailer = NewPostmarkNotifier(config.Mail)
	case "log":
		mailer = NewLogNotifier(config.Mail, logg)
	default:
		return nil, fmt.Errorf("unsupported mail transport %q", config.Mail.Transport)
	}

	if !config.Twilio.Enabled {
		return mailer, nil
	}

	return Fanout{
		mailer,
		NewSMSNotifier(twilio.NewClient(config.Twilio), config.Twilio.OperatorNumber),
	}, nil
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func messageBody(submission models.ContactSubmission) string {
	return fmt.Sprintf(`New contact form submission:

Name: %s
Email: %s
Phone Number: %s
Description: %s
`,
		submission.Name,
		submission.Email,
		submission.PhoneNumber,
		submission.Description,
	)
}
