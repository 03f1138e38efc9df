package notify

import (
	"context"
	"fmt"

	"github.com/Daskott/launchpad/server/models"
	"github.com/pkg/errors"
)

type smsSender interface {
	SendMessage(to, msg string) error
}

// SMSNotifier texts the operator a short alert for each submission
type SMSNotifier struct {
	client smsSender
	to     string
}

func NewSMSNotifier(client smsSender, operatorNumber string) *SMSNotifier {
	return &SMSNotifier{client: client, to: operatorNumber}
}

func (n *SMSNotifier) Notify(ctx context.Context, submission models.ContactSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf("New contact form submission from %s <%s>, %s",
		submission.Name, submission.Email, submission.PhoneNumber)

	if err := n.client.SendMessage(n.to, msg); err != nil {
		return errors.Wrap(err, "sms: send")
	}

	return nil
}
