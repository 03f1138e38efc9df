package notify

import (
	"context"
	"fmt"

	"github.com/Daskott/launchpad/server/models"
	"github.com/Daskott/launchpad/shared"
	"github.com/mrz1836/postmark"
	"github.com/pkg/errors"
)

const POSTMARK_TAG = "contact-submission"

type postmarkSender interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkNotifier emails the operator through the Postmark API
type PostmarkNotifier struct {
	client postmarkSender
	config shared.MailConfig
}

func NewPostmarkNotifier(config shared.MailConfig) *PostmarkNotifier {
	return &PostmarkNotifier{
		client: postmark.NewClient(config.Postmark.ServerToken, config.Postmark.AccountToken),
		config: config,
	}
}

func (n *PostmarkNotifier) Notify(ctx context.Context, submission models.ContactSubmission) error {
	message := NewMessage(n.config.Sender, n.config.Recipient, submission)

	resp, err := n.client.SendEmail(ctx, postmark.Email{
		From:     message.From,
		To:       message.To,
		Subject:  message.Subject,
		TextBody: message.Body,
		Tag:      POSTMARK_TAG,
	})
	if err != nil {
		return errors.Wrap(err, "postmark: send")
	}

	if resp.ErrorCode > 0 {
		return fmt.Errorf("postmark: error %d - %s", resp.ErrorCode, resp.Message)
	}

	return nil
}
