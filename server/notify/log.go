package notify

import (
	"context"

	"github.com/Daskott/launchpad/server/models"
	"github.com/Daskott/launchpad/shared"
	"go.uber.org/zap"
)

// LogNotifier writes the operator email to the log instead of sending it.
// Meant for local development.
type LogNotifier struct {
	config shared.MailConfig
	logg   *zap.SugaredLogger
}

func NewLogNotifier(config shared.MailConfig, logg *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{config: config, logg: logg}
}

func (n *LogNotifier) Notify(ctx context.Context, submission models.ContactSubmission) error {
	message := NewMessage(n.config.Sender, n.config.Recipient, submission)

	n.logg.Infow("Contact notification",
		"from", message.From,
		"to", message.To,
		"subject", message.Subject,
		"body", message.Body,
	)

	return nil
}
