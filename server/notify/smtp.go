package notify

import (
	"context"
	"time"

	"github.com/Daskott/launchpad/server/models"
	"github.com/Daskott/launchpad/shared"
	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
)

const DEFAULT_SMTP_TIMEOUT = 10 * time.Second

// SMTPNotifier emails the operator through a fixed SMTP server
type SMTPNotifier struct {
	config shared.MailConfig
}

func NewSMTPNotifier(config shared.MailConfig) *SMTPNotifier {
	return &SMTPNotifier{config: config}
}

func (n *SMTPNotifier) Notify(ctx context.Context, submission models.ContactSubmission) error {
	msg, err := buildMailMsg(NewMessage(n.config.Sender, n.config.Recipient, submission))
	if err != nil {
		return errors.Wrap(err, "smtp: build message")
	}

	client, err := mail.NewClient(n.config.SMTP.Host, n.clientOptions()...)
	if err != nil {
		return errors.Wrap(err, "smtp: create client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "smtp: send")
	}

	return nil
}

func (n *SMTPNotifier) clientOptions() []mail.Option {
	smtpConfig := n.config.SMTP

	timeout := smtpConfig.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_SMTP_TIMEOUT
	}

	opts := []mail.Option{
		mail.WithPort(smtpConfig.Port),
		mail.WithTimeout(timeout),
	}

	switch {
	case smtpConfig.UseSSL:
		opts = append(opts, mail.WithSSL())
	case smtpConfig.UseTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if smtpConfig.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(smtpConfig.Username),
			mail.WithPassword(smtpConfig.Password),
		)
	}

	return opts
}

func buildMailMsg(message Message) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(message.From); err != nil {
		return nil, err
	}

	if err := msg.To(message.To); err != nil {
		return nil, err
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextPlain, message.Body)

	return msg, nil
}
