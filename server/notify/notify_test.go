package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Daskott/launchpad/server/models"
	"github.com/Daskott/launchpad/shared"
	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	testMailConfig = shared.MailConfig{
		Transport: "log",
		Sender:    "noreply@example.com",
		Recipient: "operator@example.com",
	}

	testSubmission = models.ContactSubmission{
		BaseModel:   models.BaseModel{ID: 7},
		Name:        "Ada",
		Email:       "ada@example.com",
		PhoneNumber: "5551234567",
		Description: "Interested in internship",
	}
)

type notifierStub struct {
	calls int
	err   error
}

func (n *notifierStub) Notify(ctx context.Context, submission models.ContactSubmission) error {
	n.calls++
	return n.err
}

type smsSenderStub struct {
	to, msg string
	err     error
}

func (s *smsSenderStub) SendMessage(to, msg string) error {
	s.to, s.msg = to, msg
	return s.err
}

type postmarkSenderStub struct {
	sent     postmark.Email
	response postmark.EmailResponse
	err      error
}

func (p *postmarkSenderStub) SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error) {
	p.sent = email
	return p.response, p.err
}

func TestNewMessageContainsAllFields(t *testing.T) {
	message := NewMessage("noreply@example.com", "operator@example.com", testSubmission)

	assert.Equal(t, "noreply@example.com", message.From)
	assert.Equal(t, "operator@example.com", message.To)
	assert.Equal(t, SUBJECT, message.Subject)
	for _, value := range []string{"Name: Ada", "Email: ada@example.com", "Phone Number: 5551234567", "Description: Interested in internship"} {
		assert.Contains(t, message.Body, value)
	}
}

func TestBuildMailMsg(t *testing.T) {
	msg, err := buildMailMsg(NewMessage("noreply@example.com", "operator@example.com", testSubmission))
	require.Nil(t, err)

	buff := new(bytes.Buffer)
	_, err = msg.WriteTo(buff)
	require.Nil(t, err)

	raw := buff.String()
	assert.Contains(t, raw, "operator@example.com")
	assert.Contains(t, raw, SUBJECT)
	assert.Contains(t, raw, "Phone Number: 5551234567")
}

func TestBuildMailMsgInvalidSender(t *testing.T) {
	_, err := buildMailMsg(Message{From: "not an address", To: "operator@example.com"})
	assert.NotNil(t, err)
}

func TestFanoutNotifiesEveryNotifier(t *testing.T) {
	failing := &notifierStub{err: errors.New("smtp down")}
	healthy := &notifierStub{}

	err := Fanout{failing, healthy}.Notify(context.Background(), testSubmission)

	assert.EqualError(t, err, "smtp down")
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, healthy.calls, "Should still notify after a failure")
}

func TestSMSNotifier(t *testing.T) {
	sender := &smsSenderStub{}
	notifier := NewSMSNotifier(sender, "+15550000000")

	err := notifier.Notify(context.Background(), testSubmission)
	assert.Nil(t, err)
	assert.Equal(t, "+15550000000", sender.to)
	assert.Contains(t, sender.msg, "ada@example.com")

	sender.err = errors.New("twilio unavailable")
	err = notifier.Notify(context.Background(), testSubmission)
	assert.ErrorContains(t, err, "twilio unavailable")
}

func TestPostmarkNotifier(t *testing.T) {
	sender := &postmarkSenderStub{}
	notifier := &PostmarkNotifier{client: sender, config: testMailConfig}

	err := notifier.Notify(context.Background(), testSubmission)
	assert.Nil(t, err)
	assert.Equal(t, "operator@example.com", sender.sent.To)
	assert.Equal(t, "noreply@example.com", sender.sent.From)
	assert.Contains(t, sender.sent.TextBody, "Description: Interested in internship")

	sender.response = postmark.EmailResponse{ErrorCode: 300, Message: "Invalid email request"}
	err = notifier.Notify(context.Background(), testSubmission)
	assert.ErrorContains(t, err, "Invalid email request")
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	notifier := NewLogNotifier(testMailConfig, zap.New(core).Sugar())

	err := notifier.Notify(context.Background(), testSubmission)
	assert.Nil(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].ContextMap()["body"], "Name: Ada")
}

func TestNewPicksTransport(t *testing.T) {
	testCases := []struct {
		description string
		config      shared.ServerConfig
		check       func(t *testing.T, notifier Notifier, err error)
	}{
		{
			"Should build log notifier",
			shared.ServerConfig{Mail: testMailConfig},
			func(t *testing.T, notifier Notifier, err error) {
				assert.Nil(t, err)
				assert.IsType(t, &LogNotifier{}, notifier)
			},
		},
		{
			"Should build smtp notifier",
			shared.ServerConfig{Mail: shared.MailConfig{Transport: "smtp"}},
			func(t *testing.T, notifier Notifier, err error) {
				assert.Nil(t, err)
				assert.IsType(t, &SMTPNotifier{}, notifier)
			},
		},
		{
			"Should fan out to sms when twilio is enabled",
			shared.ServerConfig{Mail: testMailConfig, Twilio: shared.TwilioConfig{Enabled: true, OperatorNumber: "+15550000000"}},
			func(t *testing.T, notifier Notifier, err error) {
				assert.Nil(t, err)
				if assert.IsType(t, Fanout{}, notifier) {
					assert.Len(t, notifier.(Fanout), 2)
				}
			},
		},
		{
			"Should reject unknown transport",
			shared.ServerConfig{Mail: shared.MailConfig{Transport: "pigeon"}},
			func(t *testing.T, notifier Notifier, err error) {
				assert.NotNil(t, err)
			},
		},
	}

	for _, tcase := range testCases {
		t.Run(tcase.description, func(t *testing.T) {
			notifier, err := New(tcase.config, zap.NewNop().Sugar())
			tcase.check(t, notifier, err)
		})
	}
}
