package shared

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Validate checks the tag rules on config plus the rules that depend on
// which database driver, mail transport or sms alert is selected.
func (config *ServerConfig) Validate() error {
	err := validator.New().Struct(config)
	if err != nil {
		return fmt.Errorf("invalid server config:\n%v", err)
	}

	var errs []string

	switch config.Database.Driver {
	case "mysql":
		if config.Database.DSN == "" {
			errs = append(errs, "'database.dsn' is required for the mysql driver")
		}
	default:
		if config.Database.PassPhrase == "" {
			errs = append(errs, "'database.passPhrase' is required for the sqlite driver")
		}
	}

	switch config.Mail.Transport {
	case "smtp":
		if config.Mail.SMTP.Host == "" || config.Mail.SMTP.Port == 0 {
			errs = append(errs, "'mail.smtp.host' and 'mail.smtp.port' are required for the smtp transport")
		}
		if config.Mail.SMTP.UseTLS && config.Mail.SMTP.UseSSL {
			errs = append(errs, "'mail.smtp.useTLS' and 'mail.smtp.useSSL' cannot both be set")
		}
	case "postmark":
		if config.Mail.Postmark.ServerToken == "" {
			errs = append(errs, "'mail.postmark.serverToken' is required for the postmark transport")
		}
	}

	if config.Twilio.Enabled {
		if config.Twilio.AccountSid == "" || config.Twilio.AuthToken == "" ||
			config.Twilio.MessagingServiceSid == "" || config.Twilio.OperatorNumber == "" {
			errs = append(errs, "'twilio' requires accountSid, authToken, messagingServiceSid & operatorNumber when enabled")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid server config:\n%v", strings.Join(errs, "\n"))
	}

	return nil
}
