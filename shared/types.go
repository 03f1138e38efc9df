package shared

import "time"

type ServerConfig struct {
	Launchpad LaunchpadConfig `mapstructure:"launchpad" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Mail      MailConfig      `mapstructure:"mail" validate:"required"`
	Twilio    TwilioConfig    `mapstructure:"twilio"`
}

type LaunchpadConfig struct {
	SecretKey     string         `mapstructure:"secretKey" validate:"required"`
	SecureCookies bool           `mapstructure:"secureCookies"`
	Listener      ListenerConfig `mapstructure:"listener" validate:"required"`
}

type ListenerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"required,min=1,max=65535"`
}

type DatabaseConfig struct {
	Driver     string `mapstructure:"driver" validate:"omitempty,oneof=sqlite mysql"`
	DSN        string `mapstructure:"dsn"`
	Dir        string `mapstructure:"dir"`
	PassPhrase string `mapstructure:"passPhrase"`
}

type MailConfig struct {
	Transport string         `mapstructure:"transport" validate:"required,oneof=smtp postmark log"`
	Sender    string         `mapstructure:"sender" validate:"required,email"`
	Recipient string         `mapstructure:"recipient" validate:"required,email"`
	SMTP      SMTPConfig     `mapstructure:"smtp"`
	Postmark  PostmarkConfig `mapstructure:"postmark"`
}

type SMTPConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	UseTLS   bool          `mapstructure:"useTLS"`
	UseSSL   bool          `mapstructure:"useSSL"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type PostmarkConfig struct {
	ServerToken  string `mapstructure:"serverToken"`
	AccountToken string `mapstructure:"accountToken"`
}

type TwilioConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	AccountSid          string `mapstructure:"accountSid"`
	AuthToken           string `mapstructure:"authToken"`
	MessagingServiceSid string `mapstructure:"messagingServiceSid"`
	OperatorNumber      string `mapstructure:"operatorNumber" validate:"omitempty,e164"`
}
