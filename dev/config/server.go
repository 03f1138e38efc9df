package config

// SERVER_YML is the config used in '--dev' mode. Emails are written to the log.
const SERVER_YML = `
launchpad:
  secretKey: "dev-secret-key-change-me"
  secureCookies: false
  listener:
    host: "localhost"
    port: 3000

database:
  driver: sqlite
  passPhrase: passphrase

mail:
  transport: log
  sender: "noreply@example.com"
  recipient: "operator@example.com"
  smtp:
    host: "smtp.gmail.com"
    port: 587
    username:
    password:
    useTLS: true
    useSSL: false
    timeout: 10s
  postmark:
    serverToken:
    accountToken:

twilio:
  enabled: false
  accountSid:
  authToken:
  messagingServiceSid:
  operatorNumber:
`
