package postmark

// Config holds Postmark API credentials and sender identity. Sender and
// support addresses establish the From and Reply-To headers on every
// notification.
type Config struct {
	ServerToken   string `env:"POSTMARK_SERVER_TOKEN,required"`
	AccountToken  string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
	MessageStream string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
	SenderEmail   string `env:"SENDER_EMAIL,required"`
	SupportEmail  string `env:"SUPPORT_EMAIL,required"`
}
