package email

import "errors"

// Error variables define email operation failures. Provider adapters wrap
// them with detail via errors.Join so callers can branch on the sentinel.
var (
	ErrFailedToSend  = errors.New("failed to send email")
	ErrInvalidConfig = errors.New("invalid email configuration")
	ErrInvalidParams = errors.New("invalid email parameters")
)
