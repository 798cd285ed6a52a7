package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender dispatches a rendered notification email. Implementations live in
// integration/email; DevSender covers local development.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams carries one rendered notification.
type SendParams struct {
	To      string
	Subject string
	HTML    string
	Text    string // optional plain-text alternative
	Tag     string // provider-side tag, e.g. the notification event key
}

// Validate checks the parameters before any provider call so a broken
// notification fails with a clear error instead of a provider rejection.
func (p SendParams) Validate() error {
	if p.To == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !isValidEmail(p.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.HTML) == "" {
		return fmt.Errorf("%w: HTML body is required", ErrInvalidParams)
	}
	return nil
}

// emailRegex is a simple regex for validating email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(addr string) bool {
	return emailRegex.MatchString(addr)
}
