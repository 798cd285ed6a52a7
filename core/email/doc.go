// Package email defines the delivery contract for rendered notifications.
//
// The Sender interface abstracts the provider; integration/email holds the
// Postmark and SMTP implementations, and DevSender writes emails to disk for
// local development. SendParams validation runs before any provider call so
// misconfigured notifications fail with sentinel errors (ErrInvalidParams)
// rather than opaque provider rejections.
//
//	sender := email.NewDevSender("./dev_emails")
//	err := sender.Send(ctx, email.SendParams{
//		To:      "candidate@example.com",
//		Subject: "Interview scheduled",
//		HTML:    renderedBody,
//		Tag:     "interview.scheduled",
//	})
package email
