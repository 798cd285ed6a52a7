// Package postmark implements the email.Sender interface over Postmark's
// transactional API.
//
// Every send carries the configured sender identity, routes replies to the
// support address, and tags the message with the notification event key so
// delivery stats group per event in the Postmark dashboard. Open tracking
// is enabled; link tracking is HTML-only to avoid rewriting plain-text
// bodies.
//
//	sender := postmark.MustNew(cfg)
//	err := sender.Send(ctx, email.SendParams{
//		To:      "candidate@example.com",
//		Subject: "Interview scheduled",
//		HTML:    body,
//		Tag:     "interview.scheduled",
//	})
//
// Postmark API failures are wrapped with email.ErrFailedToSend; branch on
// the sentinel with errors.Is.
package postmark
