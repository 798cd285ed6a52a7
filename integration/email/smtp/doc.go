// Package smtp implements the email.Sender interface over standard SMTP,
// for self-hosted deployments that cannot use a transactional provider.
//
// Three transport modes are supported via TLSMode: "starttls" (default),
// "tls" for direct TLS connections, and "plain" for unencrypted local
// relays. Messages with a plain-text alternative go out as
// multipart/alternative; otherwise the body is a single HTML part. Replies
// route to the configured support address.
package smtp
