// Package redis provides Redis client initialization with connection
// verification plus the preview cache backed by it.
//
// Connect validates the connection URL, pings with bounded retries, and
// returns a ready client. PreviewCache implements preview.Cache with
// namespaced keys and TTL-based expiry; a cache miss is reported as
// found=false, never as an error.
package redis
