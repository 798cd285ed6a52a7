package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const defaultSeparator = "-"

type options struct {
	separator string
	maxLength int
}

// Option configures slug generation.
type Option func(*options)

// WithSeparator overrides the separator character. Default is "-".
func WithSeparator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// MaxLength caps the slug at n runes. Truncation never ends on a separator.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// stripDiacritics decomposes to NFD, drops combining marks, and recomposes,
// so "Café" becomes "Cafe" and "München" becomes "Munchen".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts arbitrary text into a URL- and filename-safe slug.
func Make(s string, opts ...Option) string {
	o := options{separator: defaultSeparator}
	for _, opt := range opts {
		opt(&o)
	}

	normalized, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		normalized = s
	}
	normalized = strings.ToLower(normalized)

	var b strings.Builder
	b.Grow(len(normalized))
	pendingSep := false
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteString(o.separator)
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	out := b.String()
	if o.maxLength > 0 {
		out = truncate(out, o.maxLength, o.separator)
	}
	return out
}

func truncate(s string, max int, sep string) string {
	if len([]rune(s)) <= max {
		return s
	}
	s = string([]rune(s)[:max])
	return strings.TrimSuffix(s, sep)
}
