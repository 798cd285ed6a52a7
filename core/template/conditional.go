package template

import (
	"fmt"
	"strings"
)

// Control tag markers. The dialect is the subset of Django template syntax
// that Oneo notification templates use: conditionals only, no loops, no
// filters.
const (
	openIf    = "{% if "
	closeTag  = "%}"
	elseTag   = "{% else %}"
	endifTag  = "{% endif %}"
	orToken   = " or "
	exprOpen  = "{{"
	exprClose = "}}"
)

const (
	defaultPrefix    = "branding."
	defaultMaxPasses = 100
)

// Evaluator resolves {% if %}/{% else %}/{% endif %} conditionals embedded in
// notification HTML against a variable context. It is stateless between
// calls and safe for concurrent use.
type Evaluator struct {
	prefix    string
	maxPasses int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithPrefix overrides the variable prefix stripped from condition operands
// and expression names before context lookup. Default is "branding.".
func WithPrefix(prefix string) Option {
	return func(e *Evaluator) {
		e.prefix = prefix
	}
}

// WithMaxPasses overrides the cap on conditional resolution passes.
// The cap guarantees termination against malformed or adversarial input.
func WithMaxPasses(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxPasses = n
		}
	}
}

// New creates an Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		prefix:    defaultPrefix,
		maxPasses: defaultMaxPasses,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate resolves all conditionals in html against vars. It never fails:
// malformed nesting stops further processing and the string accumulated so
// far is returned with the remaining tags left literal. This is the right
// behavior for best-effort preview rendering.
func (e *Evaluator) Evaluate(html string, vars map[string]any) string {
	out, _ := e.evaluate(html, vars)
	return out
}

// EvaluateStrict behaves like Evaluate but reports malformed input instead
// of silently degrading. The returned string is always usable; on error it
// holds the output accumulated before processing stopped.
func (e *Evaluator) EvaluateStrict(html string, vars map[string]any) (string, error) {
	return e.evaluate(html, vars)
}

func (e *Evaluator) evaluate(html string, vars map[string]any) (string, error) {
	for pass := 0; pass < e.maxPasses; pass++ {
		start := strings.Index(html, openIf)
		if start < 0 {
			return html, nil
		}

		condEnd := strings.Index(html[start+len(openIf):], closeTag)
		if condEnd < 0 {
			return html, fmt.Errorf("%w: missing %q after position %d", ErrMalformedTag, closeTag, start)
		}
		cond := strings.TrimSpace(html[start+len(openIf) : start+len(openIf)+condEnd])
		body := start + len(openIf) + condEnd + len(closeTag)

		elseAt, endAt, err := matchBranches(html, body)
		if err != nil {
			return html, err
		}

		ifBranch := html[body:endAt]
		elseBranch := ""
		if elseAt >= 0 {
			ifBranch = html[body:elseAt]
			elseBranch = html[elseAt+len(elseTag) : endAt]
		}

		branch := elseBranch
		if e.condTrue(cond, vars) {
			branch = ifBranch
		}
		html = html[:start] + branch + html[endAt+len(endifTag):]
	}
	return html, fmt.Errorf("%w: %d passes", ErrIterationLimit, e.maxPasses)
}

// matchBranches scans forward from body tracking nesting depth and returns
// the position of the depth-zero {% else %} (or -1) and the matching
// {% endif %}. The scan walks the original text, so tags inside a branch
// that will later be discarded still count for pairing, which is what makes
// nested conditionals inside a losing branch disappear wholesale without
// ever being evaluated.
func matchBranches(html string, body int) (elseAt, endAt int, err error) {
	depth := 0
	elseAt = -1
	for i := body; ; {
		pos, kind := nextControlTag(html, i)
		if pos < 0 {
			return -1, -1, fmt.Errorf("%w: no matching %q", ErrUnclosedConditional, endifTag)
		}
		switch kind {
		case tagIf:
			depth++
			i = pos + len(openIf)
		case tagElse:
			if depth == 0 && elseAt < 0 {
				elseAt = pos
			}
			i = pos + len(elseTag)
		case tagEndif:
			if depth == 0 {
				return elseAt, pos, nil
			}
			depth--
			i = pos + len(endifTag)
		}
	}
}

type tagKind int

const (
	tagIf tagKind = iota
	tagElse
	tagEndif
)

// nextControlTag locates the nearest control tag at or after position i.
// Returns -1 when no further control tags exist.
func nextControlTag(html string, i int) (int, tagKind) {
	rest := html[i:]
	pos := -1
	kind := tagIf
	if p := strings.Index(rest, openIf); p >= 0 {
		pos, kind = p, tagIf
	}
	if p := strings.Index(rest, elseTag); p >= 0 && (pos < 0 || p < pos) {
		pos, kind = p, tagElse
	}
	if p := strings.Index(rest, endifTag); p >= 0 && (pos < 0 || p < pos) {
		pos, kind = p, tagEndif
	}
	if pos < 0 {
		return -1, tagIf
	}
	return i + pos, kind
}

// condTrue evaluates a condition: either a single identifier or a
// disjunction joined by the literal token "or". Operands get a single trim
// and the configured prefix stripped before lookup; unknown names are falsy.
func (e *Evaluator) condTrue(cond string, vars map[string]any) bool {
	if strings.Contains(cond, orToken) {
		for _, operand := range strings.Split(cond, orToken) {
			if e.lookupTruthy(operand, vars) {
				return true
			}
		}
		return false
	}
	return e.lookupTruthy(cond, vars)
}

func (e *Evaluator) lookupTruthy(name string, vars map[string]any) bool {
	v, ok := vars[e.stripPrefix(name)]
	if !ok {
		return false
	}
	return truthy(v)
}

func (e *Evaluator) stripPrefix(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), e.prefix)
}

// truthy follows standard falsy rules: nil, false, empty string, and
// numeric zero are falsy; everything else is truthy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int8:
		return t != 0
	case int16:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case uint:
		return t != 0
	case uint8:
		return t != 0
	case uint16:
		return t != 0
	case uint32:
		return t != 0
	case uint64:
		return t != 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
