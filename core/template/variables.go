package template

import (
	"fmt"
	"strings"
)

// Interpolate replaces {{ name }} expression tags with values from vars.
// The configured prefix is stripped from names before lookup, matching the
// conditional operand rules. Unknown variables keep their tag literal so
// template editors can spot the gap in a preview. An unterminated {{ is
// treated as literal text.
func (e *Evaluator) Interpolate(s string, vars map[string]any) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		open := strings.Index(s[i:], exprOpen)
		if open < 0 {
			b.WriteString(s[i:])
			break
		}
		open += i
		end := strings.Index(s[open+len(exprOpen):], exprClose)
		if end < 0 {
			b.WriteString(s[i:])
			break
		}
		end += open + len(exprOpen)

		b.WriteString(s[i:open])
		name := s[open+len(exprOpen) : end]
		if v, ok := vars[e.stripPrefix(name)]; ok {
			b.WriteString(stringify(v))
		} else {
			b.WriteString(s[open : end+len(exprClose)])
		}
		i = end + len(exprClose)
	}
	return b.String()
}

// Render runs the full preview pipeline: conditionals first, so variables
// inside discarded branches are never rendered, then interpolation.
func (e *Evaluator) Render(html string, vars map[string]any) string {
	return e.Interpolate(e.Evaluate(html, vars), vars)
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
