// Package template resolves the conditional mini-language embedded in Oneo
// notification email templates.
//
// Templates are raw HTML interspersed with Django-style control tags:
//
//	{% if branding.logo_url %}
//	  <img src="{{ branding.logo_url }}">
//	{% else %}
//	  <h1>{{ branding.company_name }}</h1>
//	{% endif %}
//
// Conditions are a single identifier (optionally dotted) or a disjunction
// joined by the literal token "or". A fixed prefix (default "branding.") is
// stripped from every operand and expression name before context lookup.
// Truthiness follows standard falsy rules: nil, false, empty string, and
// numeric zero are falsy; unknown names are falsy.
//
// # Evaluation model
//
// The evaluator repeatedly locates the first {% if %} tag, pairs it with its
// {% endif %} by depth counting, splits the span at a depth-zero {% else %}
// when present, and replaces the whole span with the selected branch. The
// scan walks the original text, so a nested conditional inside a losing
// branch is discarded wholesale and never evaluated on its own. Passes are
// capped to guarantee termination against adversarial input.
//
// # Failure semantics
//
// Evaluate is total: malformed nesting stops further processing and the
// string accumulated so far is returned, remaining tags left literal. This
// feeds a best-effort visual preview, not a data pipeline. EvaluateStrict
// reports the parse failure instead for callers that need a diagnostic.
//
// # Usage
//
//	ev := template.New()
//	html := ev.Render(body, settings.Context())
//
// The evaluator holds no state between calls and is safe for concurrent use.
package template
