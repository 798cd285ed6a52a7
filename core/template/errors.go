package template

import "errors"

// Error variables describe template parse failures surfaced by the strict
// evaluation mode. The lenient mode never returns them; it degrades to
// leaving unresolved tags literal in the output.
var (
	ErrMalformedTag        = errors.New("malformed conditional tag")
	ErrUnclosedConditional = errors.New("unclosed conditional tag")
	ErrIterationLimit      = errors.New("conditional iteration limit reached")
)
