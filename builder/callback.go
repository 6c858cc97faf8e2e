package builder

import (
	"go.dw1.io/regextoolbox/quantifier"
	"go.dw1.io/regextoolbox/regexp"
)

// Group adds a capture group containing whatever fn adds, then ends it with
// the optional quantifier.
func (b *Builder) Group(fn func(*Builder), q ...quantifier.Quantifier) *Builder {
	return b.StartGroup().Apply(fn).EndGroup(q...)
}

// NonCapturingGroup adds a non-capturing group containing whatever fn adds.
func (b *Builder) NonCapturingGroup(fn func(*Builder), q ...quantifier.Quantifier) *Builder {
	return b.StartNonCapturingGroup().Apply(fn).EndGroup(q...)
}

// NamedGroup adds a named capture group containing whatever fn adds.
func (b *Builder) NamedGroup(name string, fn func(*Builder), q ...quantifier.Quantifier) *Builder {
	return b.StartNamedGroup(name).Apply(fn).EndGroup(q...)
}

// Apply calls fn with b, unless an error has already been recorded, and
// returns b. It lets reusable building steps take part in a chain:
//
//	builder.New(builder.WithLogger(l)).Apply(steps).Build()
func (b *Builder) Apply(fn func(*Builder)) *Builder {
	if fn != nil && b.err == nil {
		fn(b)
	}

	return b
}

// Regex runs fn against a new Builder and builds the result with the given
// options.
func Regex(fn func(*Builder), opts ...RegexOption) (*regexp.Regexp, error) {
	return New().Apply(fn).Build(opts...)
}

// Pattern runs fn against a new Builder and returns the validated pattern
// text.
func Pattern(fn func(*Builder)) (string, error) {
	return New().Apply(fn).BuildPattern()
}
