package builder

import (
	"go.dw1.io/regextoolbox/escape"
	"go.dw1.io/regextoolbox/quantifier"
	"go.dw1.io/regextoolbox/regexp"
)

// Builder assembles a regular expression one element at a time. Methods
// return the receiver so calls can be chained. Every method taking a
// trailing quantifier uses only the first one given.
//
// The zero value is ready to use and does not log.
type Builder struct {
	p      pattern
	err    error
	logger Logger
	prefix string
}

// New returns an empty Builder configured by opts.
func New(opts ...Option) *Builder {
	b := &Builder{prefix: DefaultLogPrefix}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build validates the pattern, compiles it with the given options and resets
// the builder so it can be reused.
//
// Build returns the error recorded by an earlier operation, an
// *UnterminatedGroupError while groups are open, or the engine's own syntax
// error. In every failure case the builder is left unchanged.
func (b *Builder) Build(opts ...RegexOption) (*regexp.Regexp, error) {
	src, err := b.source()
	if err != nil {
		return nil, err
	}

	re, err := regexp.CompileFlags(src, flags(opts))
	if err != nil {
		return nil, err
	}

	b.log("build()", src)
	b.p.reset()

	return re, nil
}

// BuildPattern is like Build but returns the validated pattern text without
// compiling it.
func (b *Builder) BuildPattern() (string, error) {
	src, err := b.source()
	if err != nil {
		return "", err
	}

	b.log("buildPattern()", src)
	b.p.reset()

	return src, nil
}

func (b *Builder) source() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	return b.p.source()
}

// Err returns the first error recorded by an operation, if any.
func (b *Builder) Err() error {
	return b.err
}

// Reset discards the pattern, open groups and any recorded error.
func (b *Builder) Reset() {
	b.p.reset()
	b.err = nil
}

// String returns the pattern text built so far.
func (b *Builder) String() string {
	return b.p.buf.String()
}

// Depth returns the number of groups started but not yet ended.
func (b *Builder) Depth() int {
	return b.p.open
}

// Text adds literal text. Regex special characters are escaped, so
// "Hello (world)" matches exactly that and does not open a group.
func (b *Builder) Text(text string, q ...quantifier.Quantifier) *Builder {
	if b.err != nil {
		return b
	}

	qq := first(q)
	b.log(call("text", qq, text), b.p.text(escape.Literal(text), qq))
	return b
}

// RegexText adds raw pattern text without escaping it. Only use this if
// you're comfortable with regex syntax: "Hello (world)" here matches
// "Hello world" and captures "world".
func (b *Builder) RegexText(text string, q ...quantifier.Quantifier) *Builder {
	if b.err != nil {
		return b
	}

	qq := first(q)
	b.log(call("regexText", qq, text), b.p.text(text, qq))
	return b
}

// AnyCharacterFrom adds a character class matching any of the given
// characters.
func (b *Builder) AnyCharacterFrom(characters string, q ...quantifier.Quantifier) *Builder {
	if b.err != nil {
		return b
	}

	qq := first(q)
	class := "[" + escape.CharacterClass(characters) + "]"
	b.log(call("anyCharacterFrom", qq, characters), b.p.atom(class, qq))
	return b
}

// AnyCharacterExcept adds a character class matching any character except
// the given ones.
func (b *Builder) AnyCharacterExcept(characters string, q ...quantifier.Quantifier) *Builder {
	if b.err != nil {
		return b
	}

	qq := first(q)
	class := "[^" + escape.CharacterClass(characters) + "]"
	b.log(call("anyCharacterExcept", qq, characters), b.p.atom(class, qq))
	return b
}

// AnyOf adds a group of alternatives matching any one of the given strings.
// An empty list adds nothing; a single string is added like Text.
func (b *Builder) AnyOf(strings []string, q ...quantifier.Quantifier) *Builder {
	if b.err != nil {
		return b
	}

	if len(strings) == 0 {
		b.log("anyOf()", "strings list is empty, so doing nothing")
		return b
	}

	qq := first(q)
	b.log(call("anyOf", qq, strings...), b.p.anyOf(strings, qq))
	return b
}

// StartOfString adds a zero-width anchor matching the start of the string,
// or of a line with the Multiline option.
func (b *Builder) StartOfString() *Builder {
	return b.atom("startOfString", "^", nil)
}

// EndOfString adds a zero-width anchor matching the end of the string, or
// of a line with the Multiline option.
func (b *Builder) EndOfString() *Builder {
	return b.atom("endOfString", "$", nil)
}

// WordBoundary adds a zero-width anchor matching the boundary between a word
// character and a non-word character or the start/end of the string.
func (b *Builder) WordBoundary() *Builder {
	return b.atom("wordBoundary", `\b`, nil)
}

// StartGroup starts a capture group. Groups let a quantifier apply to
// several elements and capture what they match. All groups must be ended
// with EndGroup before building.
func (b *Builder) StartGroup() *Builder {
	return b.start("startGroup()", "(")
}

// StartNonCapturingGroup starts a group that does not capture what it
// matches.
func (b *Builder) StartNonCapturingGroup() *Builder {
	return b.start("startNonCapturingGroup()", "(?:")
}

// StartNamedGroup starts a capture group that can also be looked up by name.
// The name is used verbatim; the regex engine rejects illegal names at build
// time.
func (b *Builder) StartNamedGroup(name string) *Builder {
	return b.start(call("startNamedGroup", nil, name), "(?<"+name+">")
}

// EndGroup ends the innermost group. Calling it with no group open records
// an *UnbalancedGroupError and leaves the pattern unchanged.
func (b *Builder) EndGroup(q ...quantifier.Quantifier) *Builder {
	if b.err != nil {
		return b
	}

	qq := first(q)
	fragment, err := b.p.end(qq)
	if err != nil {
		b.err = err
		return b
	}

	b.log(call("endGroup", qq), fragment)
	return b
}

func (b *Builder) start(operation, opening string) *Builder {
	if b.err != nil {
		return b
	}

	b.log(operation, b.p.start(opening))
	return b
}

func (b *Builder) atom(name, fragment string, q []quantifier.Quantifier) *Builder {
	if b.err != nil {
		return b
	}

	qq := first(q)
	b.log(call(name, qq), b.p.atom(fragment, qq))
	return b
}

func first(q []quantifier.Quantifier) quantifier.Quantifier {
	if len(q) == 0 {
		return nil
	}

	return q[0]
}
