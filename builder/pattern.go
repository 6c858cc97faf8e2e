package builder

import (
	"strings"
	"unicode/utf8"

	"go.dw1.io/regextoolbox/escape"
	"go.dw1.io/regextoolbox/quantifier"
)

// pattern accumulates fragments and tracks how many groups are open. Every
// append returns the exact text it added, quantifier included.
type pattern struct {
	buf  strings.Builder
	open int
}

// atom appends a fragment that matches a single position, such as `\d` or a
// character class, so a quantifier can follow it directly.
func (p *pattern) atom(fragment string, q quantifier.Quantifier) string {
	return p.write(fragment + suffix(q))
}

// text appends a raw fragment. With a quantifier, anything other than a
// single character is wrapped in a non-capturing group first so the suffix
// applies to the whole fragment and not just its last element.
func (p *pattern) text(fragment string, q quantifier.Quantifier) string {
	if q == nil {
		return p.write(fragment)
	}

	if utf8.RuneCountInString(fragment) == 1 {
		return p.atom(fragment, q)
	}

	return p.write("(?:" + fragment + ")" + q.String())
}

// anyOf appends an alternation of the escaped candidates. An empty list is a
// no-op and a single candidate is appended as plain text.
func (p *pattern) anyOf(candidates []string, q quantifier.Quantifier) string {
	switch len(candidates) {
	case 0:
		return ""
	case 1:
		return p.text(escape.Literal(candidates[0]), q)
	}

	safe := make([]string, len(candidates))
	for i, c := range candidates {
		safe[i] = escape.Literal(c)
	}

	return p.write("(?:" + strings.Join(safe, "|") + ")" + suffix(q))
}

// start opens a group with the given opening syntax.
func (p *pattern) start(opening string) string {
	p.open++
	return p.write(opening)
}

// end closes the innermost open group.
func (p *pattern) end(q quantifier.Quantifier) (string, error) {
	if p.open == 0 {
		return "", &UnbalancedGroupError{Pattern: p.buf.String()}
	}

	p.open--
	return p.write(")" + suffix(q)), nil
}

// source returns the finished pattern text, or an error while groups remain
// open. It does not modify p.
func (p *pattern) source() (string, error) {
	if p.open != 0 {
		return "", &UnterminatedGroupError{Pattern: p.buf.String(), Count: p.open}
	}

	return p.buf.String(), nil
}

func (p *pattern) reset() {
	p.buf.Reset()
	p.open = 0
}

func (p *pattern) write(s string) string {
	p.buf.WriteString(s)
	return s
}

func suffix(q quantifier.Quantifier) string {
	if q == nil {
		return ""
	}

	return q.String()
}
