// Package escape converts raw text into pattern fragments that match the text
// verbatim.
package escape

import (
	"strings"

	"github.com/coregx/coregex"
)

var classReplacer = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`-`, `\-`,
)

// Literal escapes s so that it matches itself when used as pattern text.
// Every character of `\?.+*^$()[]{}|` is prefixed with a backslash in a single
// pass, so backslashes inserted for one character are never escaped again.
// The input is assumed to be unescaped: `\.` becomes `\\\.`.
func Literal(s string) string {
	return coregex.QuoteMeta(s)
}

// CharacterClass escapes s for use between the brackets of a character
// class. Backslashes, brackets and "-" are escaped in a single pass, plus a
// leading "^" that would otherwise negate the class; "." or "*" are already
// literal there. "[" is escaped so "[:alpha:]" stays literal.
func CharacterClass(s string) string {
	s = classReplacer.Replace(s)
	if strings.HasPrefix(s, "^") {
		s = `\` + s
	}

	return s
}
