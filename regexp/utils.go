package regexp

import "strings"

// pcreOnly lists substrings that mark a pattern as needing PCRE2/Perl
// features, based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = [][]string{
	// Tokens and constructs
	{
		// Lookahead/lookbehind assertions (atomic and non-atomic)
		"(?=", "(?!", "(?<=", "(?<!",
		"(*pla:", "(*positive_lookahead:",
		"(*nla:", "(*negative_lookahead:",
		"(*plb:", "(*positive_lookbehind:",
		"(*nlb:", "(*negative_lookbehind:",
		"(?*", "(*napla:", "(*non_atomic_positive_lookahead:",
		"(?<*", "(*naplb:", "(*non_atomic_positive_lookbehind:",
		// Backtracking control verbs
		"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
		// Atomic groups
		"(?>", "(*atomic:",
		// Branch reset group
		"(?|",
		// Conditional group
		"(?(",
		// Comment
		"(?#",
		// Recursion/subroutine calls
		"(?R)", "(?P>", "(?&",
	},
	// Escapes and character types
	{
		`(?C`,      // callout
		`\h`, `\H`, // horizontal whitespace
		`\v`, `\V`, // vertical whitespace
		`\R`,       // newline sequence
		`\X`,       // Unicode extended grapheme cluster
		`\K`,       // set reported start of match
		`\e`,       // escape character
		`\o{`,      // octal code
		`\x{`,      // hex code (Go only supports \xhh)
	},
	// Backreferences
	{`\g`, `\k<`, `\k'`, `\k{`, `(?P=`},
	// Anchors (Go supports ^ and $ only)
	{`\A`, `\Z`, `\z`, `\G`},
}

// needsPCRE checks if the pattern contains PCRE2-only features. Unicode
// property classes and "(?<name>" groups are RE2 syntax and stay on coregex.
func needsPCRE(pattern string) bool {
	for _, group := range pcreOnly {
		for _, v := range group {
			if strings.Contains(pattern, v) {
				return true
			}
		}
	}

	// Check for backreferences: \1, \2, ... (Go does not support these)
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '\\' {
			if !escaped && i+1 < len(pattern) {
				next := pattern[i+1]
				if next >= '1' && next <= '9' {
					return true
				}
			}
			escaped = !escaped
		} else {
			escaped = false
		}
	}

	// Named capturing groups
	//
	// NOTE(dwisiswant0): Go and coregex accept (?P<name>...) and
	// (?<name>...), but not (?'name'...).
	if strings.Contains(pattern, "(?'") {
		return true
	}

	return false
}

// regexp2 tests \b against Unicode word characters even in RE2 mode, while
// its \w is ASCII there. These spell RE2's boundaries out over \w.
const (
	wordBoundary    = `(?:(?<=\w)(?!\w)|(?<!\w)(?=\w))`
	nonWordBoundary = `(?:(?<=\w)(?=\w)|(?<!\w)(?!\w))`
)

// asciiBoundaries rewrites \b and \B outside character classes and \Q...\E
// quotes into their \w lookaround forms.
func asciiBoundaries(pattern string) string {
	if !strings.Contains(pattern, `\b`) && !strings.Contains(pattern, `\B`) {
		return pattern
	}

	var sb strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			next := pattern[i+1]
			switch {
			case !inClass && next == 'b':
				sb.WriteString(wordBoundary)
			case !inClass && next == 'B':
				sb.WriteString(nonWordBoundary)
			case !inClass && next == 'Q':
				end := strings.Index(pattern[i+2:], `\E`)
				if end < 0 {
					sb.WriteString(pattern[i:])
					return sb.String()
				}
				sb.WriteString(pattern[i : i+2+end+2])
				i += end + 3
				continue
			default:
				sb.WriteByte(c)
				sb.WriteByte(next)
			}
			i++
			continue
		case c == '[' && !inClass:
			inClass = true
			sb.WriteByte(c)
			// "]" first in a class is literal.
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				sb.WriteByte('^')
				i++
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				sb.WriteByte(']')
				i++
			}
			continue
		case c == '[' && inClass && i+1 < len(pattern) && pattern[i+1] == ':':
			// [:alpha:] inside a class
			if end := strings.Index(pattern[i:], ":]"); end >= 0 {
				sb.WriteString(pattern[i : i+end+2])
				i += end + 1
				continue
			}
		case c == ']' && inClass:
			inClass = false
		}
		sb.WriteByte(c)
	}

	return sb.String()
}
