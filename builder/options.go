package builder

import (
	"strconv"

	"go.dw1.io/regextoolbox/regexp"
)

// DefaultLogPrefix is the prefix of every log line unless WithLogPrefix says
// otherwise.
const DefaultLogPrefix = "RegexBuilder"

// Option configures a Builder.
type Option func(*Builder)

// WithLogger attaches l to the builder. Every operation then emits one line
// describing the call and the text it appended. A nil logger disables
// logging.
func WithLogger(l Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithLogPrefix sets the prefix of log lines.
func WithLogPrefix(prefix string) Option {
	return func(b *Builder) {
		b.prefix = prefix
	}
}

// RegexOption changes how a built pattern matches. It has no effect on the
// pattern text itself.
type RegexOption int

const (
	// IgnoreCase makes the regex case-insensitive.
	IgnoreCase RegexOption = iota + 1
	// Multiline makes StartOfString and EndOfString also match at line
	// breaks within a multi-line string.
	Multiline
)

func (o RegexOption) String() string {
	switch o {
	case IgnoreCase:
		return "IgnoreCase"
	case Multiline:
		return "Multiline"
	default:
		return "RegexOption(" + strconv.Itoa(int(o)) + ")"
	}
}

func flags(opts []RegexOption) regexp.Flag {
	var f regexp.Flag
	for _, o := range opts {
		switch o {
		case IgnoreCase:
			f |= regexp.IgnoreCase
		case Multiline:
			f |= regexp.Multiline
		}
	}

	return f
}
