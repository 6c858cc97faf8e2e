package builder

import (
	"context"
	"log/slog"
	"strings"

	"go.dw1.io/regextoolbox/quantifier"
)

// Logger receives one message per builder operation, formatted as
// "<prefix>: <operation>: <appended text>", for example
//
//	RegexBuilder: text("world", ZeroOrOne): (?:world)?
type Logger interface {
	Log(message string)
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(message string)

// Log calls f(message).
func (f LoggerFunc) Log(message string) { f(message) }

// SlogLogger returns a Logger writing each message to l at the given level.
func SlogLogger(l *slog.Logger, level slog.Level) Logger {
	return LoggerFunc(func(message string) {
		l.Log(context.Background(), level, message)
	})
}

func (b *Builder) log(operation, fragment string) {
	if b.logger == nil {
		return
	}

	b.logger.Log(b.prefix + ": " + operation + ": " + fragment)
}

// call renders an operation the way it was invoked, e.g.
// `anyOf("cat", "dog", OneOrMore)`. String arguments are quoted verbatim.
func call(name string, q quantifier.Quantifier, args ...string) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('"')
		sb.WriteString(a)
		sb.WriteByte('"')
	}
	if q != nil {
		if len(args) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(q.Name())
	}
	sb.WriteByte(')')

	return sb.String()
}
