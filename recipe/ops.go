package recipe

import (
	"go.dw1.io/regextoolbox/builder"
	"go.dw1.io/regextoolbox/quantifier"
)

type opKind int

const (
	plain  opKind = iota // no argument
	valued               // Step.Value
	listed               // Step.Values
	named                // Step.Name
	nested               // Step.Steps, wrapped in a group
)

type (
	plainFunc  = func(*builder.Builder, ...quantifier.Quantifier) *builder.Builder
	valuedFunc = func(*builder.Builder, string, ...quantifier.Quantifier) *builder.Builder
)

type op struct {
	kind       opKind
	quantified bool
	plain      plainFunc
	valued     valuedFunc
}

func atom(f plainFunc) op { return op{kind: plain, quantified: true, plain: f} }

func value(f valuedFunc) op { return op{kind: valued, quantified: true, valued: f} }

func bare(f func(*builder.Builder) *builder.Builder) op {
	return op{kind: plain, plain: func(b *builder.Builder, _ ...quantifier.Quantifier) *builder.Builder {
		return f(b)
	}}
}

func group(start func(*builder.Builder) *builder.Builder) op {
	o := bare(start)
	o.kind, o.quantified = nested, true
	return o
}

var ops = map[string]op{
	"text":               value((*builder.Builder).Text),
	"regexText":          value((*builder.Builder).RegexText),
	"anyCharacterFrom":   value((*builder.Builder).AnyCharacterFrom),
	"anyCharacterExcept": value((*builder.Builder).AnyCharacterExcept),
	"anyOf":              {kind: listed, quantified: true},

	"anyCharacter":       atom((*builder.Builder).AnyCharacter),
	"whitespace":         atom((*builder.Builder).Whitespace),
	"nonWhitespace":      atom((*builder.Builder).NonWhitespace),
	"possibleWhitespace": bare((*builder.Builder).PossibleWhitespace),
	"space":              atom((*builder.Builder).Space),
	"tab":                atom((*builder.Builder).Tab),
	"lineFeed":           atom((*builder.Builder).LineFeed),
	"carriageReturn":     atom((*builder.Builder).CarriageReturn),
	"digit":              atom((*builder.Builder).Digit),
	"nonDigit":           atom((*builder.Builder).NonDigit),
	"letter":             atom((*builder.Builder).Letter),
	"nonLetter":          atom((*builder.Builder).NonLetter),
	"uppercaseLetter":    atom((*builder.Builder).UppercaseLetter),
	"lowercaseLetter":    atom((*builder.Builder).LowercaseLetter),
	"letterOrDigit":      atom((*builder.Builder).LetterOrDigit),
	"nonLetterOrDigit":   atom((*builder.Builder).NonLetterOrDigit),
	"hexDigit":           atom((*builder.Builder).HexDigit),
	"uppercaseHexDigit":  atom((*builder.Builder).UppercaseHexDigit),
	"lowercaseHexDigit":  atom((*builder.Builder).LowercaseHexDigit),
	"nonHexDigit":        atom((*builder.Builder).NonHexDigit),
	"wordCharacter":      atom((*builder.Builder).WordCharacter),
	"nonWordCharacter":   atom((*builder.Builder).NonWordCharacter),

	"startOfString": bare((*builder.Builder).StartOfString),
	"endOfString":   bare((*builder.Builder).EndOfString),
	"wordBoundary":  bare((*builder.Builder).WordBoundary),

	"startGroup":             bare((*builder.Builder).StartGroup),
	"startNonCapturingGroup": bare((*builder.Builder).StartNonCapturingGroup),
	"startNamedGroup":        {kind: named},
	"endGroup":               atom((*builder.Builder).EndGroup),

	"group":             group((*builder.Builder).StartGroup),
	"nonCapturingGroup": group((*builder.Builder).StartNonCapturingGroup),
	"namedGroup":        {kind: nested, quantified: true},
}
