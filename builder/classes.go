package builder

import "go.dw1.io/regextoolbox/quantifier"

// AnyCharacter adds an element matching any character except a line break.
func (b *Builder) AnyCharacter(q ...quantifier.Quantifier) *Builder {
	return b.atom("anyCharacter", ".", q)
}

// Whitespace adds an element matching a single whitespace character.
func (b *Builder) Whitespace(q ...quantifier.Quantifier) *Builder {
	return b.atom("whitespace", `\s`, q)
}

// NonWhitespace adds an element matching a single non-whitespace character.
func (b *Builder) NonWhitespace(q ...quantifier.Quantifier) *Builder {
	return b.atom("nonWhitespace", `\S`, q)
}

// PossibleWhitespace adds an element matching any amount of whitespace,
// including none.
func (b *Builder) PossibleWhitespace() *Builder {
	return b.atom("possibleWhitespace", `\s*`, nil)
}

// Space adds an element matching a single space character.
func (b *Builder) Space(q ...quantifier.Quantifier) *Builder {
	return b.atom("space", " ", q)
}

// Tab adds an element matching a single tab character.
func (b *Builder) Tab(q ...quantifier.Quantifier) *Builder {
	return b.atom("tab", `\t`, q)
}

// LineFeed adds an element matching a line feed.
func (b *Builder) LineFeed(q ...quantifier.Quantifier) *Builder {
	return b.atom("lineFeed", `\n`, q)
}

// CarriageReturn adds an element matching a carriage return.
func (b *Builder) CarriageReturn(q ...quantifier.Quantifier) *Builder {
	return b.atom("carriageReturn", `\r`, q)
}

// Digit adds an element matching a single decimal digit.
func (b *Builder) Digit(q ...quantifier.Quantifier) *Builder {
	return b.atom("digit", `\d`, q)
}

// NonDigit adds an element matching any character but a decimal digit.
func (b *Builder) NonDigit(q ...quantifier.Quantifier) *Builder {
	return b.atom("nonDigit", `\D`, q)
}

// Letter adds an element matching a letter in any alphabet.
func (b *Builder) Letter(q ...quantifier.Quantifier) *Builder {
	return b.atom("letter", `\p{L}`, q)
}

// NonLetter adds an element matching any character but a letter.
func (b *Builder) NonLetter(q ...quantifier.Quantifier) *Builder {
	return b.atom("nonLetter", `\P{L}`, q)
}

// UppercaseLetter adds an element matching an upper-case letter.
func (b *Builder) UppercaseLetter(q ...quantifier.Quantifier) *Builder {
	return b.atom("uppercaseLetter", `\p{Lu}`, q)
}

// LowercaseLetter adds an element matching a lower-case letter.
func (b *Builder) LowercaseLetter(q ...quantifier.Quantifier) *Builder {
	return b.atom("lowercaseLetter", `\p{Ll}`, q)
}

// LetterOrDigit adds an element matching a letter or a decimal digit.
func (b *Builder) LetterOrDigit(q ...quantifier.Quantifier) *Builder {
	return b.atom("letterOrDigit", `[\p{L}0-9]`, q)
}

// NonLetterOrDigit adds an element matching anything but a letter or a
// decimal digit.
func (b *Builder) NonLetterOrDigit(q ...quantifier.Quantifier) *Builder {
	return b.atom("nonLetterOrDigit", `[^\p{L}0-9]`, q)
}

// HexDigit adds an element matching a hexadecimal digit (0-9, a-f, A-F).
func (b *Builder) HexDigit(q ...quantifier.Quantifier) *Builder {
	return b.atom("hexDigit", `[0-9A-Fa-f]`, q)
}

// UppercaseHexDigit adds an element matching 0-9 or A-F.
func (b *Builder) UppercaseHexDigit(q ...quantifier.Quantifier) *Builder {
	return b.atom("uppercaseHexDigit", `[0-9A-F]`, q)
}

// LowercaseHexDigit adds an element matching 0-9 or a-f.
func (b *Builder) LowercaseHexDigit(q ...quantifier.Quantifier) *Builder {
	return b.atom("lowercaseHexDigit", `[0-9a-f]`, q)
}

// NonHexDigit adds an element matching anything but a hexadecimal digit.
func (b *Builder) NonHexDigit(q ...quantifier.Quantifier) *Builder {
	return b.atom("nonHexDigit", `[^0-9A-Fa-f]`, q)
}

// WordCharacter adds an element matching a letter, decimal digit or
// underscore.
func (b *Builder) WordCharacter(q ...quantifier.Quantifier) *Builder {
	return b.atom("wordCharacter", `[\p{L}0-9_]`, q)
}

// NonWordCharacter adds an element matching anything but a letter, decimal
// digit or underscore.
func (b *Builder) NonWordCharacter(q ...quantifier.Quantifier) *Builder {
	return b.atom("nonWordCharacter", `[^\p{L}0-9_]`, q)
}
