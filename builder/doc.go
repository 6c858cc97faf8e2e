// Package builder assembles regular expressions from named, human-readable
// operations instead of raw pattern syntax.
//
// Calls are chained on a [Builder] and finished with [Builder.Build], which
// compiles the pattern through [go.dw1.io/regextoolbox/regexp]:
//
//	re, err := builder.New().
//		StartOfString().
//		Text("cat", quantifier.Exactly(2)).
//		Digit(quantifier.OneOrMore()).
//		EndOfString().
//		Build(builder.IgnoreCase)
//	// re.String() == `^(?:cat){2}\d+$`
//
// Literal text is escaped, so Text("a*b") matches "a*b" and nothing else.
// When a quantifier follows anything longer than a single character it is
// wrapped in a non-capturing group first, so Text("cat", OneOrMore) repeats
// the whole word.
//
// The same operations are available through callbacks that open and close
// groups for you:
//
//	re, err := builder.Regex(func(b *builder.Builder) {
//		b.Group(func(b *builder.Builder) {
//			b.Digit(quantifier.Between(1, 3)).Text(".")
//		}, quantifier.Exactly(3))
//		b.Digit(quantifier.Between(1, 3))
//	})
//
// Errors from unbalanced StartGroup/EndGroup calls are recorded on the
// builder: [Builder.Err] reports the first one immediately, and the builder
// ignores further operations until [Builder.Reset]. A Builder is not safe for
// concurrent use; build each pattern on its own instance.
package builder
