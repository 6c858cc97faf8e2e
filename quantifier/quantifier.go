package quantifier

import "strconv"

// Quantifier is a repetition suffix such as "*", "{2}" or "{1,3}?".
//
// The set of implementations is closed; values are immutable and can be
// shared freely.
type Quantifier interface {
	// String returns the suffix text appended after an element.
	String() string
	// Name describes the quantifier the way it was built, e.g. "Between(1, 3)"
	// or "ZeroOrMore.butAsFewAsPossible".
	Name() string

	sealed()
}

type suffix struct {
	text string
	name string
}

func (s suffix) String() string { return s.text }

func (s suffix) Name() string { return s.name }

func (suffix) sealed() {}

// Greedy is a quantifier that matches as many occurrences as possible.
type Greedy struct {
	suffix
	lazy suffix
}

// ButAsFewAsPossible returns the lazy form of g, which matches as few
// occurrences as possible.
func (g Greedy) ButAsFewAsPossible() Quantifier {
	return g.lazy
}

func greedy(text, name string) Greedy {
	return Greedy{
		suffix: suffix{text: text, name: name},
		lazy:   suffix{text: text + "?", name: name + ".butAsFewAsPossible"},
	}
}

// ZeroOrMore matches the preceding element zero or more times.
func ZeroOrMore() Greedy {
	return greedy("*", "ZeroOrMore")
}

// OneOrMore matches the preceding element one or more times.
func OneOrMore() Greedy {
	return greedy("+", "OneOrMore")
}

// ZeroOrOne matches the preceding element once or not at all.
func ZeroOrOne() Greedy {
	return greedy("?", "ZeroOrOne")
}

// Exactly matches exactly n occurrences of the preceding element.
func Exactly(n int) Quantifier {
	c := strconv.Itoa(n)
	return suffix{text: "{" + c + "}", name: "Exactly(" + c + ")"}
}

// AtLeast matches n or more occurrences of the preceding element.
func AtLeast(n int) Greedy {
	c := strconv.Itoa(n)
	return greedy("{"+c+",}", "AtLeast("+c+")")
}

// NoMoreThan matches between zero and n occurrences of the preceding element.
func NoMoreThan(n int) Greedy {
	c := strconv.Itoa(n)
	return greedy("{0,"+c+"}", "NoMoreThan("+c+")")
}

// Between matches between min and max occurrences of the preceding element.
func Between(min, max int) Greedy {
	lo, hi := strconv.Itoa(min), strconv.Itoa(max)
	return greedy("{"+lo+","+hi+"}", "Between("+lo+", "+hi+")")
}

// Lazy returns the lazy form of q. The second result is false when q has no
// lazy form, i.e. for [Exactly] and for quantifiers that are already lazy; q
// is then returned unchanged.
func Lazy(q Quantifier) (Quantifier, bool) {
	if g, ok := q.(Greedy); ok {
		return g.ButAsFewAsPossible(), true
	}

	return q, false
}

// Equal reports whether a and b render the same suffix text. A nil
// quantifier only equals another nil quantifier.
func Equal(a, b Quantifier) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.String() == b.String()
}
