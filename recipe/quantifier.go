package recipe

import (
	"fmt"

	"go.dw1.io/regextoolbox/quantifier"
)

// Quantifier is the decoded form of a step's quantifier.
type Quantifier struct {
	// Kind is one of zeroOrMore, oneOrMore, zeroOrOne, exactly, atLeast,
	// noMoreThan or between.
	Kind string `json:"kind" yaml:"kind"`
	// N is the count for exactly, atLeast and noMoreThan, and the lower
	// bound for between.
	N any `json:"n,omitempty" yaml:"n,omitempty"`
	// M is the upper bound for between.
	M any `json:"m,omitempty" yaml:"m,omitempty"`
	// Lazy asks for as few repetitions as possible. Not allowed with
	// exactly.
	Lazy bool `json:"lazy,omitempty" yaml:"lazy,omitempty"`
}

func (q *Quantifier) build() (quantifier.Quantifier, error) {
	var out quantifier.Quantifier

	switch q.Kind {
	case "zeroOrMore":
		out = quantifier.ZeroOrMore()
	case "oneOrMore":
		out = quantifier.OneOrMore()
	case "zeroOrOne":
		out = quantifier.ZeroOrOne()
	case "exactly", "atLeast", "noMoreThan":
		n, err := q.count("n", q.N)
		if err != nil {
			return nil, err
		}

		switch q.Kind {
		case "exactly":
			out = quantifier.Exactly(n)
		case "atLeast":
			out = quantifier.AtLeast(n)
		default:
			out = quantifier.NoMoreThan(n)
		}
	case "between":
		n, err := q.count("n", q.N)
		if err != nil {
			return nil, err
		}

		m, err := q.count("m", q.M)
		if err != nil {
			return nil, err
		}

		if m < n {
			return nil, fmt.Errorf("%w: between needs n <= m, got %d > %d", ErrBadQuantifier, n, m)
		}

		out = quantifier.Between(n, m)
	case "":
		return nil, fmt.Errorf("%w: missing kind", ErrBadQuantifier)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrBadQuantifier, q.Kind)
	}

	if !q.Lazy {
		return out, nil
	}

	lazy, ok := quantifier.Lazy(out)
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot be lazy", ErrBadQuantifier, q.Kind)
	}

	return lazy, nil
}

func (q *Quantifier) count(field string, v any) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: %s needs %q", ErrBadQuantifier, q.Kind, field)
	}

	n, err := count(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrBadQuantifier, field, err)
	}

	return n, nil
}
