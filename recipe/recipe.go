package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"go.dw1.io/regextoolbox/builder"
	"go.dw1.io/regextoolbox/quantifier"
	"go.dw1.io/regextoolbox/regexp"
)

// Recipe is a regex described as a list of builder steps.
type Recipe struct {
	// Options names the regex options to build with: "ignoreCase" and
	// "multiline".
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
	Steps   []Step   `json:"steps" yaml:"steps"`
}

// Step is a single builder operation.
type Step struct {
	Op string `json:"op" yaml:"op"`
	// Value is the argument of text, regexText, anyCharacterFrom and
	// anyCharacterExcept. It may be the empty string.
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
	// Values are the alternatives of anyOf.
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
	// Name is the group name of namedGroup and startNamedGroup.
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Quantifier *Quantifier `json:"quantifier,omitempty" yaml:"quantifier,omitempty"`
	// Steps are the contents of group, nonCapturingGroup and namedGroup.
	Steps []Step `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// RegexOptions maps the recipe's option names to builder options.
func (r *Recipe) RegexOptions() ([]builder.RegexOption, error) {
	opts := make([]builder.RegexOption, 0, len(r.Options))
	for _, name := range r.Options {
		switch strings.ToLower(name) {
		case "ignorecase":
			opts = append(opts, builder.IgnoreCase)
		case "multiline":
			opts = append(opts, builder.Multiline)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOption, name)
		}
	}

	return opts, nil
}

// Apply folds the recipe's steps onto b. It stops at the first step that is
// invalid or that makes b record an error, and reports it as a *StepError.
// Options are not applied; they only matter when building.
func (r *Recipe) Apply(b *builder.Builder) error {
	return applySteps(b, "steps", r.Steps)
}

// Pattern applies the recipe to a fresh builder and returns the validated
// pattern text.
func (r *Recipe) Pattern(opts ...builder.Option) (string, error) {
	b := builder.New(opts...)
	if err := r.Apply(b); err != nil {
		return "", err
	}

	return b.BuildPattern()
}

// Compile applies the recipe to a fresh builder and builds it with the
// recipe's options.
func (r *Recipe) Compile(opts ...builder.Option) (*regexp.Regexp, error) {
	regexOpts, err := r.RegexOptions()
	if err != nil {
		return nil, err
	}

	b := builder.New(opts...)
	if err := r.Apply(b); err != nil {
		return nil, err
	}

	return b.Build(regexOpts...)
}

func applySteps(b *builder.Builder, path string, steps []Step) error {
	for i := range steps {
		if err := applyStep(b, path+"["+strconv.Itoa(i)+"]", &steps[i]); err != nil {
			return err
		}
	}

	return nil
}

func applyStep(b *builder.Builder, path string, s *Step) error {
	fail := func(err error) error {
		return &StepError{Path: path, Op: s.Op, Err: err}
	}

	op, ok := ops[s.Op]
	if !ok {
		if s.Op == "" {
			return fail(fmt.Errorf("%w: op", ErrMissingField))
		}

		return fail(fmt.Errorf("%w %q", ErrUnknownOp, s.Op))
	}

	if len(s.Steps) > 0 && op.kind != nested {
		return fail(fmt.Errorf("%w: steps", ErrUnexpectedField))
	}

	var q quantifier.Quantifier
	if s.Quantifier != nil {
		if !op.quantified {
			return fail(fmt.Errorf("%w: quantifier", ErrUnexpectedField))
		}

		var err error
		if q, err = s.Quantifier.build(); err != nil {
			return fail(err)
		}
	}

	qs := quantifiers(q)

	switch op.kind {
	case plain:
		op.plain(b, qs...)
	case valued:
		if s.Value == nil {
			return fail(fmt.Errorf("%w: value", ErrMissingField))
		}

		op.valued(b, *s.Value, qs...)
	case listed:
		b.AnyOf(s.Values, qs...)
	case named:
		if s.Name == "" {
			return fail(fmt.Errorf("%w: name", ErrMissingField))
		}

		b.StartNamedGroup(s.Name)
	case nested:
		if s.Op == "namedGroup" {
			if s.Name == "" {
				return fail(fmt.Errorf("%w: name", ErrMissingField))
			}

			b.StartNamedGroup(s.Name)
		} else {
			op.plain(b)
		}

		if err := applySteps(b, path+".steps", s.Steps); err != nil {
			return err
		}

		b.EndGroup(qs...)
	}

	if err := b.Err(); err != nil {
		return fail(err)
	}

	return nil
}

func quantifiers(q quantifier.Quantifier) []quantifier.Quantifier {
	if q == nil {
		return nil
	}

	return []quantifier.Quantifier{q}
}
