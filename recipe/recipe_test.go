package recipe_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.dw1.io/regextoolbox/builder"
	"go.dw1.io/regextoolbox/recipe"
	"go.dw1.io/regextoolbox/regexp"
)

const ipv4JSON = `{
  "steps": [
    {"op": "startOfString"},
    {"op": "group", "quantifier": {"kind": "exactly", "n": 3}, "steps": [
      {"op": "digit", "quantifier": {"kind": "between", "n": 1, "m": 3}},
      {"op": "text", "value": "."}
    ]},
    {"op": "digit", "quantifier": {"kind": "between", "n": "1", "m": "3"}},
    {"op": "endOfString"}
  ]
}`

const ipv4YAML = `
steps:
  - op: startOfString
  - op: group
    quantifier: {kind: exactly, n: 3}
    steps:
      - op: digit
        quantifier: {kind: between, n: 1, m: 3}
      - op: text
        value: "."
  - op: digit
    quantifier: {kind: between, n: "1", m: "3"}
  - op: endOfString
`

func TestDecodeFormats(t *testing.T) {
	for _, tt := range []struct {
		format recipe.Format
		data   string
	}{
		{recipe.JSON, ipv4JSON},
		{recipe.YAML, ipv4YAML},
	} {
		t.Run(string(tt.format), func(t *testing.T) {
			r, err := recipe.Decode([]byte(tt.data), tt.format)
			require.NoError(t, err)

			src, err := r.Pattern()
			require.NoError(t, err)
			assert.Equal(t, `^(\d{1,3}\.){3}\d{1,3}$`, src)

			re, err := r.Compile()
			require.NoError(t, err)
			assert.True(t, re.MatchString("172.15.254.1"))
			assert.False(t, re.MatchString("1.1.1."))
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := recipe.Decode([]byte(`{"steps": [`), recipe.JSON)
	assert.Error(t, err)

	_, err = recipe.Decode([]byte("steps: [\n"), recipe.YAML)
	assert.Error(t, err)

	_, err = recipe.Decode([]byte(`{}`), "toml")
	assert.ErrorIs(t, err, recipe.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want recipe.Format
		ok   bool
	}{
		{"ip.json", recipe.JSON, true},
		{"dir/ip.JSON", recipe.JSON, true},
		{"ip.yaml", recipe.YAML, true},
		{"ip.yml", recipe.YAML, true},
		{"ip.toml", "", false},
		{"ip", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := recipe.FormatFromPath(tt.path)
			if !tt.ok {
				assert.ErrorIs(t, err, recipe.ErrUnknownFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSteps(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"text", `[{"op":"text","value":"a*b"}]`, `a\*b`},
		{"empty text", `[{"op":"text","value":""}]`, ""},
		{"regex text", `[{"op":"regexText","value":"a*b","quantifier":{"kind":"oneOrMore"}}]`, "(?:a*b)+"},
		{"any character from", `[{"op":"anyCharacterFrom","value":"^]"}]`, `[\^\]]`},
		{"any character except", `[{"op":"anyCharacterExcept","value":"abc","quantifier":{"kind":"zeroOrOne"}}]`, "[^abc]?"},
		{"any of", `[{"op":"anyOf","values":["cat","dog","|"],"quantifier":{"kind":"exactly","n":2}}]`, `(?:cat|dog|\|){2}`},
		{"any of empty", `[{"op":"anyOf"}]`, ""},
		{"classes", `[{"op":"letter"},{"op":"nonLetter"},{"op":"hexDigit"},{"op":"wordCharacter"}]`, `\p{L}\P{L}[0-9A-Fa-f][\p{L}0-9_]`},
		{"whitespace", `[{"op":"space"},{"op":"tab"},{"op":"lineFeed"},{"op":"carriageReturn"},{"op":"possibleWhitespace"}]`, ` \t\n\r\s*`},
		{"anchors", `[{"op":"startOfString"},{"op":"wordBoundary"},{"op":"endOfString"}]`, `^\b$`},
		{"lazy", `[{"op":"anyCharacter","quantifier":{"kind":"zeroOrMore","lazy":true}}]`, ".*?"},
		{"at least", `[{"op":"digit","quantifier":{"kind":"atLeast","n":2}}]`, `\d{2,}`},
		{"no more than lazy", `[{"op":"digit","quantifier":{"kind":"noMoreThan","n":"4","lazy":true}}]`, `\d{0,4}?`},
		{"explicit groups", `[{"op":"startGroup"},{"op":"startNonCapturingGroup"},{"op":"digit"},{"op":"endGroup"},{"op":"endGroup","quantifier":{"kind":"oneOrMore"}}]`, `((?:\d))+`},
		{"start named group", `[{"op":"startNamedGroup","name":"n"},{"op":"digit"},{"op":"endGroup"}]`, `(?<n>\d)`},
		{"non capturing group", `[{"op":"nonCapturingGroup","steps":[{"op":"text","value":"ab"}],"quantifier":{"kind":"zeroOrOne"}}]`, "(?:ab)?"},
		{"named group", `[{"op":"namedGroup","name":"year","steps":[{"op":"digit","quantifier":{"kind":"exactly","n":4}}]}]`, `(?<year>\d{4})`},
		{"nested groups", `[{"op":"group","steps":[{"op":"group","steps":[{"op":"digit"}]}]}]`, `((\d))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := recipe.Decode([]byte(`{"steps":`+tt.json+`}`), recipe.JSON)
			require.NoError(t, err)

			got, err := r.Pattern()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepErrors(t *testing.T) {
	tests := []struct {
		name   string
		json   string
		path   string
		target error
	}{
		{"missing op", `[{}]`, "steps[0]", recipe.ErrMissingField},
		{"unknown op", `[{"op":"digit"},{"op":"bogus"}]`, "steps[1]", recipe.ErrUnknownOp},
		{"missing value", `[{"op":"text"}]`, "steps[0]", recipe.ErrMissingField},
		{"missing name", `[{"op":"namedGroup","steps":[{"op":"digit"}]}]`, "steps[0]", recipe.ErrMissingField},
		{"missing start name", `[{"op":"startNamedGroup"}]`, "steps[0]", recipe.ErrMissingField},
		{"quantifier not allowed", `[{"op":"startOfString","quantifier":{"kind":"oneOrMore"}}]`, "steps[0]", recipe.ErrUnexpectedField},
		{"steps not allowed", `[{"op":"digit","steps":[{"op":"digit"}]}]`, "steps[0]", recipe.ErrUnexpectedField},
		{"missing kind", `[{"op":"digit","quantifier":{}}]`, "steps[0]", recipe.ErrBadQuantifier},
		{"unknown kind", `[{"op":"digit","quantifier":{"kind":"many"}}]`, "steps[0]", recipe.ErrBadQuantifier},
		{"missing count", `[{"op":"digit","quantifier":{"kind":"exactly"}}]`, "steps[0]", recipe.ErrBadQuantifier},
		{"missing upper bound", `[{"op":"digit","quantifier":{"kind":"between","n":1}}]`, "steps[0]", recipe.ErrBadQuantifier},
		{"reversed bounds", `[{"op":"digit","quantifier":{"kind":"between","n":3,"m":1}}]`, "steps[0]", recipe.ErrBadQuantifier},
		{"negative count", `[{"op":"digit","quantifier":{"kind":"atLeast","n":-1}}]`, "steps[0]", recipe.ErrBadQuantifier},
		{"fractional count", `[{"op":"digit","quantifier":{"kind":"atLeast","n":1.5}}]`, "steps[0]", recipe.ErrBadQuantifier},
		{"non numeric count", `[{"op":"digit","quantifier":{"kind":"atLeast","n":"two"}}]`, "steps[0]", recipe.ErrBadQuantifier},
		{"boolean count", `[{"op":"digit","quantifier":{"kind":"atLeast","n":true}}]`, "steps[0]", recipe.ErrBadQuantifier},
		{"lazy exactly", `[{"op":"digit","quantifier":{"kind":"exactly","n":2,"lazy":true}}]`, "steps[0]", recipe.ErrBadQuantifier},
		{"nested", `[{"op":"digit"},{"op":"group","steps":[{"op":"digit"},{"op":"text"}]}]`, "steps[1].steps[1]", recipe.ErrMissingField},
		{"unbalanced", `[{"op":"digit"},{"op":"endGroup"}]`, "steps[1]", builder.ErrUnbalancedGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := recipe.Decode([]byte(`{"steps":`+tt.json+`}`), recipe.JSON)
			require.NoError(t, err)

			_, err = r.Pattern()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			var stepErr *recipe.StepError
			require.ErrorAs(t, err, &stepErr)
			assert.Equal(t, tt.path, stepErr.Path)
			assert.True(t, strings.HasPrefix(err.Error(), "recipe: "+tt.path), err.Error())
		})
	}
}

func TestUnterminatedRecipe(t *testing.T) {
	r, err := recipe.Decode([]byte(`{"steps":[{"op":"startGroup"},{"op":"digit"}]}`), recipe.JSON)
	require.NoError(t, err)

	_, err = r.Pattern()
	assert.ErrorIs(t, err, builder.ErrUnterminatedGroup)
}

func TestOptions(t *testing.T) {
	r, err := recipe.Decode([]byte(`
options: [ignoreCase, Multiline]
steps:
  - op: startOfString
  - op: text
    value: cat
  - op: endOfString
`), recipe.YAML)
	require.NoError(t, err)

	opts, err := r.RegexOptions()
	require.NoError(t, err)
	assert.Equal(t, []builder.RegexOption{builder.IgnoreCase, builder.Multiline}, opts)

	re, err := r.Compile()
	require.NoError(t, err)
	assert.Equal(t, regexp.IgnoreCase|regexp.Multiline, re.Flags())
	assert.True(t, re.MatchString("dog\nCAT\nbird"))

	r.Options = append(r.Options, "dotAll")
	_, err = r.Compile()
	assert.ErrorIs(t, err, recipe.ErrUnknownOption)
}

func TestApplyToConfiguredBuilder(t *testing.T) {
	r, err := recipe.Decode([]byte(`{"steps":[{"op":"digit","quantifier":{"kind":"oneOrMore"}}]}`), recipe.JSON)
	require.NoError(t, err)

	var lines []string
	b := builder.New(
		builder.WithLogger(builder.LoggerFunc(func(m string) { lines = append(lines, m) })),
		builder.WithLogPrefix("recipe"),
	)

	b.StartOfString()
	require.NoError(t, r.Apply(b))
	b.EndOfString()

	src, err := b.BuildPattern()
	require.NoError(t, err)
	assert.Equal(t, `^\d+$`, src)
	assert.Contains(t, lines, `recipe: digit(OneOrMore): \d+`)
}

func TestEncodeYAMLAsJSON(t *testing.T) {
	r, err := recipe.Decode([]byte(ipv4YAML), recipe.YAML)
	require.NoError(t, err)

	data, err := recipe.Encode(r, recipe.JSON)
	require.NoError(t, err)

	back, err := recipe.Decode(data, recipe.JSON)
	require.NoError(t, err)

	want, err := r.Pattern()
	require.NoError(t, err)
	got, err := back.Pattern()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = recipe.Encode(r, "toml")
	assert.ErrorIs(t, err, recipe.ErrUnknownFormat)
}
