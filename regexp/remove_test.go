package regexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	const input = "Hello there friendly world"

	tests := []struct {
		name    string
		pattern string
		remove  func(*Regexp, string) string
		input   string
		want    string
	}{
		{"all single match", `\sthere`, (*Regexp).Remove, input, "Hello friendly world"},
		{"first single match", `\sthere`, (*Regexp).RemoveFirst, input, "Hello friendly world"},
		{"last single match", `\sthere`, (*Regexp).RemoveLast, input, "Hello friendly world"},
		{"all multiple matches", `\s\p{L}+`, (*Regexp).Remove, input, "Hello"},
		{"first multiple matches", `\s\p{L}+`, (*Regexp).RemoveFirst, input, "Hello friendly world"},
		{"last multiple matches", `\s\p{L}+`, (*Regexp).RemoveLast, input, "Hello there friendly"},
		{"all ascii multiple matches", `\s[a-z]+`, (*Regexp).Remove, input, "Hello"},
		{"last ascii multiple matches", `\s[a-z]+`, (*Regexp).RemoveLast, input, "Hello there friendly"},
		{"all no match", `\d+`, (*Regexp).Remove, input, input},
		{"first no match", `\d+`, (*Regexp).RemoveFirst, input, input},
		{"last no match", `\d+`, (*Regexp).RemoveLast, input, input},
		{"all empty input", `\d+`, (*Regexp).Remove, "", ""},
		{"first empty input", `\d+`, (*Regexp).RemoveFirst, "", ""},
		{"last empty input", `\d+`, (*Regexp).RemoveLast, "", ""},
		{"all empty matches", `a*`, (*Regexp).Remove, "baaac", "bc"},
		{"lookbehind multibyte", `(?<=é)\p{L}`, (*Regexp).Remove, "éaéb", "éé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.remove(MustCompile(tt.pattern), tt.input))
		})
	}
}

func TestRemoveCombinedFlags(t *testing.T) {
	re, err := CompileFlags(`^\sTHERE$`, IgnoreCase|Multiline)
	require.NoError(t, err)

	assert.Equal(t, "Hello\n\nfriendly", re.Remove("Hello\n there\nfriendly"))
}
