package quantifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.dw1.io/regextoolbox/quantifier"
)

func TestSuffixText(t *testing.T) {
	tests := []struct {
		q        quantifier.Quantifier
		wantText string
		wantName string
	}{
		{quantifier.ZeroOrMore(), "*", "ZeroOrMore"},
		{quantifier.OneOrMore(), "+", "OneOrMore"},
		{quantifier.ZeroOrOne(), "?", "ZeroOrOne"},
		{quantifier.Exactly(10), "{10}", "Exactly(10)"},
		{quantifier.AtLeast(10), "{10,}", "AtLeast(10)"},
		{quantifier.NoMoreThan(10), "{0,10}", "NoMoreThan(10)"},
		{quantifier.Between(10, 20), "{10,20}", "Between(10, 20)"},
		{quantifier.ZeroOrMore().ButAsFewAsPossible(), "*?", "ZeroOrMore.butAsFewAsPossible"},
		{quantifier.OneOrMore().ButAsFewAsPossible(), "+?", "OneOrMore.butAsFewAsPossible"},
		{quantifier.ZeroOrOne().ButAsFewAsPossible(), "??", "ZeroOrOne.butAsFewAsPossible"},
		{quantifier.AtLeast(10).ButAsFewAsPossible(), "{10,}?", "AtLeast(10).butAsFewAsPossible"},
		{quantifier.NoMoreThan(10).ButAsFewAsPossible(), "{0,10}?", "NoMoreThan(10).butAsFewAsPossible"},
		{quantifier.Between(10, 20).ButAsFewAsPossible(), "{10,20}?", "Between(10, 20).butAsFewAsPossible"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			assert.Equal(t, tt.wantText, tt.q.String())
			assert.Equal(t, tt.wantName, tt.q.Name())
		})
	}
}

func TestNegativeCountsAreNotValidated(t *testing.T) {
	assert.Equal(t, "{-1}", quantifier.Exactly(-1).String())
	assert.Equal(t, "{5,2}", quantifier.Between(5, 2).String())
}

func TestLazyLeavesGreedyValueUntouched(t *testing.T) {
	g := quantifier.OneOrMore()
	lazy := g.ButAsFewAsPossible()

	assert.Equal(t, "+", g.String())
	assert.Equal(t, "+?", lazy.String())
	assert.Equal(t, "+?", g.ButAsFewAsPossible().String())
}

func TestLazy(t *testing.T) {
	t.Run("greedy", func(t *testing.T) {
		q, ok := quantifier.Lazy(quantifier.Between(1, 3))
		assert.True(t, ok)
		assert.Equal(t, "{1,3}?", q.String())
	})

	t.Run("exactly", func(t *testing.T) {
		q, ok := quantifier.Lazy(quantifier.Exactly(3))
		assert.False(t, ok)
		assert.Equal(t, "{3}", q.String())
	})

	t.Run("already lazy", func(t *testing.T) {
		q, ok := quantifier.Lazy(quantifier.ZeroOrMore().ButAsFewAsPossible())
		assert.False(t, ok)
		assert.Equal(t, "*?", q.String())
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, quantifier.Equal(quantifier.Exactly(2), quantifier.Exactly(2)))
	assert.True(t, quantifier.Equal(quantifier.ZeroOrMore(), quantifier.ZeroOrMore()))
	assert.True(t, quantifier.Equal(quantifier.NoMoreThan(3), quantifier.Between(0, 3)))
	assert.False(t, quantifier.Equal(quantifier.OneOrMore(), quantifier.OneOrMore().ButAsFewAsPossible()))
	assert.False(t, quantifier.Equal(quantifier.Exactly(2), nil))
	assert.True(t, quantifier.Equal(nil, nil))
}
