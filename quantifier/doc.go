// Package quantifier provides the repetition suffixes that can be attached to
// a builder element or group.
//
// Greedy quantifiers ([ZeroOrMore], [OneOrMore], [ZeroOrOne], [AtLeast],
// [NoMoreThan] and [Between]) carry a pre-built lazy sibling reachable through
// [Greedy.ButAsFewAsPossible]. [Exactly] has no lazy form since an exact count
// matches the same way either way.
//
// Counts are not validated; a negative count renders syntactically valid
// suffix text that the regex engine rejects at compile time.
package quantifier
