// Package regexp compiles built patterns with the fastest engine available.
//
// RE2-syntax patterns, Unicode property classes and "(?<name>" groups
// included, are matched with coregex (an accelerated RE2-compatible engine).
// Match positions, submatches and replacements come from [regexp2] running in
// RE2 mode, so both engines agree on what "\d", "\s", "\w" and "$" mean.
// Patterns that need PCRE/Perl features RE2 cannot express, such as
// lookarounds or backreferences, run on regexp2 alone.
//
// Compile options are expressed as [Flag] values and never alter the source
// pattern reported by [Regexp.String].
package regexp
