package regexp

import (
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Flag is a compile option. Flags combine with bitwise OR.
type Flag uint8

const (
	// IgnoreCase makes matching case-insensitive.
	IgnoreCase Flag = 1 << iota
	// Multiline makes "^" and "$" also match at embedded line breaks.
	Multiline
)

// Has reports whether every flag in o is set in f.
func (f Flag) Has(o Flag) bool {
	return f&o == o
}

func (f Flag) count() int {
	return bits.OnesCount8(uint8(f))
}

// String returns the inline form of f, e.g. "im".
func (f Flag) String() string {
	var sb strings.Builder
	if f.Has(IgnoreCase) {
		sb.WriteByte('i')
	}
	if f.Has(Multiline) {
		sb.WriteByte('m')
	}

	return sb.String()
}

// Regexp is a compiled regular expression backed by coregex (fast,
// RE2-compatible) and regexp2 (PCRE-compatible).
//
// RE2-syntax patterns are compiled with both engines: coregex answers
// MatchString and defines group numbering, while match positions come from
// regexp2 in RE2 mode. coregex v0.10 misreports spans for some patterns with
// a literal suffix and ignores combined inline flags, so it is never trusted
// with positions, nor with matching when more than one flag is set. Word
// boundaries are ASCII on both engines.
type Regexp struct {
	pattern string
	flags   Flag
	core    *coregex.Regex
	fast    bool
	pcre    *regexp2.Regexp
	// groups maps RE2 group numbers to regexp2 group numbers. It is nil for
	// patterns only regexp2 can compile, whose numbering is used as is.
	groups []int
}

// Compile parses a regular expression and returns a compiled Regexp.
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, 0)
}

// CompileFlags is like Compile but applies the given flags. Patterns that
// require PCRE/Perl-only features (detected by needsPCRE) are compiled with
// regexp2 only; everything else also gets a coregex compile with the flags
// set inline.
//
// Syntax errors are returned exactly as the selected engine reports them.
func CompileFlags(pattern string, flags Flag) (*Regexp, error) {
	if needsPCRE(pattern) {
		re, err := compilePCRE(pattern, flags)
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: pattern, flags: flags, pcre: re}, nil
	}

	src := pattern
	if flags != 0 {
		src = "(?" + flags.String() + ")" + pattern
	}

	core, err := coregex.Compile(src)
	if err != nil {
		return nil, err
	}

	r := &Regexp{pattern: pattern, flags: flags, core: core, fast: flags.count() <= 1}

	// A pattern regexp2 rejects keeps coregex for everything.
	if re, err := compilePCRE(pattern, flags); err == nil {
		r.pcre = re
		r.groups = groupNumbers(core.SubexpNames(), re)
	} else {
		r.fast = true
	}

	return r, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether the string s matches the regular expression
// pattern. This mirrors regexp.MatchString.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// compilePCRE compiles pattern with regexp2, with word boundaries
// rewritten to RE2's ASCII meaning. Errors refer to pattern as written.
func compilePCRE(pattern string, flags Flag) (*regexp2.Regexp, error) {
	opts := pcreOptions(flags)

	src := asciiBoundaries(pattern)
	if src != pattern {
		if re, err := regexp2.Compile(src, opts); err == nil {
			return re, nil
		}
	}

	return regexp2.Compile(pattern, opts)
}

// pcreOptions always sets regexp2.RE2 so that "$", "\d", "\s" and "\w"
// mean the same on both engines.
func pcreOptions(flags Flag) regexp2.RegexOptions {
	opts := regexp2.RegexOptions(regexp2.RE2)
	if flags.Has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if flags.Has(Multiline) {
		opts |= regexp2.Multiline
	}

	return opts
}

// String returns the source pattern used to compile the Regexp, without any
// inline flags.
func (r *Regexp) String() string {
	return r.pattern
}

// Flags returns the flags the Regexp was compiled with.
func (r *Regexp) Flags() Flag {
	return r.flags
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.fast {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string {
	if r.pcre == nil {
		return r.core.FindString(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return m.String()
}

// FindStringIndex returns a two-element slice with the start and end index of
// the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.pcre == nil {
		return r.core.FindStringIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	start, end := runeRangeToByte(s, m.Index, m.Length)
	return []int{start, end}
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.pcre == nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	if r.groups == nil {
		return groupsToStrings(s, m.Groups())
	}

	out := make([]string, len(r.groups))
	for i, n := range r.groups {
		if n < 0 {
			continue
		}
		if g := m.GroupByNumber(n); g != nil && len(g.Captures) > 0 {
			out[i] = g.String()
		}
	}

	return out
}

// FindAllString returns a slice of all successive matches of the Regexp in s.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.pcre == nil {
		return r.core.FindAllString(s, n)
	}

	var matches []string
	r.eachPCREMatch(s, n, func(m *regexp2.Match) {
		matches = append(matches, m.String())
	})
	return matches
}

// FindAllStringIndex returns a slice of all successive match indices of the
// Regexp in s.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if r.pcre == nil {
		return r.core.FindAllStringIndex(s, n)
	}

	var matches [][]int
	r.eachPCREMatch(s, n, func(m *regexp2.Match) {
		start, end := runeRangeToByte(s, m.Index, m.Length)
		matches = append(matches, []int{start, end})
	})
	return matches
}

// ReplaceAllString returns a copy of src, replacing matches of the Regexp with
// repl. For RE2-syntax patterns, repl is expanded like regexp.Expand ("$1",
// "${name}", "$$"); patterns only regexp2 can compile use its own syntax.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	switch {
	case r.pcre == nil:
		return r.core.ReplaceAllString(src, repl)
	case r.groups == nil:
		replaced, err := r.pcre.Replace(src, repl, -1, -1)
		if err != nil {
			return src
		}
		return replaced
	}

	var (
		out     []byte
		last    int
		matched bool
	)
	r.eachPCREMatch(src, -1, func(m *regexp2.Match) {
		matched = true
		loc := r.submatchIndex(src, m)
		out = append(out, src[last:loc[0]]...)
		out = r.expand(out, repl, src, loc)
		last = loc[1]
	})
	if !matched {
		return src
	}

	return string(append(out, src[last:]...))
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	return maxGroupNumber(r.pcre)
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1]. Unnamed groups
// report an empty name on both engines.
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	max := maxGroupNumber(r.pcre)
	names := make([]string, max+1)
	for i := 1; i <= max; i++ {
		// regexp2 names unnamed groups after their number.
		if name := r.pcre.GroupNameFromNumber(i); name != "" && name != strconv.Itoa(i) {
			names[i] = name
		}
	}

	return names
}

// SubexpIndex returns the index of the first subexpression with the given
// name, or -1 if there is none.
func (r *Regexp) SubexpIndex(name string) int {
	if name == "" {
		return -1
	}

	for i, n := range r.SubexpNames() {
		if n == name {
			return i
		}
	}

	return -1
}

// submatchIndex returns the byte offsets of m and its groups in RE2 order,
// -1 for groups that did not take part in the match.
func (r *Regexp) submatchIndex(s string, m *regexp2.Match) []int {
	loc := make([]int, 2*len(r.groups))
	for i, n := range r.groups {
		loc[2*i], loc[2*i+1] = -1, -1
		if n < 0 {
			continue
		}
		if g := m.GroupByNumber(n); g != nil && len(g.Captures) > 0 {
			loc[2*i], loc[2*i+1] = runeRangeToByte(s, g.Index, g.Length)
		}
	}

	return loc
}

// expand appends template to dst with "$" references replaced by the
// submatches of src at loc.
func (r *Regexp) expand(dst []byte, template, src string, loc []int) []byte {
	for {
		i := strings.IndexByte(template, '$')
		if i < 0 {
			break
		}
		dst = append(dst, template[:i]...)
		template = template[i:]

		if len(template) > 1 && template[1] == '$' {
			dst = append(dst, '$')
			template = template[2:]
			continue
		}

		name, rest, ok := extractRef(template)
		if !ok {
			dst = append(dst, '$')
			template = template[1:]
			continue
		}
		template = rest

		idx, err := strconv.Atoi(name)
		if err != nil {
			idx = r.SubexpIndex(name)
		}
		if idx >= 0 && 2*idx+1 < len(loc) && loc[2*idx] >= 0 {
			dst = append(dst, src[loc[2*idx]:loc[2*idx+1]]...)
		}
	}

	return append(dst, template...)
}

// extractRef parses "$name" or "${name}" at the start of s.
func extractRef(s string) (name, rest string, ok bool) {
	if len(s) < 2 || s[0] != '$' {
		return "", "", false
	}

	brace := s[1] == '{'
	i := 1
	if brace {
		i = 2
	}

	j := i
	for j < len(s) && (s[j] == '_' || isAlnum(s[j])) {
		j++
	}
	if j == i {
		return "", "", false
	}

	name = s[i:j]
	if brace {
		if j >= len(s) || s[j] != '}' {
			return "", "", false
		}
		j++
	}

	return name, s[j:], true
}

func isAlnum(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// groupNumbers maps each RE2 group (named as in names) to its regexp2 group
// number. regexp2 numbers unnamed groups before named ones, but keeps unnamed
// groups in order, so they are matched up by position.
func groupNumbers(names []string, re *regexp2.Regexp) []int {
	named := make(map[int]bool)
	for _, name := range names {
		if name != "" {
			named[re.GroupNumberFromName(name)] = true
		}
	}

	var unnamed []int
	for _, n := range re.GetGroupNumbers() {
		if n != 0 && !named[n] {
			unnamed = append(unnamed, n)
		}
	}
	slices.Sort(unnamed)

	groups := make([]int, len(names))
	for i, name := range names {
		switch {
		case i == 0:
			groups[i] = 0
		case name != "":
			groups[i] = re.GroupNumberFromName(name)
		case len(unnamed) > 0:
			groups[i], unnamed = unnamed[0], unnamed[1:]
		default:
			groups[i] = -1
		}
	}

	return groups
}

func (r *Regexp) eachPCREMatch(s string, n int, fn func(*regexp2.Match)) {
	if n == 0 {
		return
	}

	count, prevEnd := 0, -1
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n > 0 && count >= n {
			break
		}

		// RE2 drops an empty match that abuts the previous match.
		if r.groups == nil || m.Length > 0 || m.Index != prevEnd {
			fn(m)
			count++
		}
		prevEnd = m.Index + m.Length
		m, err = r.pcre.FindNextMatch(m)
	}
}

func maxGroupNumber(re *regexp2.Regexp) int {
	max := 0
	for _, v := range re.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}

	return max
}

func groupsToStrings(s string, groups []regexp2.Group) []string {
	out := make([]string, len(groups))
	runes := []rune(s)
	for i, g := range groups {
		if g.Index < 0 || g.Length < 0 || len(g.Captures) == 0 {
			continue
		}
		out[i] = string(runes[g.Index : g.Index+g.Length])
	}
	return out
}

func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := runeToByteOffset(s, startRune+length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
