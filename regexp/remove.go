package regexp

// Remove returns a copy of s with every match of the Regexp removed. s is
// returned unchanged when nothing matches.
func (r *Regexp) Remove(s string) string {
	if r.pcre == nil {
		return r.core.ReplaceAllLiteralString(s, "")
	}

	return cut(s, r.FindAllStringIndex(s, -1)...)
}

// RemoveFirst returns a copy of s with the leftmost match of the Regexp
// removed.
func (r *Regexp) RemoveFirst(s string) string {
	loc := r.FindStringIndex(s)
	if loc == nil {
		return s
	}

	return cut(s, loc)
}

// RemoveLast returns a copy of s with the last successive match of the Regexp
// removed.
func (r *Regexp) RemoveLast(s string) string {
	all := r.FindAllStringIndex(s, -1)
	if len(all) == 0 {
		return s
	}

	return cut(s, all[len(all)-1])
}

// cut removes the given ascending, non-overlapping byte ranges from s.
func cut(s string, locs ...[]int) string {
	if len(locs) == 0 {
		return s
	}

	out := make([]byte, 0, len(s))
	last := 0
	for _, loc := range locs {
		if loc[0] < last {
			continue
		}
		out = append(out, s[last:loc[0]]...)
		last = loc[1]
	}
	out = append(out, s[last:]...)

	return string(out)
}
