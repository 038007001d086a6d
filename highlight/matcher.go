package highlight

import "regexp"

// byteRange is a [start, end) byte offset range within a single line.
type byteRange struct {
	start, end int
}

func (r byteRange) empty() bool { return r.start == r.end }

// overlaps reports whether r and o share at least one byte.
func (r byteRange) overlaps(o byteRange) bool {
	return r.start < o.end && o.start < r.end
}

// keywordMatches returns every non-overlapping, non-empty match of re within
// line, as byte ranges, in ascending order. Go's regexp already returns
// non-overlapping leftmost matches for FindAllStringIndex; this only adds
// the spec's rule that zero-width matches are always dropped.
func keywordMatches(re *regexp.Regexp, line string) []byteRange {
	locs := re.FindAllStringIndex(line, -1)
	if locs == nil {
		return nil
	}
	out := make([]byteRange, 0, len(locs))
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		out = append(out, byteRange{loc[0], loc[1]})
	}
	return out
}

// findUnescaped returns the first match of re at or after byte offset from
// in line that is not escaped. An occurrence is escaped when escapable is
// true and the byte immediately preceding it is a backslash. ok is false
// when no unescaped match exists in line[from:].
func findUnescaped(re *regexp.Regexp, line string, from int, escapable bool) (m byteRange, ok bool) {
	for pos := from; pos <= len(line); {
		loc := re.FindStringIndex(line[pos:])
		if loc == nil {
			return byteRange{}, false
		}
		start, end := pos+loc[0], pos+loc[1]
		if !escapable || start == 0 || line[start-1] != '\\' {
			return byteRange{start, end}, true
		}
		// Escaped: keep looking after this occurrence. Guard against a
		// zero-width close/interp pattern looping forever on the same spot.
		if end == pos {
			pos++
		} else {
			pos = end
		}
	}
	return byteRange{}, false
}

// findEarliestOpen scans every bounded rule's open pattern in rules starting
// at byte offset from in line, and returns the rule index and match of the
// one that starts earliest. Ties are broken by registration order (smaller
// index wins), matching the RuleSet's precedence rule.
func findEarliestOpen(rules []Rule, line string, from int) (ruleIndex int, m byteRange, ok bool) {
	best := byteRange{}
	bestIdx := -1
	for i := range rules {
		r := &rules[i]
		if r.shape != shapeBounded && r.shape != shapeBoundedInterp {
			continue
		}
		loc := r.open.FindStringIndex(line[from:])
		if loc == nil || loc[0] == loc[1] {
			continue
		}
		cand := byteRange{from + loc[0], from + loc[1]}
		if bestIdx == -1 || cand.start < best.start {
			best, bestIdx = cand, i
		}
	}
	if bestIdx == -1 {
		return 0, byteRange{}, false
	}
	return bestIdx, best, true
}
