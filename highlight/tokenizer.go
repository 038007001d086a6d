package highlight

import (
	"sort"
	"unicode/utf8"
)

// taggedByteRange is a byteRange annotated with the kind it should be
// highlighted as.
type taggedByteRange struct {
	byteRange
	kind Kind
}

// scanBounded implements Phase A of the tokenizer (§4.3): it walks line from
// column 0, resuming carryIn's region if any, and returns every highlighted
// bounded span, every byte range "occupied" by a bounded rule (including
// delimiters and interpolation holes, which keyword rules must never touch),
// and the marker the line ends hanging on, if any.
func scanBounded(rules []Rule, line string, carryIn OpenMarker) (highlighted []taggedByteRange, occupied []byteRange, closesWith OpenMarker) {
	const (
		stateSearchOpen = iota
		stateBody
		stateInterp
	)

	pos := 0
	var current OpenMarker
	var segStart int
	state := stateSearchOpen

	if carryIn.Valid {
		current = carryIn
		if carryIn.Mode == ModeBody {
			state = stateBody
			segStart = 0
		} else {
			state = stateInterp
		}
	}

	for {
		switch state {
		case stateSearchOpen:
			idx, m, ok := findEarliestOpen(rules, line, pos)
			if !ok {
				return highlighted, occupied, NoMarker
			}
			occupied = append(occupied, m)
			pos = m.end
			segStart = m.start
			current = OpenMarker{Valid: true, RuleIndex: idx, Kind: rules[idx].kind, Mode: ModeBody}
			state = stateBody

		case stateBody:
			rule := &rules[current.RuleIndex]
			closeM, closeOK := findUnescaped(rule.close, line, pos, rule.escapable)
			var interpM byteRange
			interpOK := false
			if rule.hasInterp() {
				interpM, interpOK = findUnescaped(rule.interpOpen, line, pos, rule.escapable)
			}
			switch {
			case !closeOK && !interpOK:
				body := byteRange{segStart, len(line)}
				highlighted = append(highlighted, taggedByteRange{body, current.Kind})
				occupied = append(occupied, body)
				return highlighted, occupied, OpenMarker{Valid: true, RuleIndex: current.RuleIndex, Kind: current.Kind, Mode: ModeBody}

			case closeOK && (!interpOK || closeM.start <= interpM.start):
				body := byteRange{segStart, closeM.end}
				highlighted = append(highlighted, taggedByteRange{body, current.Kind})
				occupied = append(occupied, body)
				pos = closeM.end
				current = OpenMarker{}
				state = stateSearchOpen

			default:
				body := byteRange{segStart, interpM.start}
				highlighted = append(highlighted, taggedByteRange{body, current.Kind})
				occupied = append(occupied, body, interpM)
				pos = interpM.end
				current.Mode = ModeInterp
				state = stateInterp
			}

		case stateInterp:
			rule := &rules[current.RuleIndex]
			closeM, ok := findUnescaped(rule.interpClose, line, pos, rule.escapable)
			if !ok {
				occupied = append(occupied, byteRange{pos, len(line)})
				return highlighted, occupied, OpenMarker{Valid: true, RuleIndex: current.RuleIndex, Kind: current.Kind, Mode: ModeInterp}
			}
			occupied = append(occupied, byteRange{pos, closeM.end})
			pos = closeM.end
			segStart = pos
			current.Mode = ModeBody
			state = stateBody
		}
	}
}

// charCol converts a byte offset within line to a character (rune) column.
func charCol(line string, byteOffset int) int {
	return utf8.RuneCountInString(line[:byteOffset])
}

type keywordCand struct {
	r         byteRange
	kind      Kind
	ruleIndex int
}

// reconcileKeywords implements §4.2's overlap policy: it merges every
// keyword rule's candidate matches, drops any that intersect an occupied
// (bounded) byte range, and sweeps left to right to produce a single
// non-overlapping, deterministic layer.
func reconcileKeywords(rules []Rule, line string, occupied []byteRange) []keywordCand {
	var cands []keywordCand
	for i := range rules {
		rule := &rules[i]
		if rule.shape != shapeKeyword {
			continue
		}
		for _, m := range keywordMatches(rule.pattern, line) {
			blocked := false
			for _, o := range occupied {
				if m.overlaps(o) {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}
			cands = append(cands, keywordCand{m, rule.kind, i})
		}
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].r.start != cands[b].r.start {
			return cands[a].r.start < cands[b].r.start
		}
		if cands[a].r.end != cands[b].r.end {
			return cands[a].r.end > cands[b].r.end
		}
		return cands[a].ruleIndex < cands[b].ruleIndex
	})

	var accepted []keywordCand
	var cur *keywordCand
	for i := range cands {
		if cur == nil {
			cur = &cands[i]
			continue
		}
		if cands[i].r.start >= cur.r.end {
			accepted = append(accepted, *cur)
			cur = &cands[i]
		}
		// Otherwise cands[i] overlaps cur; cur already wins per the sort
		// order (smaller start, then larger end, then earlier rule).
	}
	if cur != nil {
		accepted = append(accepted, *cur)
	}
	return accepted
}

// tokenizeLine runs Phase A and Phase B over a single line and returns its
// finished LineState.Spans and the marker it hangs on for the next line.
func tokenizeLine(rules []Rule, line string, carryIn OpenMarker) (spans []Span, closesWith OpenMarker) {
	if !utf8.ValidString(line) {
		return nil, carryIn
	}
	highlighted, occupied, closes := scanBounded(rules, line, carryIn)
	accepted := reconcileKeywords(rules, line, occupied)

	total := make([]taggedByteRange, 0, len(highlighted)+len(accepted))
	total = append(total, highlighted...)
	for _, c := range accepted {
		total = append(total, taggedByteRange{c.r, c.kind})
	}
	sort.Slice(total, func(i, j int) bool { return total[i].start < total[j].start })

	spans = make([]Span, 0, len(total))
	for _, t := range total {
		if t.empty() {
			continue
		}
		spans = append(spans, Span{Start: charCol(line, t.start), End: charCol(line, t.end), Kind: t.kind})
	}
	return spans, closes
}

// Run tokenizes an entire buffer from scratch and returns its SpanTable. It
// is a pure function of (rules, lines): calling it twice on the same inputs
// yields identical results.
func Run(rules *RuleSet, lines []string) *SpanTable {
	table := &SpanTable{Lines: make([]LineState, len(lines))}
	carry := NoMarker
	for i, line := range lines {
		spans, closes := tokenizeLine(rules.rules, line, carry)
		table.Lines[i] = LineState{Spans: spans, OpensWith: carry, ClosesWith: closes}
		carry = closes
	}
	return table
}
