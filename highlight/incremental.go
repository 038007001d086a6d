package highlight

// rescanFrom re-tokenizes h's lines starting at index start with the given
// carry-in, overwriting h.table.Lines in place, and stops as soon as a
// freshly computed ClosesWith matches what mapToOld(j) reports as having
// been there before the edit (§4.4). mapToOld returns ok=false when there is
// no old value to compare against, forcing the scan to continue.
func (h *Highlighter) rescanFrom(start int, carryIn OpenMarker, mapToOld func(newIndex int) (OpenMarker, bool)) {
	carry := carryIn
	for j := start; j < len(h.lines); j++ {
		spans, closes := tokenizeLine(h.rules.rules, h.lines[j], carry)
		h.table.Lines[j] = LineState{Spans: spans, OpensWith: carry, ClosesWith: closes}
		if old, ok := mapToOld(j); ok && old == closes {
			return
		}
		carry = closes
	}
}

// Edit replaces the text of line i and updates the SpanTable incrementally,
// re-scanning only as far as necessary to re-establish carry continuity.
func (h *Highlighter) Edit(i int, text string) error {
	if err := h.enter(); err != nil {
		return err
	}
	defer h.leave()

	if i < 0 || i >= len(h.lines) {
		return &IndexOutOfRangeError{Op: "edit", Index: i, Len: len(h.lines)}
	}
	oldClose := make([]OpenMarker, len(h.table.Lines))
	for idx, ls := range h.table.Lines {
		oldClose[idx] = ls.ClosesWith
	}
	carryIn := h.table.Lines[i].OpensWith
	h.lines[i] = text
	h.rescanFrom(i, carryIn, func(j int) (OpenMarker, bool) {
		if j < len(oldClose) {
			return oldClose[j], true
		}
		return OpenMarker{}, false
	})
	return nil
}

// Insert inserts a new line at index i (shifting lines at or after i down
// by one) and updates the SpanTable incrementally.
func (h *Highlighter) Insert(i int, text string) error {
	if err := h.enter(); err != nil {
		return err
	}
	defer h.leave()

	if i < 0 || i > len(h.lines) {
		return &IndexOutOfRangeError{Op: "insert", Index: i, Len: len(h.lines)}
	}
	oldClose := make([]OpenMarker, len(h.table.Lines))
	for idx, ls := range h.table.Lines {
		oldClose[idx] = ls.ClosesWith
	}
	carryIn := NoMarker
	if i > 0 {
		carryIn = h.table.Lines[i-1].ClosesWith
	}

	h.lines = append(h.lines, "")
	copy(h.lines[i+1:], h.lines[i:])
	h.lines[i] = text

	h.table.Lines = append(h.table.Lines, LineState{})
	copy(h.table.Lines[i+1:], h.table.Lines[i:])
	h.table.Lines[i] = LineState{}

	h.rescanFrom(i, carryIn, func(j int) (OpenMarker, bool) {
		if j == i {
			return OpenMarker{}, false
		}
		oldIdx := j - 1
		if oldIdx < len(oldClose) {
			return oldClose[oldIdx], true
		}
		return OpenMarker{}, false
	})
	return nil
}

// Remove deletes line i (shifting later lines up by one) and updates the
// SpanTable incrementally. Per §4.4, re-scanning starts at max(0, i-1) so
// that a carry merged across the removed line is always picked up.
func (h *Highlighter) Remove(i int) error {
	if err := h.enter(); err != nil {
		return err
	}
	defer h.leave()

	if i < 0 || i >= len(h.lines) {
		return &IndexOutOfRangeError{Op: "remove", Index: i, Len: len(h.lines)}
	}
	oldClose := make([]OpenMarker, len(h.table.Lines))
	for idx, ls := range h.table.Lines {
		oldClose[idx] = ls.ClosesWith
	}

	h.lines = append(h.lines[:i], h.lines[i+1:]...)
	h.table.Lines = append(h.table.Lines[:i], h.table.Lines[i+1:]...)

	start := i
	if start > 0 {
		start--
	}
	carryIn := NoMarker
	if start > 0 {
		carryIn = h.table.Lines[start-1].ClosesWith
	}

	h.rescanFrom(start, carryIn, func(j int) (OpenMarker, bool) {
		// For j >= i-1 the line now following j used to follow old line j+1,
		// so that is the ClosesWith it was scanned against.
		oldIdx := j
		if j >= i-1 {
			oldIdx = j + 1
		}
		if oldIdx < len(oldClose) {
			return oldClose[oldIdx], true
		}
		return OpenMarker{}, false
	})
	return nil
}
