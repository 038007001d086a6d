package highlight

// Token is one piece of a rendered line: either Some (highlighted text of a
// given Kind) or None (plain text). Concatenating every Token's Text field
// reconstructs the line exactly as LineRenderer produced it.
type Token struct {
	Text  string
	Kind  Kind
	Plain bool
}

// Some returns a highlighted token.
func Some(text string, kind Kind) Token { return Token{Text: text, Kind: kind} }

// None returns a plain-text token.
func None(text string) Token { return Token{Text: text, Plain: true} }

// Viewport clips LineRenderer's output to a range of display columns,
// measured after tab expansion.
type Viewport struct {
	Start, End int
}

// LineRenderer converts a LineState plus the line's raw text into the
// ordered token stream a host renders on screen (§4.5).
type LineRenderer struct {
	// TabWidth is the number of display columns a tab character expands to.
	// Values less than 1 are treated as 1.
	TabWidth int
}

// displayCell is one column of rendered output: either one plain rune or one
// space produced by expanding a tab.
type displayCell struct {
	text  string
	kind  Kind
	plain bool
}

func (r LineRenderer) cells(ls LineState, raw string) []displayCell {
	tabWidth := r.TabWidth
	if tabWidth < 1 {
		tabWidth = 1
	}
	spans := ls.Spans
	si := 0
	cells := make([]displayCell, 0, len(raw))
	col := 0
	for _, ch := range raw {
		for si < len(spans) && spans[si].End <= col {
			si++
		}
		var kind Kind
		plain := true
		if si < len(spans) && spans[si].Start <= col && col < spans[si].End {
			kind, plain = spans[si].Kind, false
		}
		if ch == '\t' {
			for k := 0; k < tabWidth; k++ {
				cells = append(cells, displayCell{text: " ", kind: kind, plain: plain})
			}
		} else {
			cells = append(cells, displayCell{text: string(ch), kind: kind, plain: plain})
		}
		col++
	}
	return cells
}

// Render produces the Some/None token stream for one line. If vp is
// non-nil, the output is clipped to that range of display columns first;
// a partial leading or trailing cell retains its kind.
func (r LineRenderer) Render(ls LineState, raw string, vp *Viewport) []Token {
	cells := r.cells(ls, raw)
	if vp != nil {
		start, end := vp.Start, vp.End
		if start < 0 {
			start = 0
		}
		if end > len(cells) {
			end = len(cells)
		}
		if start > end {
			start = end
		}
		cells = cells[start:end]
	}
	var tokens []Token
	for _, c := range cells {
		if n := len(tokens); n > 0 {
			last := &tokens[n-1]
			if last.Plain == c.plain && last.Kind == c.kind {
				last.Text += c.text
				continue
			}
		}
		tokens = append(tokens, Token{Text: c.text, Kind: c.kind, Plain: c.plain})
	}
	return tokens
}

// LineViewport is like Line but clips the output to a range of display
// columns, for hosts that only render a horizontal slice of the buffer.
func (h *Highlighter) LineViewport(i int, raw string, vp Viewport) ([]Token, error) {
	if err := h.enter(); err != nil {
		return nil, err
	}
	defer h.leave()

	if h.table == nil || i < 0 || i >= len(h.table.Lines) {
		n := 0
		if h.table != nil {
			n = len(h.table.Lines)
		}
		return nil, &IndexOutOfRangeError{Op: "line", Index: i, Len: n}
	}
	r := LineRenderer{TabWidth: h.tabWidth}
	return r.Render(h.table.Lines[i], raw, &vp), nil
}
