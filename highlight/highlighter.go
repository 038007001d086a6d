package highlight

import "sync/atomic"

// Highlighter is the public façade combining a RuleSet, a SpanTable and the
// incremental update logic into the single object a host embeds. It is not
// internally synchronized (§5): a Highlighter is owned by exactly one caller
// at a time, and concurrent mutating calls are a contract violation that is
// detected on a best-effort basis rather than prevented.
type Highlighter struct {
	rules    *RuleSet
	tabWidth int

	lines []string
	table *SpanTable

	busy int32
}

// New returns an empty Highlighter. tabWidth must be positive; it is used
// only by Line's tab expansion (§4.5).
func New(tabWidth int) *Highlighter {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &Highlighter{rules: NewRuleSet(), tabWidth: tabWidth, table: &SpanTable{}}
}

// NewWithRules returns a Highlighter pre-populated with rules, e.g. one
// produced by a catalogue constructor. rules is taken by reference: the
// caller must not mutate it concurrently with the Highlighter.
func NewWithRules(tabWidth int, rules *RuleSet) *Highlighter {
	if tabWidth < 1 {
		tabWidth = 1
	}
	if rules == nil {
		rules = NewRuleSet()
	}
	return &Highlighter{rules: rules, tabWidth: tabWidth, table: &SpanTable{}}
}

// enter marks the Highlighter busy, returning a ContractViolation if it was
// already busy (i.e. called concurrently from another goroutine).
func (h *Highlighter) enter() error {
	if !atomic.CompareAndSwapInt32(&h.busy, 0, 1) {
		return &ContractViolation{msg: "concurrent call into Highlighter"}
	}
	return nil
}

func (h *Highlighter) leave() { atomic.StoreInt32(&h.busy, 0) }

// Keyword appends a single-line rule. Rules added after Run require a fresh
// Run to take effect.
func (h *Highlighter) Keyword(kind Kind, pattern string) error { return h.rules.Keyword(kind, pattern) }

// Join registers several Keyword rules sharing the same kind.
func (h *Highlighter) Join(kind Kind, patterns []string) error { return h.rules.Join(kind, patterns) }

// Bounded appends a multi-line bounded rule.
func (h *Highlighter) Bounded(kind Kind, open, close string, escapable bool) error {
	return h.rules.Bounded(kind, open, close, escapable)
}

// BoundedInterp appends a bounded rule with interpolation holes.
func (h *Highlighter) BoundedInterp(kind Kind, open, close, interpOpen, interpClose string, escapable bool) error {
	return h.rules.BoundedInterp(kind, open, close, interpOpen, interpClose, escapable)
}

// Rules returns the Highlighter's RuleSet, e.g. so a catalogue
// constructor can pre-populate it before the first Run.
func (h *Highlighter) Rules() *RuleSet { return h.rules }

// Run builds the SpanTable for the given lines from scratch. It must be
// called at least once before Edit, Insert, Remove or Line, and again
// whenever rules are added afterwards.
func (h *Highlighter) Run(lines []string) {
	h.lines = append([]string(nil), lines...)
	h.table = Run(h.rules, h.lines)
}

// Line returns the ordered Some/None token stream for line i, using raw as
// its current text. Use LineRenderer.Render for viewport clipping.
func (h *Highlighter) Line(i int, raw string) ([]Token, error) {
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
	return r.Render(h.table.Lines[i], raw, nil), nil
}
