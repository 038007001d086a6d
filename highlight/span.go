package highlight

// OpenMode distinguishes the two ways a line can be hanging inside a
// BoundedInterp rule's region: inside the highlighted body, or inside a
// plain-text interpolation hole.
type OpenMode int8

const (
	// ModeBody means the carry is inside a bounded region's highlighted body.
	ModeBody OpenMode = iota
	// ModeInterp means the carry is inside a BoundedInterp region's
	// interpolation hole, which renders as plain text.
	ModeInterp
)

// OpenMarker describes a bounded region that a line begins or ends inside
// of. The zero OpenMarker (Valid == false) represents "not inside any
// region", i.e. Rust's Option::None in the spec's terms.
type OpenMarker struct {
	Valid     bool
	RuleIndex int
	Kind      Kind
	Mode      OpenMode
}

// NoMarker is the marker meaning "not hanging inside any bounded region".
var NoMarker = OpenMarker{}

// Span is a highlighted, non-overlapping range on one line, in character
// (rune) columns, not byte offsets.
type Span struct {
	Start, End int
	Kind       Kind
}

// LineState is the per-line highlighting state stored in a SpanTable.
type LineState struct {
	Spans      []Span
	OpensWith  OpenMarker
	ClosesWith OpenMarker
}

// SpanTable is the full per-line highlighting state of a buffer, indexed by
// line number. Its carry-continuity invariant is
// Lines[i].ClosesWith == Lines[i+1].OpensWith for every i, and Lines[0].OpensWith
// is always NoMarker.
type SpanTable struct {
	Lines []LineState
}
