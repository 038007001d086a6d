package highlight

import "regexp"

// shape identifies which of the three rule variants a Rule is.
type shape int8

const (
	shapeKeyword shape = iota
	shapeBounded
	shapeBoundedInterp
)

// A Rule is one of the three lexical rule shapes the RuleSet can hold:
// a single-line Keyword, a multi-line Bounded region, or a Bounded region
// with interpolation holes (BoundedInterp). Its zero value is never used
// directly; rules are only constructed through RuleSet's methods.
type Rule struct {
	kind  Kind
	shape shape

	// Keyword
	pattern *regexp.Regexp

	// Bounded, BoundedInterp
	open, close           *regexp.Regexp
	interpOpen, interpClose *regexp.Regexp
	escapable             bool
}

// RuleSet is an ordered store of lexical rules. Registration order breaks
// precedence ties during tokenization (see Tokenizer): earlier rules win.
// A RuleSet is safe to share read-only across multiple Highlighters once
// construction is finished; it must not be mutated concurrently with a Run.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet returns an empty RuleSet.
func NewRuleSet() *RuleSet { return &RuleSet{} }

// Keyword appends a single-line rule: any text on a line matched by pattern
// is classified with kind. Matches that would cross a line boundary are
// truncated at it, since pattern is only ever evaluated one line at a time.
func (rs *RuleSet) Keyword(kind Kind, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return newCompileError(kind, pattern, err)
	}
	rs.rules = append(rs.rules, Rule{kind: kind, shape: shapeKeyword, pattern: re})
	return nil
}

// Join registers several Keyword rules sharing the same kind in one call.
func (rs *RuleSet) Join(kind Kind, patterns []string) error {
	for _, p := range patterns {
		if err := rs.Keyword(kind, p); err != nil {
			return err
		}
	}
	return nil
}

// Bounded appends a rule whose matches may span multiple lines, delimited by
// open and close. If escapable is true, a close occurrence immediately
// preceded by a backslash does not end the region.
func (rs *RuleSet) Bounded(kind Kind, open, close string, escapable bool) error {
	openRE, err := regexp.Compile(open)
	if err != nil {
		return newCompileError(kind, open, err)
	}
	closeRE, err := regexp.Compile(close)
	if err != nil {
		return newCompileError(kind, close, err)
	}
	rs.rules = append(rs.rules, Rule{
		kind: kind, shape: shapeBounded,
		open: openRE, close: closeRE, escapable: escapable,
	})
	return nil
}

// BoundedInterp appends a Bounded rule that additionally carries zero or more
// interpolation holes: sub-ranges delimited by interpOpen/interpClose that
// are rendered as plain text and do not themselves re-enter any rule.
func (rs *RuleSet) BoundedInterp(kind Kind, open, close, interpOpen, interpClose string, escapable bool) error {
	openRE, err := regexp.Compile(open)
	if err != nil {
		return newCompileError(kind, open, err)
	}
	closeRE, err := regexp.Compile(close)
	if err != nil {
		return newCompileError(kind, close, err)
	}
	iOpenRE, err := regexp.Compile(interpOpen)
	if err != nil {
		return newCompileError(kind, interpOpen, err)
	}
	iCloseRE, err := regexp.Compile(interpClose)
	if err != nil {
		return newCompileError(kind, interpClose, err)
	}
	rs.rules = append(rs.rules, Rule{
		kind: kind, shape: shapeBoundedInterp,
		open: openRE, close: closeRE,
		interpOpen: iOpenRE, interpClose: iCloseRE,
		escapable: escapable,
	})
	return nil
}

// hasInterp reports whether r carries interpolation holes.
func (r *Rule) hasInterp() bool { return r.shape == shapeBoundedInterp }

// Kinds returns every distinct kind used by rs's rules, in the order each
// kind was first registered. Hosts can use this to resolve a palette that
// covers exactly the kinds a given RuleSet can ever emit.
func (rs *RuleSet) Kinds() []string {
	seen := make(map[Kind]bool)
	var out []string
	for _, r := range rs.rules {
		if !seen[r.kind] {
			seen[r.kind] = true
			out = append(out, string(r.kind))
		}
	}
	return out
}
