package catalog

import "github.com/dpinela/synoptic/highlight"

// NewJSON returns a RuleSet covering JSON's string, number and literal
// tokens. JSON has no comments or multi-line identifiers, so this is the
// smallest of the built-in catalogue entries.
func NewJSON() (*highlight.RuleSet, error) {
	rs := highlight.NewRuleSet()
	if err := rs.Join("keyword", []string{`\btrue\b`, `\bfalse\b`, `\bnull\b`}); err != nil {
		return nil, err
	}
	if err := rs.Bounded("string", `"`, `"`, true); err != nil {
		return nil, err
	}
	if err := rs.Keyword("number", `-?\b\d+(\.\d+)?([eE][+-]?\d+)?\b`); err != nil {
		return nil, err
	}
	return rs, nil
}
