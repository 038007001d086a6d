package catalog

import "github.com/dpinela/synoptic/highlight"

var goKeywords = []string{
	`\bbreak\b`, `\bcase\b`, `\bchan\b`, `\bconst\b`, `\bcontinue\b`,
	`\bdefault\b`, `\bdefer\b`, `\belse\b`, `\bfallthrough\b`, `\bfor\b`,
	`\bfunc\b`, `\bgo\b`, `\bgoto\b`, `\bif\b`, `\bimport\b`, `\binterface\b`,
	`\bmap\b`, `\bpackage\b`, `\brange\b`, `\breturn\b`, `\bselect\b`,
	`\bstruct\b`, `\bswitch\b`, `\btype\b`, `\bvar\b`,
}

// NewGo returns a RuleSet covering Go's keywords, comments, string and rune
// literals, and the built-in boolean/nil identifiers.
func NewGo() (*highlight.RuleSet, error) {
	rs := highlight.NewRuleSet()
	if err := rs.Join("keyword", goKeywords); err != nil {
		return nil, err
	}
	if err := rs.Join("boolean", []string{`\btrue\b`, `\bfalse\b`, `\bnil\b`}); err != nil {
		return nil, err
	}
	if err := rs.Keyword("comment", `//.*`); err != nil {
		return nil, err
	}
	if err := rs.Bounded("comment", `/\*`, `\*/`, false); err != nil {
		return nil, err
	}
	if err := rs.Bounded("string", "`", "`", false); err != nil {
		return nil, err
	}
	if err := rs.Bounded("string", `"`, `"`, true); err != nil {
		return nil, err
	}
	if err := rs.Bounded("string", `'`, `'`, true); err != nil {
		return nil, err
	}
	if err := rs.Keyword("number", `\b\d+(\.\d+)?\b`); err != nil {
		return nil, err
	}
	if err := rs.Keyword("function", `\b[a-zA-Z_][A-Za-z0-9_]*\s*\(`); err != nil {
		return nil, err
	}
	return rs, nil
}
