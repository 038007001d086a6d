package catalog

import "github.com/dpinela/synoptic/highlight"

var cKeywords = []string{
	`\bif\b`, `\belse\b`, `\bfor\b`, `\bwhile\b`, `\bdo\b`, `\bswitch\b`,
	`\bcase\b`, `\bdefault\b`, `\bbreak\b`, `\bcontinue\b`, `\breturn\b`,
	`\bgoto\b`, `\bstruct\b`, `\bunion\b`, `\benum\b`, `\btypedef\b`,
	`\bstatic\b`, `\bconst\b`, `\bvolatile\b`, `\bextern\b`, `\bregister\b`,
	`\binline\b`, `\bsizeof\b`, `\bvoid\b`, `\bint\b`, `\bchar\b`,
	`\bfloat\b`, `\bdouble\b`, `\blong\b`, `\bshort\b`, `\bunsigned\b`,
	`\bsigned\b`,
}

// NewCStyle returns a RuleSet covering the keywords and literal shapes
// shared by C and its closest relatives.
func NewCStyle() (*highlight.RuleSet, error) {
	rs := highlight.NewRuleSet()
	if err := rs.Join("keyword", cKeywords); err != nil {
		return nil, err
	}
	if err := rs.Keyword("comment", `//.*`); err != nil {
		return nil, err
	}
	if err := rs.Bounded("comment", `/\*`, `\*/`, false); err != nil {
		return nil, err
	}
	if err := rs.Bounded("string", `"`, `"`, true); err != nil {
		return nil, err
	}
	if err := rs.Bounded("string", `'`, `'`, true); err != nil {
		return nil, err
	}
	if err := rs.Keyword("header", `#\s*\w+.*`); err != nil {
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
