package catalog

import "github.com/dpinela/synoptic/highlight"

var pythonKeywords = []string{
	`\band\b`, `\bas\b`, `\bassert\b`, `\bbreak\b`, `\bclass\b`,
	`\bcontinue\b`, `\bdef\b`, `\bdel\b`, `\belif\b`, `\belse\b`,
	`\bexcept\b`, `\bfinally\b`, `\bfor\b`, `\bfrom\b`, `\bglobal\b`,
	`\bif\b`, `\bimport\b`, `\bin\b`, `\bis\b`, `\blambda\b`, `\bnot\b`,
	`\bor\b`, `\bpass\b`, `\braise\b`, `\breturn\b`, `\btry\b`,
	`\bwhile\b`, `\bwith\b`, `\byield\b`,
}

// NewPython returns a RuleSet covering Python's keywords, comments, plain
// and triple-quoted strings, decorators and class names. The triple-quote
// rule is registered before the plain-quote rule so that it wins the
// tie-break when both opens start at the same column.
func NewPython() (*highlight.RuleSet, error) {
	rs := highlight.NewRuleSet()
	if err := rs.Join("keyword", pythonKeywords); err != nil {
		return nil, err
	}
	if err := rs.Join("boolean", []string{`\bTrue\b`, `\bFalse\b`, `\bNone\b`}); err != nil {
		return nil, err
	}
	if err := rs.Keyword("comment", `#.*`); err != nil {
		return nil, err
	}
	if err := rs.Bounded("string", `"""`, `"""`, false); err != nil {
		return nil, err
	}
	if err := rs.Bounded("string", `"`, `"`, true); err != nil {
		return nil, err
	}
	if err := rs.Keyword("number", `\b\d+(\.\d+)?\b`); err != nil {
		return nil, err
	}
	if err := rs.Keyword("function", `\b[a-z_][A-Za-z0-9_]*\s*\(`); err != nil {
		return nil, err
	}
	if err := rs.Keyword("struct", `\bclass\s+[A-Za-z_][A-Za-z0-9_]*`); err != nil {
		return nil, err
	}
	if err := rs.Keyword("attribute", `@[A-Za-z_][A-Za-z0-9_.]*`); err != nil {
		return nil, err
	}
	return rs, nil
}
