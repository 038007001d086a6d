package catalog

import "github.com/dpinela/synoptic/highlight"

var rustKeywords = []string{
	`\bas\b`, `\bbreak\b`, `\bconst\b`, `\bcontinue\b`, `\bcrate\b`,
	`\belse\b`, `\benum\b`, `\bextern\b`, `\bfn\b`, `\bfor\b`, `\bif\b`,
	`\bimpl\b`, `\bin\b`, `\blet\b`, `\bloop\b`, `\bmatch\b`, `\bmod\b`,
	`\bmove\b`, `\bmut\b`, `\bpub\b`, `\bref\b`, `\breturn\b`, `\bself\b`,
	`\bstatic\b`, `\bstruct\b`, `\bsuper\b`, `\btrait\b`, `\btype\b`,
	`\bunsafe\b`, `\buse\b`, `\bwhere\b`, `\bwhile\b`, `\basync\b`,
	`\bawait\b`, `\bdyn\b`,
}

// NewRust returns a RuleSet covering Rust's keywords, comments, string and
// macro-invocation syntax.
func NewRust() (*highlight.RuleSet, error) {
	rs := highlight.NewRuleSet()
	if err := rs.Join("keyword", rustKeywords); err != nil {
		return nil, err
	}
	if err := rs.Join("boolean", []string{`\btrue\b`, `\bfalse\b`}); err != nil {
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
	if err := rs.Keyword("number", `\b\d+(\.\d+)?\b`); err != nil {
		return nil, err
	}
	if err := rs.Keyword("macro", `\b[a-z_][A-Za-z0-9_]*!`); err != nil {
		return nil, err
	}
	if err := rs.Keyword("struct", `\b[A-Z][A-Za-z0-9_]*\b`); err != nil {
		return nil, err
	}
	if err := rs.Bounded("attribute", `#\[`, `\]`, false); err != nil {
		return nil, err
	}
	if err := rs.Keyword("reference", `&(mut\s+|self\b)?`); err != nil {
		return nil, err
	}
	return rs, nil
}
