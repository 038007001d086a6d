package highlight

import (
	"reflect"
	"testing"
)

func mustRuleSet(t *testing.T, build func(rs *RuleSet) error) *RuleSet {
	t.Helper()
	rs := NewRuleSet()
	if err := build(rs); err != nil {
		t.Fatalf("building rule set: %v", err)
	}
	return rs
}

func TestTokenizeBoundedAcrossLines(t *testing.T) {
	rs := mustRuleSet(t, func(rs *RuleSet) error {
		return rs.Bounded("comment", `/\*`, `\*/`, false)
	})
	lines := []string{"/* a", "b */ c"}
	table := Run(rs, lines)

	want := []LineState{
		{Spans: []Span{{Start: 0, End: 4, Kind: "comment"}}, OpensWith: NoMarker, ClosesWith: OpenMarker{Valid: true, RuleIndex: 0, Kind: "comment", Mode: ModeBody}},
		{Spans: []Span{{Start: 0, End: 4, Kind: "comment"}}, OpensWith: OpenMarker{Valid: true, RuleIndex: 0, Kind: "comment", Mode: ModeBody}, ClosesWith: NoMarker},
	}
	if !reflect.DeepEqual(table.Lines, want) {
		t.Errorf("got:\n%+v\nwant:\n%+v", table.Lines, want)
	}
}

func TestTokenizeBoundedInterpHoleIsPlainAndBlocksKeywords(t *testing.T) {
	rs := mustRuleSet(t, func(rs *RuleSet) error {
		if err := rs.BoundedInterp("string", `"`, `"`, `\{`, `\}`, false); err != nil {
			return err
		}
		return rs.Keyword("ident", `name`)
	})
	line := `"hi {name} there"`
	table := Run(rs, []string{line})

	want := []Span{
		{Start: 0, End: 4, Kind: "string"},
		{Start: 10, End: 17, Kind: "string"},
	}
	if got := table.Lines[0].Spans; !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%+v\nwant:\n%+v", got, want)
	}
	if c := table.Lines[0].ClosesWith; c != NoMarker {
		t.Errorf("closesWith = %+v, want NoMarker", c)
	}
}

func TestTokenizeNoRulesIsPlainText(t *testing.T) {
	rs := NewRuleSet()
	table := Run(rs, []string{"hello world"})
	if got := table.Lines[0].Spans; len(got) != 0 {
		t.Errorf("spans = %+v, want none", got)
	}
}

func TestTokenizeZeroWidthMatchIsDropped(t *testing.T) {
	rs := mustRuleSet(t, func(rs *RuleSet) error {
		return rs.Keyword("empty", `x*`)
	})
	table := Run(rs, []string{"abc"})
	if got := table.Lines[0].Spans; len(got) != 0 {
		t.Errorf("spans = %+v, want none (only zero-width matches exist)", got)
	}
}

func TestTokenizeMalformedUTF8IsPlainText(t *testing.T) {
	rs := mustRuleSet(t, func(rs *RuleSet) error {
		return rs.Keyword("any", `.`)
	})
	bad := "ab\xffcd"
	table := Run(rs, []string{bad})
	if got := table.Lines[0].Spans; got != nil {
		t.Errorf("spans = %+v, want nil for malformed input", got)
	}
}

func TestReconcileKeywordsOverlapPrecedence(t *testing.T) {
	t.Run("earlier start wins", func(t *testing.T) {
		rs := mustRuleSet(t, func(rs *RuleSet) error {
			if err := rs.Keyword("kw1", `foobar`); err != nil {
				return err
			}
			return rs.Keyword("kw2", `bar`)
		})
		got := reconcileKeywords(rs.rules, "foobar", nil)
		want := []keywordCand{{byteRange{0, 6}, "kw1", 0}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("tie on start, larger end wins", func(t *testing.T) {
		rs := mustRuleSet(t, func(rs *RuleSet) error {
			if err := rs.Keyword("a", `fo`); err != nil {
				return err
			}
			return rs.Keyword("b", `foo`)
		})
		got := reconcileKeywords(rs.rules, "foo", nil)
		want := []keywordCand{{byteRange{0, 3}, "b", 1}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("full tie, earlier rule wins", func(t *testing.T) {
		rs := mustRuleSet(t, func(rs *RuleSet) error {
			if err := rs.Keyword("x", `foo`); err != nil {
				return err
			}
			return rs.Keyword("y", `foo`)
		})
		got := reconcileKeywords(rs.rules, "foo", nil)
		want := []keywordCand{{byteRange{0, 3}, "x", 0}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("keywords never touch an occupied range", func(t *testing.T) {
		rs := mustRuleSet(t, func(rs *RuleSet) error {
			return rs.Keyword("kw", `bar`)
		})
		got := reconcileKeywords(rs.rules, "foobar", []byteRange{{0, 6}})
		if len(got) != 0 {
			t.Errorf("got %+v, want none (blocked by occupied range)", got)
		}
	})
}

func TestSpansDoNotOverlapAndReconstructLine(t *testing.T) {
	rs := mustRuleSet(t, func(rs *RuleSet) error {
		if err := rs.Bounded("comment", `/\*`, `\*/`, false); err != nil {
			return err
		}
		return rs.Keyword("kw", `var`)
	})
	line := `var x = 1 /* note */`
	table := Run(rs, []string{line})
	spans := table.Lines[0].Spans
	for i := 1; i < len(spans); i++ {
		if spans[i-1].End > spans[i].Start {
			t.Fatalf("spans overlap: %+v then %+v", spans[i-1], spans[i])
		}
	}
	want := []Span{
		{Start: 0, End: 3, Kind: "kw"},
		{Start: 10, End: 20, Kind: "comment"},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %+v, want %+v", spans, want)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	rs := mustRuleSet(t, func(rs *RuleSet) error {
		return rs.Bounded("comment", `/\*`, `\*/`, false)
	})
	lines := []string{"a /* b", "c */ d", "/* e"}
	t1 := Run(rs, lines)
	t2 := Run(rs, lines)
	if !reflect.DeepEqual(t1, t2) {
		t.Errorf("Run is not deterministic:\n%+v\n%+v", t1, t2)
	}
}
