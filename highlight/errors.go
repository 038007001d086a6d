package highlight

import "github.com/pkg/errors"

// RegexCompileError is returned by RuleSet.Keyword, RuleSet.Bounded and
// RuleSet.BoundedInterp when one of the supplied patterns fails to compile.
// The rule is not installed when this error is returned.
type RegexCompileError struct {
	Kind    Kind
	Pattern string
	err     error
}

func (e *RegexCompileError) Error() string {
	return errors.Wrapf(e.err, "highlight: rule %q: bad pattern %q", e.Kind, e.Pattern).Error()
}

func (e *RegexCompileError) Unwrap() error { return e.err }

func newCompileError(kind Kind, pattern string, err error) error {
	if err == nil {
		return nil
	}
	return &RegexCompileError{Kind: kind, Pattern: pattern, err: err}
}

// IndexOutOfRangeError is returned by Edit, Insert, Remove and Line when
// called with a line index outside the current buffer. The highlighter's
// state is left unchanged.
type IndexOutOfRangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return errors.Errorf("highlight: %s: index %d out of range (have %d lines)", e.Op, e.Index, e.Len).Error()
}

// ContractViolation is returned (on a best-effort basis) when a Highlighter
// detects that it is being mutated concurrently by more than one goroutine.
// The core is not internally synchronized; callers that share a Highlighter
// across goroutines without external locking invite undefined behaviour, of
// which this error is only the detectable subset.
type ContractViolation struct {
	msg string
}

func (e *ContractViolation) Error() string { return "highlight: contract violation: " + e.msg }

// IsRegexCompileError reports whether err is (or wraps) a *RegexCompileError,
// the way os.IsNotExist reports a *PathError's kind without exposing the
// concrete type to every caller.
func IsRegexCompileError(err error) bool {
	var e *RegexCompileError
	return errors.As(err, &e)
}

// IsIndexOutOfRangeError reports whether err is (or wraps) an
// *IndexOutOfRangeError.
func IsIndexOutOfRangeError(err error) bool {
	var e *IndexOutOfRangeError
	return errors.As(err, &e)
}

// IsContractViolation reports whether err is (or wraps) a *ContractViolation.
func IsContractViolation(err error) bool {
	var e *ContractViolation
	return errors.As(err, &e)
}
