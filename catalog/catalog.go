// Package catalog provides ready-made highlight.RuleSet constructors for a
// handful of common languages, keyed by file extension, along with a
// registry a host can extend without touching this package.
package catalog

import (
	"sync"

	"github.com/dpinela/synoptic/highlight"
)

type builder func() (*highlight.RuleSet, error)

var builtins = map[string]builder{
	".go":   NewGo,
	".c":    NewCStyle,
	".h":    NewCStyle,
	".cc":   NewCStyle,
	".cpp":  NewCStyle,
	".json": NewJSON,
	".rs":   NewRust,
	".py":   NewPython,
}

var (
	mu       sync.RWMutex
	registry = map[string]func() *highlight.RuleSet{}
)

// Register adds or overrides a catalogue entry for ext (including the
// leading dot, e.g. ".go"). It lets a host extend the catalogue for a
// language this package doesn't know about without forking it.
func Register(ext string, build func() *highlight.RuleSet) {
	mu.Lock()
	defer mu.Unlock()
	registry[ext] = build
}

// ForExtension returns the built-in or registered RuleSet for ext, or
// (nil, false) if none is known. Built-in rule sets are never expected to
// fail to compile; a panic here indicates a bug in this package, not in
// caller-supplied input.
func ForExtension(ext string) (*highlight.RuleSet, bool) {
	mu.RLock()
	custom, ok := registry[ext]
	mu.RUnlock()
	if ok {
		return custom(), true
	}
	build, ok := builtins[ext]
	if !ok {
		return nil, false
	}
	rs, err := build()
	if err != nil {
		panic("catalog: built-in rule set for " + ext + " failed to compile: " + err.Error())
	}
	return rs, true
}

// FromExtension returns a Highlighter pre-populated from the catalogue
// entry for ext, or (nil, false) if ext is unknown.
func FromExtension(ext string, tabWidth int) (*highlight.Highlighter, bool) {
	rs, ok := ForExtension(ext)
	if !ok {
		return nil, false
	}
	return highlight.NewWithRules(tabWidth, rs), true
}
