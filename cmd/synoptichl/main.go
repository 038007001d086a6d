// Command synoptichl is a minimal demonstration host for the highlight
// package: it prints a file to the terminal with ANSI colour, optionally
// re-highlighting it line by line as the file changes on disk.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/dpinela/synoptic/catalog"
	"github.com/dpinela/synoptic/highlight"
	"github.com/dpinela/synoptic/internal/config"
	"github.com/dpinela/synoptic/internal/pathwatch"
	"github.com/dpinela/synoptic/internal/termesc"
)

// watchPollInterval is shorter than pathwatch's own default: every tick here
// only costs a line-by-line Edit/Insert/Remove, not a full file reload.
const watchPollInterval = 50 * time.Millisecond

func main() {
	var path string
	watch := false
	for _, arg := range os.Args[1:] {
		if arg == "--watch" {
			watch = true
			continue
		}
		path = arg
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[--watch] <file>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	rs, err := ruleSetFor(path, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	h := highlight.NewWithRules(cfg.TabWidth, rs)
	palette := cfg.ResolvePalette(rs.Kinds())

	lines, err := readLines(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error reading", path, ":", err)
		os.Exit(2)
	}
	h.Run(lines)
	printAll(h, lines, palette)

	if !watch {
		return
	}
	if err := watchAndReprint(path, h, &lines, palette); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

// ruleSetFor resolves the RuleSet to use for path: an inline override from
// cfg.Lang, the catalogue entry for path's extension, or a rule set with no
// rules (plain text) if neither applies.
func ruleSetFor(path string, cfg *config.Config) (*highlight.RuleSet, error) {
	ext := filepath.Ext(path)
	if lc := cfg.ConfigForExt(ext); len(lc.Rules) > 0 {
		rs := highlight.NewRuleSet()
		for kind, pattern := range lc.Rules {
			if err := rs.Keyword(highlight.Kind(kind), pattern); err != nil {
				return nil, errors.Wrapf(err, "config: rule for kind %q", kind)
			}
		}
		return rs, nil
	}
	if rs, ok := catalog.ForExtension(ext); ok {
		return rs, nil
	}
	return highlight.NewRuleSet(), nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func printAll(h *highlight.Highlighter, lines []string, palette map[string]config.Style) {
	gutterWidth := runewidth.StringWidth(strconv.Itoa(len(lines)))
	for i, line := range lines {
		toks, err := h.Line(i, line)
		if err != nil {
			continue
		}
		fmt.Printf("%*d  ", gutterWidth, i+1)
		printTokens(toks, palette)
	}
}

func printTokens(toks []highlight.Token, palette map[string]config.Style) {
	for _, tok := range toks {
		if tok.Plain {
			fmt.Print(tok.Text)
			continue
		}
		st, ok := palette[string(tok.Kind)]
		if !ok {
			fmt.Print(tok.Text)
			continue
		}
		fmt.Print(sgrForStyle(st))
		fmt.Print(tok.Text)
		fmt.Print(termesc.SetGraphicAttributes())
	}
	fmt.Println()
}

func sgrForStyle(s config.Style) string {
	var attrs []termesc.GraphicAttribute
	if s.Bold {
		attrs = append(attrs, termesc.StyleBold)
	}
	if s.Foreground != nil {
		attrs = append(attrs, termesc.Foreground(*s.Foreground))
	}
	if s.Background != nil {
		attrs = append(attrs, termesc.Background(*s.Background))
	}
	return termesc.SetGraphicAttributes(attrs...)
}

// watchAndReprint polls path for changes and re-highlights it incrementally,
// clearing and redrawing the screen after each change.
func watchAndReprint(path string, h *highlight.Highlighter, lines *[]string, palette map[string]config.Style) error {
	w := pathwatch.NewWatcherInterval(watchPollInterval)
	defer w.Close()
	changed := make(chan struct{}, 1)
	w.Add(path, changed)

	go func() {
		for err := range w.Errors() {
			fmt.Fprintln(os.Stderr, "watch:", err)
		}
	}()

	for range changed {
		newLines, err := readLines(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error reading", path, ":", err)
			continue
		}
		applyDiff(h, *lines, newLines)
		*lines = newLines
		fmt.Print(termesc.SetCursorPos(1, 1), termesc.ClearScreenForward)
		printAll(h, newLines, palette)
	}
	return nil
}

// applyDiff updates h to match newLines given that it was last run against
// oldLines. It is not a general diff algorithm: every line index present in
// both slices whose text differs is Edited in place, and any remaining
// length difference is handled with Insert or Remove calls at the tail.
func applyDiff(h *highlight.Highlighter, oldLines, newLines []string) {
	n := len(oldLines)
	if len(newLines) < n {
		n = len(newLines)
	}
	for i := 0; i < n; i++ {
		if oldLines[i] != newLines[i] {
			h.Edit(i, newLines[i])
		}
	}
	switch {
	case len(newLines) > len(oldLines):
		for i := len(oldLines); i < len(newLines); i++ {
			h.Insert(i, newLines[i])
		}
	case len(newLines) < len(oldLines):
		for i := len(oldLines) - 1; i >= len(newLines); i-- {
			h.Remove(i)
		}
	}
}

