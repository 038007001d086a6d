// Package config defines configuration settings for synoptichl and
// functions for loading them from a file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/tajtiattila/basedir"

	"github.com/dpinela/synoptic/internal/color"
)

// Config holds every user-configurable setting synoptichl reads from disk.
type Config struct {
	TabWidth int
	Style    map[string]Style
	Lang     map[string]LangConfig
}

// Style describes the appearance of one highlighted kind.
type Style struct {
	Foreground, Background *color.Color
	Bold, Italic, Underline bool
}

// LangConfig is a per-extension override of the built-in catalogue.
type LangConfig struct {
	// Rules, if non-empty, replaces the catalogue's rule set for this
	// extension with one built from Keyword("kind", pattern) pairs.
	Rules map[string]string
}

// defaultStyles seeds the ramp used by ResolvePalette for any kind the user
// hasn't configured, so a catalogue language with kinds the user never
// mentioned in config.toml still renders with something distinguishable.
var defaultStyles = map[string]Style{
	"comment": {Foreground: &color.Color{R: 0, G: 200, B: 0}},
	"string":  {Foreground: &color.Color{R: 0, G: 0, B: 200}},
	"keyword": {Foreground: &color.Color{R: 200, G: 0, B: 200}},
	"number":  {Foreground: &color.Color{R: 200, G: 130, B: 0}},
}

// ConfigForExt returns the LangConfig for a file with the given filename
// extension. If none exists, it returns a zero LangConfig.
func (c *Config) ConfigForExt(ext string) LangConfig { return c.Lang[ext] }

// ResolvePalette returns a Style for every kind in kinds, taken from the
// user's config when present and from a small built-in default ramp
// otherwise. Kinds with neither a configured nor a default style resolve to
// the zero Style (the output device's default appearance).
func (c *Config) ResolvePalette(kinds []string) map[string]Style {
	out := make(map[string]Style, len(kinds))
	for _, k := range kinds {
		if s, ok := c.Style[k]; ok {
			out[k] = s
		} else if s, ok := defaultStyles[k]; ok {
			out[k] = s
		} else {
			out[k] = Style{}
		}
	}
	return out
}

// Load finds and reads the primary configuration file for the current user,
// according to the XDG base directory specification. It always returns a
// usable *Config, even if it also returns a non-nil error.
// The file is expected at synoptichl/config.toml in one of the
// appropriate configuration directories.
func Load() (*Config, error) {
	c := &Config{
		TabWidth: 4,
		Style:    make(map[string]Style),
		Lang:     make(map[string]LangConfig),
	}
	dir, err := basedir.Config.EnsureDir("synoptichl", 0700)
	if err != nil {
		return c, errors.Wrap(err, "error loading config file")
	}
	f, err := os.Open(filepath.Join(dir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, errors.Wrap(err, "error loading config file")
	}
	defer f.Close()
	if _, err := toml.DecodeReader(f, c); err != nil {
		return c, errors.Wrap(err, "error loading config file")
	}
	return c, nil
}
