package config

import (
	"reflect"
	"testing"

	"github.com/dpinela/synoptic/internal/color"
)

func TestResolvePaletteUsesConfiguredStyleOverDefault(t *testing.T) {
	c := &Config{Style: map[string]Style{
		"comment": {Foreground: &color.Color{R: 1, G: 2, B: 3}},
	}}
	got := c.ResolvePalette([]string{"comment"})
	want := map[string]Style{"comment": {Foreground: &color.Color{R: 1, G: 2, B: 3}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResolvePaletteFallsBackToDefaultRamp(t *testing.T) {
	c := &Config{Style: map[string]Style{}}
	got := c.ResolvePalette([]string{"comment", "string"})
	if got["comment"] != defaultStyles["comment"] {
		t.Errorf("comment = %+v, want default %+v", got["comment"], defaultStyles["comment"])
	}
	if got["string"] != defaultStyles["string"] {
		t.Errorf("string = %+v, want default %+v", got["string"], defaultStyles["string"])
	}
}

func TestResolvePaletteUnknownKindIsZeroStyle(t *testing.T) {
	c := &Config{Style: map[string]Style{}}
	got := c.ResolvePalette([]string{"made-up-kind"})
	if got["made-up-kind"] != (Style{}) {
		t.Errorf("got %+v, want zero Style", got["made-up-kind"])
	}
}

func TestConfigForExtUnknownExtension(t *testing.T) {
	c := &Config{Lang: map[string]LangConfig{}}
	if lc := c.ConfigForExt(".xyz"); len(lc.Rules) != 0 {
		t.Errorf("got %+v, want a zero LangConfig", lc)
	}
}
