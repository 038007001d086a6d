package termesc

import (
	"testing"

	"github.com/dpinela/synoptic/internal/color"
)

func TestSetGraphicAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attrs []GraphicAttribute
		want  string
	}{
		{"none", nil, csi + "m"},
		{"bold", []GraphicAttribute{StyleBold}, csi + "1m"},
		{"foreground", []GraphicAttribute{Foreground(color.Color{R: 255, G: 0, B: 128})}, csi + "38;2;255;0;128m"},
		{"foreground and bold", []GraphicAttribute{StyleBold, Foreground(color.Color{R: 1, G: 2, B: 3})}, csi + "1;38;2;1;2;3m"},
		{"background", []GraphicAttribute{Background(color.Color{R: 10, G: 20, B: 30})}, csi + "48;2;10;20;30m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SetGraphicAttributes(tt.attrs...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
