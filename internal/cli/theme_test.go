package cli

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/setcard/card"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#fcae33", color.NRGBA{0xfc, 0xae, 0x33, 0xff}, false},
		{"#FFFFFF", color.NRGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#0a1", color.NRGBA{0x00, 0xaa, 0x11, 0xff}, false},
		{"fcae33", color.NRGBA{}, true},
		{"#fcae3", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTheme) {
				t.Errorf("parseHexColor(%q) error = %v, want ErrInvalidTheme", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeTheme(t *testing.T) {
	const src = `
background = "#000000"

[colors]
b = "#ff0000"
`
	theme, err := decodeTheme(context.Background(), strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	want := card.DefaultTheme
	want.CardColor = color.NRGBA{A: 0xff}
	want.Palette[card.ColorB] = color.NRGBA{R: 0xff, A: 0xff}
	if theme != want {
		t.Errorf("decodeTheme() = %+v, want %+v", theme, want)
	}
}

func TestDecodeThemeErrors(t *testing.T) {
	for _, src := range []string{
		`background = `,
		`background = "white"`,
		`[colors]
a = "#12"`,
	} {
		_, err := decodeTheme(context.Background(), strings.NewReader(src))
		if !errors.Is(err, ErrInvalidTheme) {
			t.Errorf("decodeTheme(%q) error = %v, want ErrInvalidTheme", src, err)
		}
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := loadTheme(context.Background(), "")
	if err != nil || theme != card.DefaultTheme {
		t.Errorf("empty path should give the default theme, got %+v, %v", theme, err)
	}

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("[colors]\nc = \"#123456\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	theme, err = loadTheme(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if got := theme.Palette[card.ColorC]; got != (color.NRGBA{0x12, 0x34, 0x56, 0xff}) {
		t.Errorf("unexpected color c %v", got)
	}

	if _, err := loadTheme(context.Background(), filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
