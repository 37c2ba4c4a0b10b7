package cli

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/benoitkugler/setcard/card"
)

// themeFile is the TOML representation of a card.Theme:
//
//	background = "#ffffff"
//	[colors]
//	a = "#fcae33"
//	b = "#95d26b"
//	c = "#42c1f7"
//
// Missing keys keep the default values.
type themeFile struct {
	Background string `toml:"background"`
	Colors     struct {
		A string `toml:"a"`
		B string `toml:"b"`
		C string `toml:"c"`
	} `toml:"colors"`
}

// loadTheme reads the theme at path, or returns card.DefaultTheme
// if path is empty.
func loadTheme(ctx context.Context, path string) (card.Theme, error) {
	if path == "" {
		return card.DefaultTheme, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return card.Theme{}, fmt.Errorf("opening theme: %w", err)
	}
	defer f.Close()

	theme, err := decodeTheme(ctx, f)
	if err != nil {
		return card.Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	loggerFromContext(ctx).Debugf("Loaded theme %s", path)
	return theme, nil
}

func decodeTheme(ctx context.Context, r io.Reader) (card.Theme, error) {
	var tf themeFile
	md, err := toml.NewDecoder(r).Decode(&tf)
	if err != nil {
		return card.Theme{}, fmt.Errorf("%w: %s", ErrInvalidTheme, err)
	}
	for _, key := range md.Undecoded() {
		loggerFromContext(ctx).Warnf("Ignoring unknown theme key %q", key.String())
	}

	theme := card.DefaultTheme
	for _, entry := range []struct {
		value string
		dst   *color.NRGBA
	}{
		{tf.Background, &theme.CardColor},
		{tf.Colors.A, &theme.Palette[card.ColorA]},
		{tf.Colors.B, &theme.Palette[card.ColorB]},
		{tf.Colors.C, &theme.Palette[card.ColorC]},
	} {
		if entry.value == "" {
			continue
		}
		c, err := parseHexColor(entry.value)
		if err != nil {
			return card.Theme{}, err
		}
		*entry.dst = c
	}
	return theme, nil
}

// parseHexColor parses the #rrggbb and #rgb notations.
func parseHexColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 3) {
		return color.NRGBA{}, fmt.Errorf("%w: color %q (expected #rrggbb)", ErrInvalidTheme, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q (expected #rrggbb)", ErrInvalidTheme, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
