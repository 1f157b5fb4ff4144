// Package rgba provides the color utilities used by point-cloud mobjects:
// parsing of color specs, conversion between colors and RGBA quadruples,
// gradient sampling and interpolation.
package rgba

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color spec without alpha. Alpha is attached on conversion to
// RGBA, matching how mobjects carry a nominal color plus per-point alpha.
type Color = colorful.Color

// RGBA is a red/green/blue/alpha quadruple, channels in [0, 1].
type RGBA [4]float32

// Palette of named defaults.
var (
	White  = MustParse("#ffffff")
	Black  = MustParse("#000000")
	Grey   = MustParse("#888888")
	Yellow = MustParse("#ffff00")
	Red    = MustParse("#fc6255")
	Green  = MustParse("#83c167")
	Blue   = MustParse("#58c4dd")
	Orange = MustParse("#ff862f")
	Purple = MustParse("#9a72ac")
	Pink   = MustParse("#d147bd")
)

var names = map[string]string{
	"white":  "#ffffff",
	"black":  "#000000",
	"grey":   "#888888",
	"gray":   "#888888",
	"yellow": "#ffff00",
	"red":    "#fc6255",
	"green":  "#83c167",
	"blue":   "#58c4dd",
	"orange": "#ff862f",
	"purple": "#9a72ac",
	"pink":   "#d147bd",
}

// Parse resolves a color spec: a "#rrggbb" hex string or a palette name.
func Parse(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return colorful.Hex(s)
	}
	hex, ok := names[strings.ToLower(s)]
	if !ok {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	return colorful.Hex(hex)
}

// MustParse is Parse for package-level color definitions.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToRGBA attaches alpha to a color.
func ToRGBA(c Color, alpha float32) RGBA {
	return RGBA{float32(c.R), float32(c.G), float32(c.B), alpha}
}

// ToColor drops the alpha channel.
func ToColor(r RGBA) Color {
	return Color{R: float64(r[0]), G: float64(r[1]), B: float64(r[2])}
}

// Alpha returns the alpha channel.
func (r RGBA) Alpha() float32 {
	return r[3]
}

// Lerp interpolates channelwise. t=0 yields a and t=1 yields b exactly.
func Lerp(a, b RGBA, t float32) RGBA {
	var out RGBA
	for i := range out {
		out[i] = (1-t)*a[i] + t*b[i]
	}
	return out
}
