package cloud

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pcmotion/pcmotion/rgba"
)

// Default construction parameters. Densities are points per unit length.
const (
	DefaultDensity1D      = 250
	DefaultDensity2D      = 25
	DefaultStrokeWidth    = 4
	DefaultDotRadius      = 0.075
	DefaultDotStrokeWidth = 2
)

// Params holds the construction defaults for clouds and shapes. Colors are
// specs accepted by rgba.Parse (hex or palette name).
type Params struct {
	Density1D      float32 `yaml:"density_1d"`
	Density2D      float32 `yaml:"density_2d"`
	StrokeWidth    float32 `yaml:"stroke_width"`
	DotRadius      float32 `yaml:"dot_radius"`
	DotStrokeWidth float32 `yaml:"dot_stroke_width"`
	BaseColor      string  `yaml:"base_color"`
	DotColor       string  `yaml:"dot_color"`
	PointColor     string  `yaml:"point_color"`
}

// DefaultParams returns the stock parameter set.
func DefaultParams() Params {
	return Params{
		Density1D:      DefaultDensity1D,
		Density2D:      DefaultDensity2D,
		StrokeWidth:    DefaultStrokeWidth,
		DotRadius:      DefaultDotRadius,
		DotStrokeWidth: DefaultDotStrokeWidth,
		BaseColor:      "white",
		DotColor:       "yellow",
		PointColor:     "black",
	}
}

// LoadParams unmarshals yaml over the defaults, so a file only needs the
// keys it overrides.
func LoadParams(b []byte) (Params, error) {
	p := DefaultParams()
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Params{}, err
	}
	if err := p.validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func (p Params) validate() error {
	if p.Density1D <= 0 || p.Density2D <= 0 {
		return fmt.Errorf("density must be positive, got 1d: %v, 2d: %v", p.Density1D, p.Density2D)
	}
	for _, s := range []string{p.BaseColor, p.DotColor, p.PointColor} {
		if _, err := rgba.Parse(s); err != nil {
			return err
		}
	}
	return nil
}

func (p Params) base() rgba.Color {
	c, err := rgba.Parse(p.BaseColor)
	if err != nil {
		return rgba.White
	}
	return c
}

func (p Params) dot() rgba.Color {
	c, err := rgba.Parse(p.DotColor)
	if err != nil {
		return rgba.Yellow
	}
	return c
}

func (p Params) point() rgba.Color {
	c, err := rgba.Parse(p.PointColor)
	if err != nil {
		return rgba.Black
	}
	return c
}
