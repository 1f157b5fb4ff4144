package cloud

import (
	"github.com/seqsense/pcgol/mat"

	"github.com/pcmotion/pcmotion/rgba"
)

// SetColor recolors every point to col and updates the base color. With
// family it recolors every node in the family.
func (c *Cloud) SetColor(col rgba.Color, family bool) {
	r := rgba.ToRGBA(col, 1)
	for _, mob := range c.targets(family) {
		for i := range mob.colors {
			mob.colors[i] = r
		}
	}
	c.baseColor = col
}

// Color returns the color of the first point.
func (c *Cloud) Color() (rgba.Color, error) {
	if len(c.colors) == 0 {
		return rgba.Color{}, ErrEmptyCloud
	}
	return rgba.ToColor(c.colors[0]), nil
}

// BaseColor returns the nominal color used when points are added without
// explicit coloring.
func (c *Cloud) BaseColor() rgba.Color {
	return c.baseColor
}

// StrokeWidth returns the display stroke width hint.
func (c *Cloud) StrokeWidth() float32 {
	return c.strokeWidth
}

// SetStrokeWidth sets the stroke width, family-wide if family is true.
func (c *Cloud) SetStrokeWidth(w float32, family bool) {
	for _, mob := range c.targets(family) {
		mob.strokeWidth = w
	}
}

// SetColorByGradient recolors this node's points by a multi-stop gradient
// over sequence position: point i of N gets gradient parameter i/(N-1).
// One color degenerates to a constant fill; no colors is a no-op.
func (c *Cloud) SetColorByGradient(cols ...rgba.Color) {
	g := rgba.Gradient(cols, len(c.points))
	for i, col := range g {
		c.colors[i] = rgba.ToRGBA(col, 1)
	}
}

// SetColorsByRadialGradient colors each family member uniformly by the
// distance of that member's center from center (nil means this cloud's own
// center), interpolating inner to outer over radius. The color is uniform
// per member, not per point; members past radius get outer.
func (c *Cloud) SetColorsByRadialGradient(center *mat.Vec3, radius float32, inner, outer rgba.Color) {
	c0 := c.Center()
	if center != nil {
		c0 = *center
	}
	in := rgba.ToRGBA(inner, 1)
	out := rgba.ToRGBA(outer, 1)
	for _, mob := range c.Family() {
		t := mob.Center().Sub(c0).Norm() / radius
		if t > 1 {
			t = 1
		}
		r := rgba.Lerp(in, out, t)
		for i := range mob.colors {
			mob.colors[i] = r
		}
	}
}

// MatchColors aligns array lengths with other (stretching whichever node is
// shorter, as interpolation setup does) and then copies other's colors.
func (c *Cloud) MatchColors(other *Cloud) {
	if c.NumPoints() < other.NumPoints() {
		c.AlignPointsWithLarger(other)
	} else if other.NumPoints() < c.NumPoints() {
		other.AlignPointsWithLarger(c)
	}
	c.colors = append([]rgba.RGBA(nil), other.colors...)
}

// FadeTo moves this node's colors toward col by alpha and recurses into
// direct children.
func (c *Cloud) FadeTo(col rgba.Color, alpha float32) {
	r := rgba.ToRGBA(col, 1)
	for i := range c.colors {
		c.colors[i] = rgba.Lerp(c.colors[i], r, alpha)
	}
	for _, ch := range c.children {
		ch.FadeTo(col, alpha)
	}
}

func (c *Cloud) targets(family bool) []*Cloud {
	if family {
		return c.Family()
	}
	return []*Cloud{c}
}
