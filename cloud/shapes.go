package cloud

import (
	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"

	"github.com/pcmotion/pcmotion/rgba"
)

// DotParams configures NewDot. Zero values fall back to the Params
// defaults: radius, stroke width, 1D density and dot color, centered at
// the origin.
type DotParams struct {
	Radius      float32
	StrokeWidth float32
	Density     float32
	Color       *rgba.Color
	Center      mat.Vec3
}

// Dot is a filled disk of points.
type Dot struct {
	LineCloud
	radius float32
}

// NewDot builds a dot at the configured center.
func NewDot(p Params, dp DotParams) *Dot {
	if dp.Radius == 0 {
		dp.Radius = p.DotRadius
	}
	if dp.StrokeWidth == 0 {
		dp.StrokeWidth = p.DotStrokeWidth
	}
	if dp.Density == 0 {
		dp.Density = p.Density1D
	}
	col := p.dot()
	if dp.Color != nil {
		col = *dp.Color
	}
	d := &Dot{radius: dp.Radius}
	d.strokeWidth = dp.StrokeWidth
	d.baseColor = col
	d.SetDensity(dp.Density)
	d.generate()
	d.Shift(dp.Center)
	return d
}

// Radius returns the dot radius.
func (d *Dot) Radius() float32 {
	return d.radius
}

// generate fills the disk by nested sampling: radial steps of epsilon, and
// for each ring angular steps of epsilon/r so arc-length spacing stays
// roughly constant across rings. The r=0 ring degenerates to the single
// center point.
func (d *Dot) generate() {
	eps := d.Epsilon()
	var pts []mat.Vec3
	for r := float32(0); r < d.radius; r += eps {
		if r == 0 {
			pts = append(pts, mat.Vec3{})
			continue
		}
		for theta := float32(0); theta < 2*math32.Pi; theta += eps / r {
			pts = append(pts, mat.Vec3{r * math32.Cos(theta), r * math32.Sin(theta), 0})
		}
	}
	d.AddPointsColor(pts, d.baseColor, 1)
}

// Point is a cloud of exactly one point (until mutated further).
type Point struct {
	Cloud
}

// NewPoint builds a single-point cloud at location. col nil uses the
// Params point color.
func NewPoint(p Params, location mat.Vec3, col *rgba.Color) *Point {
	c := p.point()
	if col != nil {
		c = *col
	}
	pt := &Point{}
	pt.baseColor = c
	pt.strokeWidth = p.StrokeWidth
	pt.AddPointsColor([]mat.Vec3{location}, c, 1)
	return pt
}
