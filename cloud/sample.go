package cloud

import (
	"github.com/seqsense/pcgol/mat"

	"github.com/pcmotion/pcmotion/rgba"
)

// sampler owns a linear sampling density (points per unit length) and the
// derived step epsilon = 1/density. Both the 1D and 2D clouds share it.
type sampler struct {
	density float32
	epsilon float32
}

// SetDensity changes the sampling density and recomputes the step.
func (s *sampler) SetDensity(d float32) {
	s.density = d
	s.epsilon = 1 / d
}

// Density returns the sampling density in points per unit length.
func (s *sampler) Density() float32 {
	return s.density
}

// Epsilon returns the sampling step.
func (s *sampler) Epsilon() float32 {
	return s.epsilon
}

// LineCloud is a cloud populated by sampling 1D curves at a fixed linear
// density.
type LineCloud struct {
	Cloud
	sampler
}

// NewLineCloud returns an empty 1D-sampled cloud with density p.Density1D.
func NewLineCloud(p Params) *LineCloud {
	lc := &LineCloud{Cloud: *New(p)}
	lc.SetDensity(p.Density1D)
	return lc
}

// AddLine samples the segment start-end at roughly epsilon spacing in 3D
// space, so point spacing is constant regardless of segment length. A
// zero-length segment emits a single point at start. col nil uses the base
// color.
func (lc *LineCloud) AddLine(start, end mat.Vec3, col *rgba.Color) {
	var pts []mat.Vec3
	length := end.Sub(start).Norm()
	if length == 0 {
		pts = []mat.Vec3{start}
	} else {
		step := lc.epsilon / length
		for t := float32(0); t < 1; t += step {
			pts = append(pts, lerpVec3(start, end, t))
		}
	}
	c := lc.baseColor
	if col != nil {
		c = *col
	}
	lc.AddPointsColor(pts, c, 1)
}

// SurfaceCloud is a cloud populated by sampling a 2D region at a fixed
// linear density. Concrete surface sampling is the caller's; SurfaceCloud
// only carries the density mechanism and the generation hook.
type SurfaceCloud struct {
	Cloud
	sampler
}

// NewSurfaceCloud returns an empty 2D-sampled cloud with density
// p.Density2D.
func NewSurfaceCloud(p Params) *SurfaceCloud {
	sc := &SurfaceCloud{Cloud: *New(p)}
	sc.SetDensity(p.Density2D)
	return sc
}

// Generate appends the points produced by gen for the current sampling
// step. col nil uses the base color.
func (sc *SurfaceCloud) Generate(gen func(eps float32) []mat.Vec3, col *rgba.Color) {
	c := sc.baseColor
	if col != nil {
		c = *col
	}
	sc.AddPointsColor(gen(sc.epsilon), c, 1)
}
