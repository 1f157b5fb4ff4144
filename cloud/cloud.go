// Package cloud implements point-cloud mobjects: scenegraph nodes holding
// parallel arrays of 3D points and RGBA colors, composable into trees and
// interpolatable for animation. Rendering and scene traversal live in the
// driving engine; this package only owns the point/color data and the
// alignment and interpolation algorithms between clouds.
//
// Nodes are not safe for concurrent mutation; the driving scheduler is
// expected to serialize access.
package cloud

import (
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/pcmotion/pcmotion/rgba"
)

// Cloud is a point-cloud mobject. points and colors are index-aligned and
// always the same length after any public mutation.
type Cloud struct {
	points      pc.Vec3Slice
	colors      []rgba.RGBA
	strokeWidth float32
	baseColor   rgba.Color
	children    []*Cloud
}

// New returns an empty cloud with defaults taken from p.
func New(p Params) *Cloud {
	return &Cloud{
		strokeWidth: p.StrokeWidth,
		baseColor:   p.base(),
	}
}

// Reset truncates the point and color arrays to empty.
func (c *Cloud) Reset() {
	c.points = c.points[:0]
	c.colors = c.colors[:0]
}

// AddPoints appends pts to the cloud. colors must pair 1:1 with pts or be
// nil; nil colors the new points with the base color at full alpha. On
// error nothing is appended.
func (c *Cloud) AddPoints(pts []mat.Vec3, colors []rgba.RGBA) error {
	if colors != nil && len(colors) != len(pts) {
		return ErrMismatchedColors
	}
	if colors == nil {
		c.AddPointsColor(pts, c.baseColor, 1)
		return nil
	}
	c.points = append(c.points, pts...)
	c.colors = append(c.colors, colors...)
	return nil
}

// AddPointsColor appends pts, all colored col at the given alpha.
func (c *Cloud) AddPointsColor(pts []mat.Vec3, col rgba.Color, alpha float32) {
	r := rgba.ToRGBA(col, alpha)
	c.points = append(c.points, pts...)
	for range pts {
		c.colors = append(c.colors, r)
	}
}

// NumPoints returns the number of points owned by this node alone.
func (c *Cloud) NumPoints() int {
	return len(c.points)
}

// Points exposes the point array. It satisfies pc.Vec3RandomAccessor for
// zero-copy consumption by renderers; callers must not resize it.
func (c *Cloud) Points() pc.Vec3Slice {
	return c.points
}

// Colors exposes the color array, index-aligned with Points.
func (c *Cloud) Colors() []rgba.RGBA {
	return c.colors
}

// Add attaches children to this node.
func (c *Cloud) Add(children ...*Cloud) {
	c.children = append(c.children, children...)
}

// Children returns the direct children in attach order.
func (c *Cloud) Children() []*Cloud {
	return c.children
}

// Family returns self plus all descendants, depth-first, self first.
func (c *Cloud) Family() []*Cloud {
	fam := []*Cloud{c}
	for _, ch := range c.children {
		fam = append(fam, ch.Family()...)
	}
	return fam
}

// Center returns the bounding-box center over the family's points, or the
// origin for a family with no points.
func (c *Cloud) Center() mat.Vec3 {
	min, max, ok := c.bounds()
	if !ok {
		return mat.Vec3{}
	}
	return min.Add(max).Mul(0.5)
}

func (c *Cloud) bounds() (mat.Vec3, mat.Vec3, bool) {
	var min, max mat.Vec3
	found := false
	for _, mob := range c.Family() {
		for _, p := range mob.points {
			if !found {
				min, max = p, p
				found = true
				continue
			}
			for i := range p {
				if p[i] < min[i] {
					min[i] = p[i]
				}
				if p[i] > max[i] {
					max[i] = p[i]
				}
			}
		}
	}
	return min, max, found
}

// Transform applies an affine transform to every point in the family.
func (c *Cloud) Transform(m mat.Mat4) {
	for _, mob := range c.Family() {
		for i, p := range mob.points {
			mob.points[i] = m.TransformAffine(p)
		}
	}
}

// Shift translates the family by v.
func (c *Cloud) Shift(v mat.Vec3) {
	c.Transform(mat.Translate(v[0], v[1], v[2]))
}

// Copy returns a deep copy; arrays and children are never shared.
func (c *Cloud) Copy() *Cloud {
	cp := &Cloud{
		points:      append(pc.Vec3Slice(nil), c.points...),
		colors:      append([]rgba.RGBA(nil), c.colors...),
		strokeWidth: c.strokeWidth,
		baseColor:   c.baseColor,
	}
	for _, ch := range c.children {
		cp.children = append(cp.children, ch.Copy())
	}
	return cp
}

// reindex rebuilds every per-point array through one index list, keeping
// the arrays in lockstep. Indices may repeat or drop entries.
func (c *Cloud) reindex(idx []int) {
	pts := make(pc.Vec3Slice, len(idx))
	cols := make([]rgba.RGBA, len(idx))
	for j, i := range idx {
		pts[j] = c.points[i]
		cols[j] = c.colors[i]
	}
	c.points = pts
	c.colors = cols
}

func lerp(a, b, t float32) float32 {
	return (1-t)*a + t*b
}

func lerpVec3(a, b mat.Vec3, t float32) mat.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
