package cloud

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
)

// FilterOut keeps, in every family member, only the points (and their
// paired colors) satisfying keep, preserving relative order.
func (c *Cloud) FilterOut(keep func(mat.Vec3) bool) {
	for _, mob := range c.Family() {
		idx := make([]int, 0, len(mob.points))
		for i, p := range mob.points {
			if keep(p) {
				idx = append(idx, i)
			}
		}
		mob.reindex(idx)
	}
}

// ThinOut keeps only every factor-th point of every family member, starting
// at index 0. Used to cut point density for faster animation. factor < 2
// leaves the cloud unchanged.
func (c *Cloud) ThinOut(factor int) {
	if factor < 2 {
		return
	}
	for _, mob := range c.Family() {
		idx := make([]int, 0, (len(mob.points)+factor-1)/factor)
		for i := 0; i < len(mob.points); i += factor {
			idx = append(idx, i)
		}
		mob.reindex(idx)
	}
}

// SortPoints stably reorders every family member's parallel arrays by
// ascending key. A nil key sorts by x.
func (c *Cloud) SortPoints(key func(mat.Vec3) float32) {
	if key == nil {
		key = func(p mat.Vec3) float32 { return p[0] }
	}
	for _, mob := range c.Family() {
		idx := make([]int, len(mob.points))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return key(mob.points[idx[a]]) < key(mob.points[idx[b]])
		})
		mob.reindex(idx)
	}
}

// IngestChildren flattens the family's arrays into this node, depth-first,
// and removes all children. On a childless node it is a no-op.
func (c *Cloud) IngestChildren() {
	for _, mob := range c.Family()[1:] {
		c.points = append(c.points, mob.points...)
		c.colors = append(c.colors, mob.colors...)
	}
	c.children = nil
}

// PointFromProportion returns the point at the rounded proportional index:
// alpha 0 is the first point and alpha 1 the last.
func (c *Cloud) PointFromProportion(alpha float32) (mat.Vec3, error) {
	n := len(c.points)
	if n == 0 {
		return mat.Vec3{}, ErrEmptyCloud
	}
	i := int(math32.Round(alpha * float32(n-1)))
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return c.points[i], nil
}
