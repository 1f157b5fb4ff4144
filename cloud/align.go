package cloud

import (
	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/pc"

	"github.com/pcmotion/pcmotion/rgba"
)

// AlignPointsWithLarger stretches every per-point array up to larger's
// point count by duplicating entries (never truncating), so the two clouds
// can be interpolated index by index. Order and endpoints are preserved; a
// length-1 array broadcasts its one value. A target at or below the current
// length is a no-op.
func (c *Cloud) AlignPointsWithLarger(larger *Cloud) {
	target := larger.NumPoints()
	cur := c.NumPoints()
	if target <= cur {
		return
	}
	if cur == 0 {
		c.points = make(pc.Vec3Slice, target)
		c.colors = make([]rgba.RGBA, target)
		base := rgba.ToRGBA(c.baseColor, 1)
		for i := range c.colors {
			c.colors[i] = base
		}
		return
	}
	c.reindex(stretchIndices(cur, target))
}

// stretchIndices maps target slots back onto cur entries: slot i reads
// entry i*cur/target, so each source entry is repeated a near-equal number
// of times in order.
func stretchIndices(cur, target int) []int {
	idx := make([]int, target)
	for i := range idx {
		idx[i] = i * cur / target
	}
	return idx
}

// InterpolateColor sets this node's colors to the elementwise blend of a's
// and b's colors at alpha, and blends the stroke width the same way. The
// two sources must be pre-aligned to equal length by the caller.
func (c *Cloud) InterpolateColor(a, b *Cloud, alpha float32) {
	n := len(a.colors)
	if len(b.colors) < n {
		n = len(b.colors)
	}
	cols := make([]rgba.RGBA, n)
	for i := range cols {
		cols[i] = rgba.Lerp(a.colors[i], b.colors[i], alpha)
	}
	c.colors = cols
	c.SetStrokeWidth(lerp(a.strokeWidth, b.strokeWidth, alpha), true)
}

// PointwiseBecomePartial replaces this node's arrays with a copy of the
// contiguous slice of src from floor(a*N) to floor(b*N). a and b are
// expected in [0, 1] with a <= b; indices are clamped so misuse cannot
// panic, but the range is otherwise the caller's responsibility.
func (c *Cloud) PointwiseBecomePartial(src *Cloud, a, b float32) {
	n := src.NumPoints()
	lo := int(math32.Floor(a * float32(n)))
	hi := int(math32.Floor(b * float32(n)))
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	if hi < lo {
		hi = lo
	}
	c.points = append(pc.Vec3Slice(nil), src.points[lo:hi]...)
	c.colors = append([]rgba.RGBA(nil), src.colors[lo:hi]...)
}
