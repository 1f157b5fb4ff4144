// Package pcdio reads and writes point-cloud mobjects as PCD files. The
// family is flattened on export; the tree structure and the stroke width
// display hint are not persisted.
package pcdio

import (
	"io"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/pcmotion/pcmotion/cloud"
	"github.com/pcmotion/pcmotion/rgba"
)

// Marshal writes c (family flattened) as a PCD with fields x, y, z, rgba.
func Marshal(c *cloud.Cloud, w io.Writer) error {
	pp, err := toPC(c)
	if err != nil {
		return err
	}
	return pc.Marshal(pp, w)
}

// Unmarshal reads a PCD into a new cloud. Files without an rgba field get
// the default base color.
func Unmarshal(r io.Reader) (*cloud.Cloud, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, err
	}
	return fromPC(pp)
}

func toPC(c *cloud.Cloud) (*pc.PointCloud, error) {
	flat := c.Copy()
	flat.IngestChildren()
	n := flat.NumPoints()
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z", "rgba"},
			Size:      []int{4, 4, 4, 4},
			Type:      []string{"F", "F", "F", "U"},
			Count:     []int{1, 1, 1, 1},
			Width:     n,
			Height:    1,
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
		},
		Points: n,
	}
	pp.Data = make([]byte, n*pp.Stride())
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	itC, err := pp.Uint32Iterator("rgba")
	if err != nil {
		return nil, err
	}
	cols := flat.Colors()
	for i, p := range flat.Points() {
		it.SetVec3(p)
		it.Incr()
		itC.SetUint32(packRGBA(cols[i]))
		itC.Incr()
	}
	return pp, nil
}

func fromPC(pp *pc.PointCloud) (*cloud.Cloud, error) {
	c := cloud.New(cloud.DefaultParams())
	if pp.Points == 0 {
		return c, nil
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	itC, errC := pp.Uint32Iterator("rgba")
	pts := make([]mat.Vec3, 0, pp.Points)
	var cols []rgba.RGBA
	if errC == nil {
		cols = make([]rgba.RGBA, 0, pp.Points)
	}
	for it.IsValid() {
		pts = append(pts, it.Vec3())
		it.Incr()
		if cols != nil {
			cols = append(cols, unpackRGBA(itC.Uint32()))
			itC.Incr()
		}
	}
	if err := c.AddPoints(pts, cols); err != nil {
		return nil, err
	}
	return c, nil
}

func packRGBA(c rgba.RGBA) uint32 {
	var out uint32
	for i, ch := range c {
		if ch < 0 {
			ch = 0
		}
		if ch > 1 {
			ch = 1
		}
		out |= uint32(ch*255+0.5) << (24 - 8*i)
	}
	return out
}

func unpackRGBA(v uint32) rgba.RGBA {
	var out rgba.RGBA
	for i := range out {
		out[i] = float32((v>>(24-8*i))&0xff) / 255
	}
	return out
}
