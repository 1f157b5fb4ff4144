package cloud

import (
	"errors"
	"reflect"
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/pcmotion/pcmotion/rgba"
)

func cloudOf(pts ...mat.Vec3) *Cloud {
	c := New(DefaultParams())
	c.AddPointsColor(pts, rgba.White, 1)
	return c
}

func TestThinOut(t *testing.T) {
	testCases := map[string]struct {
		factor   int
		expected pc.Vec3Slice
	}{
		"Factor2": {
			factor:   2,
			expected: pc.Vec3Slice{{0, 0, 0}, {2, 0, 0}, {4, 0, 0}},
		},
		"Factor3": {
			factor:   3,
			expected: pc.Vec3Slice{{0, 0, 0}, {3, 0, 0}},
		},
		"Factor1NoOp": {
			factor:   1,
			expected: pc.Vec3Slice{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := cloudOf(
				mat.Vec3{0, 0, 0}, mat.Vec3{1, 0, 0}, mat.Vec3{2, 0, 0},
				mat.Vec3{3, 0, 0}, mat.Vec3{4, 0, 0},
			)
			c.ThinOut(tt.factor)
			checkParallel(t, c)
			if !reflect.DeepEqual(c.Points(), tt.expected) {
				t.Errorf("Expected points: %v, got: %v", tt.expected, c.Points())
			}
		})
	}
}

func TestFilterOut(t *testing.T) {
	c := cloudOf(mat.Vec3{0, 0, 0}, mat.Vec3{1, 0, 0}, mat.Vec3{2, 0, 0})
	c.FilterOut(func(p mat.Vec3) bool { return p[0] < 1.5 })
	checkParallel(t, c)
	expected := pc.Vec3Slice{{0, 0, 0}, {1, 0, 0}}
	if !reflect.DeepEqual(c.Points(), expected) {
		t.Errorf("Expected points: %v, got: %v", expected, c.Points())
	}
}

func TestFilterOutFamily(t *testing.T) {
	c := cloudOf(mat.Vec3{0, 0, 0}, mat.Vec3{5, 0, 0})
	ch := cloudOf(mat.Vec3{6, 0, 0}, mat.Vec3{1, 0, 0})
	c.Add(ch)
	c.FilterOut(func(p mat.Vec3) bool { return p[0] < 2 })
	checkParallel(t, c)
	if c.NumPoints() != 1 || ch.NumPoints() != 1 {
		t.Fatalf("Expected 1 point kept per node, got: %d and %d", c.NumPoints(), ch.NumPoints())
	}
	if !ch.Points()[0].Equal(mat.Vec3{1, 0, 0}) {
		t.Errorf("Expected child kept point (1,0,0), got: %v", ch.Points()[0])
	}
}

func TestSortPoints(t *testing.T) {
	c := New(DefaultParams())
	pts := []mat.Vec3{{2, 0, 0}, {0, 0, 0}, {1, 0, 0}}
	cols := []rgba.RGBA{{0.2, 0, 0, 1}, {0, 0, 0, 1}, {0.1, 0, 0, 1}}
	if err := c.AddPoints(pts, cols); err != nil {
		t.Fatal(err)
	}
	c.SortPoints(nil)
	checkParallel(t, c)

	expectedPts := pc.Vec3Slice{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	expectedCols := []rgba.RGBA{{0, 0, 0, 1}, {0.1, 0, 0, 1}, {0.2, 0, 0, 1}}
	if !reflect.DeepEqual(c.Points(), expectedPts) {
		t.Errorf("Expected points: %v, got: %v", expectedPts, c.Points())
	}
	if !reflect.DeepEqual(c.Colors(), expectedCols) {
		t.Errorf("Expected colors to move with points: %v, got: %v", expectedCols, c.Colors())
	}
}

func TestSortPointsByKey(t *testing.T) {
	c := cloudOf(mat.Vec3{0, 1, 0}, mat.Vec3{0, 3, 0}, mat.Vec3{0, 2, 0})
	c.SortPoints(func(p mat.Vec3) float32 { return -p[1] })
	expected := pc.Vec3Slice{{0, 3, 0}, {0, 2, 0}, {0, 1, 0}}
	if !reflect.DeepEqual(c.Points(), expected) {
		t.Errorf("Expected points: %v, got: %v", expected, c.Points())
	}
}

func TestIngestChildren(t *testing.T) {
	c := New(DefaultParams())
	c.AddPointsColor([]mat.Vec3{{0, 0, 0}}, rgba.Red, 1)
	a := New(DefaultParams())
	a.AddPointsColor([]mat.Vec3{{1, 0, 0}}, rgba.Green, 1)
	aa := New(DefaultParams())
	aa.AddPointsColor([]mat.Vec3{{2, 0, 0}}, rgba.Blue, 1)
	a.Add(aa)
	b := New(DefaultParams())
	b.AddPointsColor([]mat.Vec3{{3, 0, 0}}, rgba.White, 1)
	c.Add(a, b)

	c.IngestChildren()
	checkParallel(t, c)
	if len(c.Children()) != 0 {
		t.Fatalf("Expected no children, got: %d", len(c.Children()))
	}
	expected := pc.Vec3Slice{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	if !reflect.DeepEqual(c.Points(), expected) {
		t.Errorf("Expected depth-first flatten: %v, got: %v", expected, c.Points())
	}

	// Childless is a no-op.
	c.IngestChildren()
	if c.NumPoints() != 4 {
		t.Errorf("Expected 4 points after second ingest, got: %d", c.NumPoints())
	}
}

func TestPointFromProportion(t *testing.T) {
	c := cloudOf(
		mat.Vec3{0, 0, 0}, mat.Vec3{1, 0, 0}, mat.Vec3{2, 0, 0},
		mat.Vec3{3, 0, 0}, mat.Vec3{4, 0, 0},
	)
	testCases := map[string]struct {
		alpha    float32
		expected mat.Vec3
	}{
		"Start":  {alpha: 0, expected: mat.Vec3{0, 0, 0}},
		"Middle": {alpha: 0.5, expected: mat.Vec3{2, 0, 0}},
		"End":    {alpha: 1, expected: mat.Vec3{4, 0, 0}},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			p, err := c.PointFromProportion(tt.alpha)
			if err != nil {
				t.Fatal(err)
			}
			if !p.Equal(tt.expected) {
				t.Errorf("Expected point: %v, got: %v", tt.expected, p)
			}
		})
	}

	t.Run("Empty", func(t *testing.T) {
		empty := New(DefaultParams())
		if _, err := empty.PointFromProportion(0.5); !errors.Is(err, ErrEmptyCloud) {
			t.Fatalf("Expected ErrEmptyCloud, got: %v", err)
		}
	})
}
