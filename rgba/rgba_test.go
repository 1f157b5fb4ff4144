package rgba

import (
	"testing"
)

func near(a, b RGBA, tol float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

func TestParse(t *testing.T) {
	testCases := map[string]struct {
		spec     string
		expected Color
		wantErr  bool
	}{
		"Hex":     {spec: "#ff0000", expected: Color{R: 1, G: 0, B: 0}},
		"Name":    {spec: "white", expected: Color{R: 1, G: 1, B: 1}},
		"Upper":   {spec: "Black", expected: Color{R: 0, G: 0, B: 0}},
		"Unknown": {spec: "chartreuse", wantErr: true},
		"BadHex":  {spec: "#zzzzzz", wantErr: true},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c, err := Parse(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if c != tt.expected {
				t.Errorf("Expected color: %v, got: %v", tt.expected, c)
			}
		})
	}
}

func TestToRGBA(t *testing.T) {
	r := ToRGBA(Color{R: 1, G: 0.5, B: 0}, 0.25)
	expected := RGBA{1, 0.5, 0, 0.25}
	if !near(r, expected, 1e-6) {
		t.Errorf("Expected RGBA: %v, got: %v", expected, r)
	}
	if r.Alpha() != 0.25 {
		t.Errorf("Expected alpha: 0.25, got: %v", r.Alpha())
	}
	back := ToColor(r)
	if back.R != 1 || back.B != 0 {
		t.Errorf("Expected round-trip color channels, got: %v", back)
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{0, 0.25, 0.5, 1}
	b := RGBA{1, 0.75, 0.5, 0}
	testCases := map[string]struct {
		t        float32
		expected RGBA
	}{
		"Start": {t: 0, expected: a},
		"End":   {t: 1, expected: b},
		"Mid":   {t: 0.5, expected: RGBA{0.5, 0.5, 0.5, 0.5}},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			out := Lerp(a, b, tt.t)
			if out != tt.expected {
				t.Errorf("Expected RGBA: %v, got: %v", tt.expected, out)
			}
		})
	}
}
