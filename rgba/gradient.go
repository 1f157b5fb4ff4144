package rgba

// Gradient samples a multi-stop linear gradient at n evenly spaced
// positions. The reference colors are the stops; the first and last output
// entries are the first and last stops. A single reference color yields n
// copies of that color.
func Gradient(refs []Color, n int) []Color {
	if len(refs) == 0 || n <= 0 {
		return nil
	}
	out := make([]Color, n)
	if len(refs) == 1 {
		for i := range out {
			out[i] = refs[0]
		}
		return out
	}
	for i := range out {
		var alpha float64
		if n > 1 {
			alpha = float64(i) * float64(len(refs)-1) / float64(n-1)
		}
		seg := int(alpha)
		t := alpha - float64(seg)
		if seg >= len(refs)-1 {
			seg = len(refs) - 2
			t = 1
		}
		switch t {
		case 0:
			out[i] = refs[seg]
		case 1:
			out[i] = refs[seg+1]
		default:
			out[i] = refs[seg].BlendRgb(refs[seg+1], t)
		}
	}
	return out
}
