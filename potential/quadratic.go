package potential

// Quadratic interpolates the potential from the lowest settled neighbor on
// each grid axis, approximating a wavefront that travels at the cell's
// traversal cost. When no orthogonal neighbor is settled it falls back to
// the embedded Additive rule.
type Quadratic struct {
	Additive
}

// Potential implements Calculator.
func (q Quadratic) Potential(in Input) float64 {
	hf := q.traversal(in.Cost)
	n, w := in.Cell, in.Width
	x := n % w

	l, r, u, d := PotHigh, PotHigh, PotHigh, PotHigh
	if x > 0 {
		l = in.Field[n-1]
	}
	if x < w-1 {
		r = in.Field[n+1]
	}
	if n-w >= 0 {
		u = in.Field[n-w]
	}
	if n+w < len(in.Field) {
		d = in.Field[n+w]
	}

	tc := min(l, r)
	ta := min(u, d)
	if !IsSettled(ta) && !IsSettled(tc) {
		return q.Additive.Potential(in)
	}

	dc := tc - ta
	if dc < 0 {
		dc = -dc
		ta = tc
	}
	if dc >= hf {
		return ta + hf
	}
	rel := dc / hf
	v := -0.2301*rel*rel + 0.5307*rel + 0.7040

	return ta + hf*v
}
