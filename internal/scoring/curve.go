package scoring

import (
	"fmt"
	"math"
)

type CurvePoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Curve is a piecewise-linear, non-decreasing mapping onto [0,1]. Inputs
// outside the first and last X are clamped to the end values, which gives
// the flat tail used for diminishing returns.
type Curve []CurvePoint

func (c Curve) At(x float64) float64 {
	if x <= c[0].X {
		return c[0].Y
	}
	last := c[len(c)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(c); i++ {
		if x <= c[i].X {
			lo, hi := c[i-1], c[i]
			return lo.Y + (x-lo.X)*(hi.Y-lo.Y)/(hi.X-lo.X)
		}
	}
	return last.Y
}

func (c Curve) problems(name string) []string {
	if len(c) < 2 {
		return []string{fmt.Sprintf("%s: need at least 2 points, got %d", name, len(c))}
	}
	var out []string
	for i, pt := range c {
		if !finite(pt.X) || !finite(pt.Y) {
			out = append(out, fmt.Sprintf("%s[%d]: non-finite point", name, i))
			continue
		}
		if pt.Y < 0 || pt.Y > 1 {
			out = append(out, fmt.Sprintf("%s[%d]: y=%g outside [0,1]", name, i, pt.Y))
		}
		if i == 0 {
			continue
		}
		if pt.X <= c[i-1].X {
			out = append(out, fmt.Sprintf("%s[%d]: x must be strictly increasing", name, i))
		}
		if pt.Y < c[i-1].Y {
			out = append(out, fmt.Sprintf("%s[%d]: y must be non-decreasing", name, i))
		}
	}
	return out
}

func (c Curve) clone() Curve { return append(Curve(nil), c...) }

var inf = math.Inf(1)

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
