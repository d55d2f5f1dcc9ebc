// Package ease implements cubic-Bézier timing functions.
//
// A Curve maps normalized time to normalized progress the same way the CSS
// cubic-bezier() timing function does: the curve starts at (0,0), ends at
// (1,1), and is shaped by two control handles. Evaluating a curve means
// finding the curve parameter whose x-coordinate equals the requested time
// and returning the y-coordinate at that parameter.
//
// Example:
//
//	c := ease.Bezier(0.42, 0, 0.58, 1)
//	p := c.Solve(0.25) // progress a quarter of the way through
package ease

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/text/cases"
)

// Solver limits.
const (
	// MaxIterations caps the Newton-Raphson refinement.
	MaxIterations = 100

	// Tolerance is the residual below which x(t) is considered equal to the
	// requested time (zero when rounded to 4 decimal places).
	Tolerance = 5e-5
)

// ErrInvalidCurve is returned for curves with non-finite handles.
var ErrInvalidCurve = errors.New("ease: invalid curve")

// Curve is a cubic-Bézier timing function with implicit endpoints (0,0) and
// (1,1). (X1, Y1) and (X2, Y2) are the two control handles.
type Curve struct {
	X1, Y1, X2, Y2 float64
}

// Bezier creates a curve from its two control handles.
func Bezier(x1, y1, x2, y2 float64) Curve {
	return Curve{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Standard CSS timing functions.
var (
	Linear    = Curve{X1: 0, Y1: 0, X2: 1, Y2: 1}
	Ease      = Curve{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}
	EaseIn    = Curve{X1: 0.42, Y1: 0, X2: 1, Y2: 1}
	EaseOut   = Curve{X1: 0, Y1: 0, X2: 0.58, Y2: 1}
	EaseInOut = Curve{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}
)

var presets = map[string]Curve{
	"linear":      Linear,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
}

// Bez returns the curve as a gg cubic Bézier in the unit square.
func (c Curve) Bez() gg.CubicBez {
	return gg.NewCubicBez(gg.Pt(0, 0), gg.Pt(c.X1, c.Y1), gg.Pt(c.X2, c.Y2), gg.Pt(1, 1))
}

// Handles returns the control handles in (x1, y1, x2, y2) order.
func (c Curve) Handles() [4]float64 {
	return [4]float64{c.X1, c.Y1, c.X2, c.Y2}
}

// Validate reports whether all four handles are finite numbers.
func (c Curve) Validate() error {
	for _, h := range c.Handles() {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return fmt.Errorf("%w: handles %v", ErrInvalidCurve, c.Handles())
		}
	}
	return nil
}

// Solve returns the progress of c at normalized time x.
func (c Curve) Solve(x float64) float64 {
	y, _ := c.Eval(x)
	return y
}

// Solve returns the progress of curve c at normalized time x.
// It is a convenience wrapper for c.Solve(x).
func Solve(x float64, c Curve) float64 {
	return c.Solve(x)
}

// Eval returns the progress of c at normalized time x and whether the
// Newton-Raphson iteration converged.
//
// The iteration is seeded at t = x and performs at most MaxIterations updates;
// the residual is checked after each of them. The parameter t is not clamped
// while iterating, so handles with x outside [0,1] or a vanishing derivative
// may diverge. In that case converged is false and the result is y at the
// last t clamped to [0,1], or x clamped to [0,1] when t is no longer finite.
// Converged results are returned as-is, so curves that overshoot keep their
// shape.
func (c Curve) Eval(x float64) (y float64, converged bool) {
	return c.eval(x, MaxIterations)
}

func (c Curve) eval(x float64, maxIter int) (float64, bool) {
	bez := c.Bez()
	deriv := bez.Deriv()

	t := x
	for i := 0; ; i++ {
		fx := bez.Eval(t).X - x
		if math.Abs(fx) < Tolerance {
			return bez.Eval(t).Y, true
		}
		if i == maxIter || math.IsNaN(fx) {
			break
		}
		t -= fx / deriv.Eval(t).X
	}

	if y := bez.Eval(t).Y; !math.IsNaN(y) && !math.IsInf(y, 0) {
		return clamp01(y), false
	}
	return clamp01(x), false
}

// String returns the curve in CSS notation.
func (c Curve) String() string {
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", c.X1, c.Y1, c.X2, c.Y2)
}

// ParseCurve parses a preset name ("linear", "ease", "ease-in", "ease-out",
// "ease-in-out"), a CSS "cubic-bezier(x1, y1, x2, y2)" expression, or a bare
// comma-separated handle list "x1,y1,x2,y2".
func ParseCurve(s string) (Curve, error) {
	key := cases.Fold().String(strings.TrimSpace(s))
	if c, ok := presets[key]; ok {
		return c, nil
	}

	if strings.HasPrefix(key, "cubic-bezier(") && strings.HasSuffix(key, ")") {
		key = strings.TrimSuffix(strings.TrimPrefix(key, "cubic-bezier("), ")")
	}

	parts := strings.Split(key, ",")
	if len(parts) != 4 {
		return Curve{}, fmt.Errorf("%w: %q", ErrInvalidCurve, s)
	}

	var h [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Curve{}, fmt.Errorf("%w: %q: %v", ErrInvalidCurve, s, err)
		}
		h[i] = v
	}

	c := Bezier(h[0], h[1], h[2], h[3])
	if err := c.Validate(); err != nil {
		return Curve{}, err
	}
	return c, nil
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
