package transition

import (
	"fmt"
	"strings"
)

// Curve maps linear time t in [0,1] to progress in [0,1]. Implementations
// must be monotonic with Curve(0) == 0 and Curve(1) == 1.
type Curve func(t float64) float64

// Linear advances at constant speed.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseOutCubic decelerates towards the end without overshooting.
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// CurveByName resolves a configured curve name.
func CurveByName(name string) (Curve, error) {
	switch strings.ToLower(name) {
	case "", "ease-out", "ease_out", "easeout":
		return EaseOutCubic, nil
	case "linear":
		return Linear, nil
	default:
		return nil, fmt.Errorf("unknown transition curve %q", name)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
