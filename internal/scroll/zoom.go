package scroll

import "math"

// ZoomFactor is the multiplier applied by one zoom in step.
const ZoomFactor = 1.25

// ZoomRange bounds a zoom scale. A range with Min > Max (or a non-positive
// Min) is malformed and every operation on it leaves the scale alone.
type ZoomRange struct {
	Min float64
	Max float64
}

// Valid reports whether the range can be used.
func (z ZoomRange) Valid() bool {
	return z.Min > 0 && z.Min <= z.Max
}

// In returns the scale after one zoom in step.
func (z ZoomRange) In(current float64) float64 {
	return z.apply(current, current*ZoomFactor)
}

// Out returns the scale after one zoom out step.
func (z ZoomRange) Out(current float64) float64 {
	return z.apply(current, current/ZoomFactor)
}

// Reset returns the actual-size scale, bounded by the range.
func (z ZoomRange) Reset(current float64) float64 {
	return z.apply(current, 1)
}

func (z ZoomRange) apply(current, proposed float64) float64 {
	if !z.Valid() {
		return current
	}
	return math.Min(z.Max, math.Max(z.Min, proposed))
}
