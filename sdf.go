package dotgrid

import "math"

// DefaultAAWidth is the default smoothstep transition half-width, in
// pixels. 0.7 produces smooth anti-aliasing at standard DPI. Override per
// renderer with WithAAWidth; the geometry layer takes the width as an
// explicit parameter and carries no embedded threshold.
const DefaultAAWidth = 0.7

// smoothCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep over the band [-width, +width].
//
//	sd <= -width => 1.0 (fully inside)
//	sd >= +width => 0.0 (fully outside)
//
// A non-positive width degenerates to the hard predicate sd < 0.
func smoothCoverage(sd, width float64) float64 {
	if width <= 0 {
		if sd < 0 {
			return 1
		}
		return 0
	}
	if sd >= width {
		return 0
	}
	if sd <= -width {
		return 1
	}
	t := (sd + width) / (2 * width)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}

// circleCoverage computes anti-aliased coverage of a filled circle.
func circleCoverage(p, center Point, radius, width float64) float64 {
	return smoothCoverage(p.Distance(center)-radius, width)
}

// ringCoverage computes anti-aliased coverage of a stroked circle with the
// given half stroke width, centered on the radius.
func ringCoverage(p, center Point, radius, halfStroke, width float64) float64 {
	return smoothCoverage(math.Abs(p.Distance(center)-radius)-halfStroke, width)
}
