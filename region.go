package dotgrid

import "math"

// SDF returns the signed distance of the instance's fill region at p:
// negative inside, positive outside. It is the single definition of
// connector geometry; containment, anti-aliased coverage, the CPU
// rasterizer and the GPU shader all derive from it.
//
// A horizontal connector is an axis-aligned band spanning the endpoint
// centers in x and the inner radius around the midline in y. The band's
// half-height equals the inner radius, so at the endpoints its interior
// coincides with the inner circles' vertical extent and no separate circle
// exclusion is needed.
//
// A diagonal connector is the logical AND (SDF max) of:
//
//	a. outside endpoint inner circles:  r - |p-A|  and  r - |p-B|
//	b. outside flanking outer circles:  R - |p-C|  and  R - |p-D|
//	c. inside the bounding box of the four block centers
//
// The circle terms are complement distances, exact near the boundary where
// anti-aliasing samples them. With r >= R the terms contradict and the
// region is empty; that is legitimate output, not an error.
//
// SDF is a pure function, safe to evaluate concurrently for every pixel.
func (in Instance) SDF(p Point) float64 {
	cx := (in.boxMin.X + in.boxMax.X) / 2
	cy := (in.boxMin.Y + in.boxMax.Y) / 2
	box := math.Max(
		math.Abs(p.X-cx)-(in.boxMax.X-in.boxMin.X)/2,
		math.Abs(p.Y-cy)-(in.boxMax.Y-in.boxMin.Y)/2,
	)
	if in.Link.Kind == Horizontal {
		return box
	}

	sd := box
	sd = math.Max(sd, in.inner-p.Distance(in.A))
	sd = math.Max(sd, in.inner-p.Distance(in.B))
	sd = math.Max(sd, in.outer-p.Distance(in.C))
	sd = math.Max(sd, in.outer-p.Distance(in.D))
	return sd
}

// Contains reports whether p lies inside the fill region (hard predicate,
// no anti-aliasing).
func (in Instance) Contains(p Point) bool {
	return in.SDF(p) < 0
}

// Coverage returns anti-aliased coverage in [0,1] at p, with aaWidth the
// smoothstep half-width in world units (typically the pixel footprint
// scaled by DefaultAAWidth; see View.AAWorldWidth).
func (in Instance) Coverage(p Point, aaWidth float64) float64 {
	return smoothCoverage(in.SDF(p), aaWidth)
}
