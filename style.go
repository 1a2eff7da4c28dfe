package dotgrid

// Style holds the palette and stroke parameters the renderer uses.
// All widths are in world units so they scale with the grid.
type Style struct {
	// Background fills the frame before any pass runs.
	Background RGBA

	// Connector fills the combined connector mask (the pass drawn
	// strictly under the circle layer).
	Connector RGBA

	// InnerActive and InnerInactive fill the activatable inner circles.
	InnerActive   RGBA
	InnerInactive RGBA

	// OuterRing strokes the boundary circle at the outer radius.
	OuterRing RGBA

	// RingWidth is the full stroke width of the boundary ring, in world
	// units. Zero disables the ring.
	RingWidth float64
}

// DefaultStyle returns the palette used by the demo programs: a dark slate
// background with warm connector fill.
func DefaultStyle() Style {
	return Style{
		Background:    RGB(0.086, 0.129, 0.243),
		Connector:     RGB(0.96, 0.62, 0.26),
		InnerActive:   RGB(0.98, 0.87, 0.44),
		InnerInactive: RGB(0.25, 0.32, 0.45),
		OuterRing:     RGB(0.42, 0.52, 0.68),
		RingWidth:     0.04,
	}
}
