package dotgrid

import (
	"fmt"
	"math"
)

// Config holds the numeric parameters of a circle grid.
//
// Spacing, InnerRadius and OuterRadius are expressed in unscaled world
// units; Scale multiplies all three uniformly. A zero Scale means "unset"
// and is treated as 1; a negative Scale is invalid.
type Config struct {
	// Cols and Rows are the grid dimensions (W and H). Both must be >= 1.
	Cols, Rows int

	// Spacing is the distance between adjacent cell centers (S).
	Spacing float64

	// InnerRadius is the radius of the activatable inner circle (r).
	InnerRadius float64

	// OuterRadius is the radius of the boundary circle (R).
	// The contract R > r > 0 is enforced by NewGrid.
	OuterRadius float64

	// Scale uniformly scales Spacing and both radii. Zero means 1.
	Scale float64
}

// Grid is the single source of truth for grid topology: every consumer
// (rendering, hit-testing, the region predicate) derives cell centers from
// the same Center function, so independently-computed centers can never
// drift apart.
//
// Grid is immutable after construction and safe for concurrent use.
type Grid struct {
	cols, rows int
	spacing    float64 // scaled
	inner      float64 // scaled
	outer      float64 // scaled
	offset     Point
}

// NewGrid validates cfg and builds the grid topology.
// Invalid configurations fail fast with ErrInvalidConfig; values are never
// clamped or silently corrected.
func NewGrid(cfg Config) (*Grid, error) {
	if cfg.Cols < 1 || cfg.Rows < 1 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d, want at least 1x1", ErrInvalidConfig, cfg.Cols, cfg.Rows)
	}
	if cfg.Spacing <= 0 {
		return nil, fmt.Errorf("%w: spacing %v, want > 0", ErrInvalidConfig, cfg.Spacing)
	}
	if cfg.InnerRadius <= 0 {
		return nil, fmt.Errorf("%w: inner radius %v, want > 0", ErrInvalidConfig, cfg.InnerRadius)
	}
	if cfg.OuterRadius <= cfg.InnerRadius {
		return nil, fmt.Errorf("%w: outer radius %v, want > inner radius %v", ErrInvalidConfig, cfg.OuterRadius, cfg.InnerRadius)
	}
	scale := cfg.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return nil, fmt.Errorf("%w: scale %v, want > 0", ErrInvalidConfig, cfg.Scale)
	}

	s := cfg.Spacing * scale
	g := &Grid{
		cols:    cfg.Cols,
		rows:    cfg.Rows,
		spacing: s,
		inner:   cfg.InnerRadius * scale,
		outer:   cfg.OuterRadius * scale,
		offset: Point{
			X: -float64(cfg.Cols-1) * s / 2,
			Y: -float64(cfg.Rows-1) * s / 2,
		},
	}
	return g, nil
}

// Cols returns the number of grid columns (W).
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of grid rows (H).
func (g *Grid) Rows() int { return g.rows }

// Spacing returns the scaled distance between adjacent cell centers.
func (g *Grid) Spacing() float64 { return g.spacing }

// InnerRadius returns the scaled inner circle radius.
func (g *Grid) InnerRadius() float64 { return g.inner }

// OuterRadius returns the scaled outer circle radius.
func (g *Grid) OuterRadius() float64 { return g.outer }

// Center returns the world-space center of cell (col, row):
//
//	offset + (col*S, row*S)
//
// where offset centers the whole block on the origin. Center does not
// bounds-check its arguments; it is a pure affine map, and callers that
// accept untrusted indices go through NewLink or Contains instead.
func (g *Grid) Center(col, row int) Point {
	return Point{
		X: g.offset.X + float64(col)*g.spacing,
		Y: g.offset.Y + float64(row)*g.spacing,
	}
}

// Contains reports whether (col, row) is a valid cell index.
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// nearestIndex returns the unclamped index of the cell whose center is
// closest to p. The result may lie outside the grid.
func (g *Grid) nearestIndex(p Point) (col, row int) {
	col = int(math.Round((p.X - g.offset.X) / g.spacing))
	row = int(math.Round((p.Y - g.offset.Y) / g.spacing))
	return col, row
}

// CellAt hit-tests a world-space point against the activatable inner
// circles. It returns the cell whose inner circle contains p, or ok=false
// when p is outside every inner circle. Because it reuses Center, clicking
// exactly matches what is drawn.
func (g *Grid) CellAt(p Point) (col, row int, ok bool) {
	col, row = g.nearestIndex(p)
	if !g.Contains(col, row) {
		return 0, 0, false
	}
	if p.Distance(g.Center(col, row)) > g.inner {
		return 0, 0, false
	}
	return col, row, true
}

// Bounds returns the world-space bounding box of the grid: the rectangle
// spanned by the cell centers, expanded by the outer radius on every side.
func (g *Grid) Bounds() (min, max Point) {
	min = g.Center(0, 0).Sub(Point{X: g.outer, Y: g.outer})
	max = g.Center(g.cols-1, g.rows-1).Add(Point{X: g.outer, Y: g.outer})
	return min, max
}
