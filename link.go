package dotgrid

import "fmt"

// Kind identifies the three connector kinds.
type Kind uint8

const (
	// Horizontal joins two cells in the same row, one column apart.
	Horizontal Kind = iota

	// DiagonalDown (`\`) joins the top-left and bottom-right cells of a
	// 2x2 block.
	DiagonalDown

	// DiagonalUp (`/`) joins the bottom-left and top-right cells of a
	// 2x2 block.
	DiagonalUp
)

// String returns the connector kind name.
func (k Kind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case DiagonalDown:
		return "diagonal-down"
	case DiagonalUp:
		return "diagonal-up"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// CellIndex identifies a grid cell by (column, row).
type CellIndex struct {
	Col, Row int
}

// Link identifies one connector site in canonical, anchor-based form, so
// each unordered cell pair maps to exactly one Link value.
//
// A Horizontal link is anchored at its left cell and joins
// (Col,Row)-(Col+1,Row). Diagonal links are anchored at the top-left cell
// of their 2x2 block: DiagonalDown joins (Col,Row)-(Col+1,Row+1) and
// DiagonalUp joins (Col,Row+1)-(Col+1,Row).
type Link struct {
	Col, Row int
	Kind     Kind
}

// NewLink validates the anchor against grid g and returns the canonical
// link. Anchors whose link would leave the grid (last column, or last row
// for diagonals) are rejected with ErrOutOfBounds. The enumerator's
// iteration bounds guarantee it never constructs such links; this check
// exists for external callers only.
func NewLink(g *Grid, col, row int, kind Kind) (Link, error) {
	if kind > DiagonalUp {
		return Link{}, fmt.Errorf("%w: unknown connector kind %d", ErrInvalidConfig, kind)
	}
	maxRow := g.rows - 1
	if kind != Horizontal {
		maxRow = g.rows - 2
	}
	if col < 0 || col > g.cols-2 || row < 0 || row > maxRow {
		return Link{}, fmt.Errorf("%w: %s link anchored at (%d,%d) in %dx%d grid",
			ErrOutOfBounds, kind, col, row, g.cols, g.rows)
	}
	return Link{Col: col, Row: row, Kind: kind}, nil
}

// Endpoints returns the two cells the link joins. The pair is unordered;
// the returned order is the canonical anchor-first order.
func (l Link) Endpoints() (a, b CellIndex) {
	switch l.Kind {
	case DiagonalDown:
		return CellIndex{l.Col, l.Row}, CellIndex{l.Col + 1, l.Row + 1}
	case DiagonalUp:
		return CellIndex{l.Col, l.Row + 1}, CellIndex{l.Col + 1, l.Row}
	default:
		return CellIndex{l.Col, l.Row}, CellIndex{l.Col + 1, l.Row}
	}
}

// Flanks returns the two cells of the link's 2x2 block that are not part of
// the connection. Their outer circles bound the connector region away.
// ok is false for horizontal links, which have no flanking exclusion.
func (l Link) Flanks() (c, d CellIndex, ok bool) {
	switch l.Kind {
	case DiagonalDown:
		return CellIndex{l.Col + 1, l.Row}, CellIndex{l.Col, l.Row + 1}, true
	case DiagonalUp:
		return CellIndex{l.Col, l.Row}, CellIndex{l.Col + 1, l.Row + 1}, true
	default:
		return CellIndex{}, CellIndex{}, false
	}
}

// Instance is a connector link resolved against a concrete grid: endpoint
// and flank centers, radii and the clamping bounding box are materialized
// once so the per-point predicate does no topology work.
//
// Instances are transient. They are recomputed from the current snapshot on
// every evaluation pass, never stored across activation changes.
type Instance struct {
	// Link is the canonical connector site this instance was resolved from.
	Link Link

	// A and B are the endpoint cell centers (unordered pair).
	A, B Point

	// C and D are the flanking cell centers. Only meaningful for
	// diagonal kinds; zero for horizontal instances.
	C, D Point

	inner, outer   float64
	boxMin, boxMax Point
}

// Resolve materializes the geometry of link l on grid g.
// The link must lie within the grid; out-of-range anchors are rejected with
// ErrOutOfBounds.
func (g *Grid) Resolve(l Link) (Instance, error) {
	if _, err := NewLink(g, l.Col, l.Row, l.Kind); err != nil {
		return Instance{}, err
	}
	return g.resolve(l), nil
}

// resolve is the unchecked fast path used by the enumerator, whose
// iteration bounds already guarantee validity.
func (g *Grid) resolve(l Link) Instance {
	in := Instance{Link: l, inner: g.inner, outer: g.outer}

	ea, eb := l.Endpoints()
	in.A = g.Center(ea.Col, ea.Row)
	in.B = g.Center(eb.Col, eb.Row)

	switch l.Kind {
	case Horizontal:
		// The band's half-height is the inner radius, so the box and the
		// region coincide.
		mid := in.A.Midpoint(in.B)
		in.boxMin = Point{X: in.A.X, Y: mid.Y - g.inner}
		in.boxMax = Point{X: in.B.X, Y: mid.Y + g.inner}
	default:
		fc, fd, _ := l.Flanks()
		in.C = g.Center(fc.Col, fc.Row)
		in.D = g.Center(fd.Col, fd.Row)
		// Bounding box of the four block centers. With anchor-based links
		// this is exactly the 2x2 block spanned by the anchor.
		in.boxMin = g.Center(l.Col, l.Row)
		in.boxMax = g.Center(l.Col+1, l.Row+1)
	}
	return in
}

// Bounds returns the world-space bounding box that clamps the instance's
// fill region. No point outside this box is ever inside the region.
func (in Instance) Bounds() (min, max Point) {
	return in.boxMin, in.boxMax
}
