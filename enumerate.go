package dotgrid

import "fmt"

// Enumerate produces the eligible connector instances for one activation
// snapshot. A link is eligible iff both endpoint cells are active; nothing
// else gates eligibility, so the result is a pure function of the snapshot.
// In particular, when both diagonals of a fully active 2x2 block are
// possible, both are emitted and both render (union semantics).
//
// Iteration runs over anchors only (col < W-1, and row < H-1 for the
// diagonal pair), so each unordered link appears exactly once and the
// result order is deterministic: row-major anchors, Horizontal then
// DiagonalDown then DiagonalUp per anchor.
//
// Activating one more cell can only add instances, never remove any.
func Enumerate(g *Grid, snap Snapshot) ([]Instance, error) {
	if !snap.matches(g) {
		return nil, fmt.Errorf("%w: snapshot is %dx%d, grid is %dx%d",
			ErrInvalidConfig, snap.cols, snap.rows, g.cols, g.rows)
	}

	var out []Instance
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols-1; col++ {
			if snap.Active(col, row) && snap.Active(col+1, row) {
				out = append(out, g.resolve(Link{Col: col, Row: row, Kind: Horizontal}))
			}
			if row == g.rows-1 {
				continue
			}
			if snap.Active(col, row) && snap.Active(col+1, row+1) {
				out = append(out, g.resolve(Link{Col: col, Row: row, Kind: DiagonalDown}))
			}
			if snap.Active(col, row+1) && snap.Active(col+1, row) {
				out = append(out, g.resolve(Link{Col: col, Row: row, Kind: DiagonalUp}))
			}
		}
	}
	return out, nil
}
