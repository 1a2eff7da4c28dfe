package dotgrid

import "fmt"

// Snapshot is an immutable activation snapshot: one bool per cell, row-major
// (index = row*Cols + col). The constructor copies the input slice, so a
// snapshot can never observe activation changes mid-evaluation; producers
// take a fresh snapshot per frame and mutate their own state freely.
type Snapshot struct {
	cols, rows int
	cells      []bool
}

// NewSnapshot copies cells into an immutable snapshot for grid g.
// len(cells) must be exactly g.Cols()*g.Rows().
func NewSnapshot(g *Grid, cells []bool) (Snapshot, error) {
	want := g.cols * g.rows
	if len(cells) != want {
		return Snapshot{}, fmt.Errorf("%w: snapshot length %d, want %d (%dx%d row-major)",
			ErrInvalidConfig, len(cells), want, g.cols, g.rows)
	}
	c := make([]bool, want)
	copy(c, cells)
	return Snapshot{cols: g.cols, rows: g.rows, cells: c}, nil
}

// Active reports whether cell (col, row) is active.
// Out-of-range indices are inactive.
func (s Snapshot) Active(col, row int) bool {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return false
	}
	return s.cells[row*s.cols+col]
}

// Count returns the number of active cells.
func (s Snapshot) Count() int {
	n := 0
	for _, a := range s.cells {
		if a {
			n++
		}
	}
	return n
}

// matches reports whether the snapshot dimensions match grid g.
func (s Snapshot) matches(g *Grid) bool {
	return s.cols == g.cols && s.rows == g.rows
}
