package dotgrid

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSnapshot(t *testing.T, g *Grid, cells []bool) Snapshot {
	t.Helper()
	snap, err := NewSnapshot(g, cells)
	require.NoError(t, err)
	return snap
}

func allActive(g *Grid) []bool {
	cells := make([]bool, g.Cols()*g.Rows())
	for i := range cells {
		cells[i] = true
	}
	return cells
}

func links(instances []Instance) []Link {
	if len(instances) == 0 {
		return nil
	}
	out := make([]Link, len(instances))
	for i, in := range instances {
		out[i] = in.Link
	}
	return out
}

func TestEnumerate2x2AllActive(t *testing.T) {
	g, err := NewGrid(Config{Cols: 2, Rows: 2, Spacing: 1.5, InnerRadius: 0.4, OuterRadius: 0.5})
	require.NoError(t, err)

	instances, err := Enumerate(g, mustSnapshot(t, g, allActive(g)))
	require.NoError(t, err)

	// Deterministic order: row-major anchors, Horizontal then DiagonalDown
	// then DiagonalUp per anchor. Both diagonals of the block are emitted.
	assert.Equal(t, []Link{
		{0, 0, Horizontal},
		{0, 0, DiagonalDown},
		{0, 0, DiagonalUp},
		{0, 1, Horizontal},
	}, links(instances))
}

func TestEnumerateEligibility(t *testing.T) {
	g, err := NewGrid(Config{Cols: 2, Rows: 2, Spacing: 1.5, InnerRadius: 0.4, OuterRadius: 0.5})
	require.NoError(t, err)

	tests := []struct {
		name   string
		active []CellIndex
		want   []Link
	}{
		{"no cells", nil, nil},
		{"single cell", []CellIndex{{0, 0}}, nil},
		{"vertical neighbors have no connector kind", []CellIndex{{0, 0}, {0, 1}}, nil},
		{"horizontal pair", []CellIndex{{0, 1}, {1, 1}}, []Link{{0, 1, Horizontal}}},
		{"down diagonal pair", []CellIndex{{0, 0}, {1, 1}}, []Link{{0, 0, DiagonalDown}}},
		{"up diagonal pair", []CellIndex{{0, 1}, {1, 0}}, []Link{{0, 0, DiagonalUp}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := make([]bool, 4)
			for _, c := range tt.active {
				cells[c.Row*2+c.Col] = true
			}
			instances, err := Enumerate(g, mustSnapshot(t, g, cells))
			require.NoError(t, err)
			assert.Equal(t, tt.want, links(instances))
		})
	}
}

func TestEnumerateDedup(t *testing.T) {
	g, err := NewGrid(Config{Cols: 3, Rows: 3, Spacing: 1, InnerRadius: 0.3, OuterRadius: 0.4})
	require.NoError(t, err)

	instances, err := Enumerate(g, mustSnapshot(t, g, allActive(g)))
	require.NoError(t, err)

	// 3x3 fully active: 6 horizontal + 4 down + 4 up diagonals.
	assert.Len(t, instances, 14)

	seen := make(map[Link]bool, len(instances))
	for _, in := range instances {
		assert.False(t, seen[in.Link], "link %v enumerated twice", in.Link)
		seen[in.Link] = true
	}
}

// Activating one more cell can only add instances, never remove any.
func TestEnumerateMonotonicActivation(t *testing.T) {
	g, err := NewGrid(Config{Cols: 6, Rows: 5, Spacing: 1, InnerRadius: 0.3, OuterRadius: 0.4})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		cells := make([]bool, g.Cols()*g.Rows())
		for i := range cells {
			cells[i] = rng.Intn(3) == 0
		}
		before, err := Enumerate(g, mustSnapshot(t, g, cells))
		require.NoError(t, err)

		// Flip one inactive cell on.
		idx := rng.Intn(len(cells))
		for cells[idx] {
			idx = (idx + 1) % len(cells)
		}
		cells[idx] = true
		after, err := Enumerate(g, mustSnapshot(t, g, cells))
		require.NoError(t, err)

		require.GreaterOrEqual(t, len(after), len(before))
		got := make(map[Link]bool, len(after))
		for _, in := range after {
			got[in.Link] = true
		}
		for _, in := range before {
			assert.True(t, got[in.Link], "trial %d: link %v lost after activating cell %d", trial, in.Link, idx)
		}
	}
}

func TestEnumerateSnapshotMismatch(t *testing.T) {
	g, err := NewGrid(Config{Cols: 3, Rows: 3, Spacing: 1, InnerRadius: 0.3, OuterRadius: 0.4})
	require.NoError(t, err)
	other, err := NewGrid(Config{Cols: 2, Rows: 2, Spacing: 1, InnerRadius: 0.3, OuterRadius: 0.4})
	require.NoError(t, err)

	snap := mustSnapshot(t, other, allActive(other))
	_, err = Enumerate(g, snap)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestEnumerateSingleRow(t *testing.T) {
	g, err := NewGrid(Config{Cols: 4, Rows: 1, Spacing: 1, InnerRadius: 0.3, OuterRadius: 0.4})
	require.NoError(t, err)

	instances, err := Enumerate(g, mustSnapshot(t, g, allActive(g)))
	require.NoError(t, err)
	assert.Equal(t, []Link{
		{0, 0, Horizontal},
		{1, 0, Horizontal},
		{2, 0, Horizontal},
	}, links(instances))
}
