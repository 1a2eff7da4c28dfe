package dotgrid

import "math"

// Mask is the union of all eligible connector fill regions for one
// activation snapshot. A point is connector-filled iff it lies inside the
// region of any instance, so the combined SDF is the minimum over instance
// SDFs; union is commutative and idempotent, and overlapping regions (both
// diagonals of a fully active block) need no precedence rule.
//
// Instances are spatially bucketed by grid cell so that a point query only
// evaluates the handful of instances whose region can reach it. Query cost
// is therefore independent of grid size, which keeps per-pixel evaluation
// viable on 100x100+ grids.
//
// Mask is immutable after construction and safe for concurrent use.
type Mask struct {
	grid      *Grid
	instances []Instance

	// buckets[by*bcols+bx] lists indices of instances whose padded
	// bounding box overlaps bucket cell (bx, by).
	buckets      [][]int32
	bcols, brows int
}

// bucketPad is the bucket registration padding in cell units. Half a cell
// covers both the floor-based bucket mapping and anti-aliased queries up
// to Spacing/2 outside an instance's bounding box.
const bucketPad = 0.5

// NewMask enumerates the eligible connectors for snap and composes their
// union. An all-inactive snapshot yields a valid empty mask.
func NewMask(g *Grid, snap Snapshot) (*Mask, error) {
	instances, err := Enumerate(g, snap)
	if err != nil {
		return nil, err
	}

	m := &Mask{
		grid:      g,
		instances: instances,
		bcols:     g.cols,
		brows:     g.rows,
	}
	m.buckets = make([][]int32, m.bcols*m.brows)
	for i := range instances {
		lo, hi := instances[i].Bounds()
		bx0, by0 := m.bucketIndex(lo.X-bucketPad*g.spacing, lo.Y-bucketPad*g.spacing)
		bx1, by1 := m.bucketIndex(hi.X+bucketPad*g.spacing, hi.Y+bucketPad*g.spacing)
		for by := by0; by <= by1; by++ {
			for bx := bx0; bx <= bx1; bx++ {
				b := by*m.bcols + bx
				m.buckets[b] = append(m.buckets[b], int32(i))
			}
		}
	}
	return m, nil
}

// bucketIndex maps a world coordinate pair to a clamped bucket cell.
func (m *Mask) bucketIndex(x, y float64) (bx, by int) {
	bx = int(math.Floor((x - m.grid.offset.X) / m.grid.spacing))
	by = int(math.Floor((y - m.grid.offset.Y) / m.grid.spacing))
	bx = min(max(bx, 0), m.bcols-1)
	by = min(max(by, 0), m.brows-1)
	return bx, by
}

// SDF returns the combined signed distance at p: the minimum over nearby
// instance SDFs, or +Inf when no instance region can reach p.
func (m *Mask) SDF(p Point) float64 {
	bx, by := m.bucketIndex(p.X, p.Y)
	sd := math.Inf(1)
	for _, i := range m.buckets[by*m.bcols+bx] {
		sd = math.Min(sd, m.instances[i].SDF(p))
	}
	return sd
}

// Contains reports whether p is inside any connector fill region.
func (m *Mask) Contains(p Point) bool {
	return m.SDF(p) < 0
}

// Coverage returns anti-aliased union coverage in [0,1] at p. Since
// coverage decreases monotonically with signed distance, the union coverage
// is the coverage of the minimum SDF. aaWidth is the smoothstep half-width
// in world units and must not exceed Spacing/2 (the bucket padding).
func (m *Mask) Coverage(p Point, aaWidth float64) float64 {
	return smoothCoverage(m.SDF(p), aaWidth)
}

// Instances returns the eligible connector instances in enumeration order.
// The slice is owned by the mask; callers must not modify it.
func (m *Mask) Instances() []Instance {
	return m.instances
}

// Grid returns the grid the mask was composed against.
func (m *Mask) Grid() *Grid {
	return m.grid
}

// Bounds returns the world-space bounding box of the union, for viewport
// fitting. ok is false when the mask is empty.
func (m *Mask) Bounds() (bmin, bmax Point, ok bool) {
	if len(m.instances) == 0 {
		return Point{}, Point{}, false
	}
	bmin, bmax = m.instances[0].Bounds()
	for _, in := range m.instances[1:] {
		lo, hi := in.Bounds()
		bmin.X = math.Min(bmin.X, lo.X)
		bmin.Y = math.Min(bmin.Y, lo.Y)
		bmax.X = math.Max(bmax.X, hi.X)
		bmax.Y = math.Max(bmax.Y, hi.Y)
	}
	return bmin, bmax, true
}
