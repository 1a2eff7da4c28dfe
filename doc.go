// Package dotgrid renders a 2D grid of paired circles and the connector
// shapes that join activated circles.
//
// # Overview
//
// Each grid cell carries two concentric circles: a small activatable inner
// circle (radius r) and a larger boundary circle (radius R). When two
// adjacent inner circles are active, a connector region fills the space
// between them. Connectors come in three kinds: Horizontal, DiagonalDown
// (`\`) and DiagonalUp (`/`).
//
// The heart of the package is the connector region predicate: a pure signed
// distance function over world-space points, parameterized by a resolved
// connector Instance. A diagonal connector is the intersection of four
// constraints: outside both endpoint inner circles, outside both flanking
// outer circles, and inside the bounding box of the four cell centers of its
// 2x2 block. The same SDF drives hard containment tests, anti-aliased
// coverage, CPU rasterization and the GPU compute backend, so geometry can
// never drift between consumers.
//
// # Quick Start
//
//	grid, err := dotgrid.NewGrid(dotgrid.Config{
//	    Cols: 4, Rows: 4,
//	    Spacing:     1.5,
//	    InnerRadius: 0.4,
//	    OuterRadius: 0.5,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	active := make([]bool, 16)
//	active[0], active[1], active[5] = true, true, true
//	snap, _ := dotgrid.NewSnapshot(grid, active)
//
//	r := dotgrid.NewRenderer()
//	pm, err := r.Render(grid, snap, dotgrid.FitView(grid, 512, 512, 0.5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm.SavePNG("grid.png")
//
// # Layering
//
// The renderer draws the combined connector mask as a full pass strictly
// before the circle pass. Circles occlude connectors by draw order alone;
// there is no depth comparison.
//
// # Architecture
//
//   - Public API: Grid, Snapshot, Link, Instance, Mask, Renderer, View
//   - Internal: parallel (tile-based worker pool for CPU rendering)
//   - Backends: backend/wgpu (GPU compute evaluation), enabled via
//     blank import of the gpu package
//
// # Coordinate System
//
//   - X increases right, Y increases down (raster convention)
//   - The W x H block of cell centers is centered on the world origin
//   - DiagonalUp (`/`) therefore joins the bottom-left and top-right cells
//     of its 2x2 block
package dotgrid
