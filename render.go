package dotgrid

import (
	"errors"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/dotgrid/dotgrid/internal/parallel"
)

// Renderer rasterizes a grid and its connector mask into a Pixmap.
//
// Each frame runs two passes in strict draw order: the combined connector
// fill first, then the circle layer (boundary rings, then inner fills).
// Circles occlude connector pixels purely by compositing order; there is no
// depth comparison anywhere.
//
// A Renderer reuses its coverage buffer and worker pool across frames, so
// steady-state rendering allocates only the output pixmap. Renderers are
// not safe for concurrent use; create one per goroutine.
type Renderer struct {
	opts options
	pool *parallel.WorkerPool
	cov  []float32
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Close releases the renderer's worker pool. The renderer must not be used
// after Close.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
}

// Render rasterizes one frame: grid g with activation snapshot snap, seen
// through view. The snapshot is immutable, so the frame cannot observe
// activation changes mid-pass.
func (r *Renderer) Render(g *Grid, snap Snapshot, view View) (*Pixmap, error) {
	if err := view.validate(); err != nil {
		return nil, err
	}
	m, err := NewMask(g, snap)
	if err != nil {
		return nil, err
	}
	Logger().Debug("render frame",
		"cols", g.Cols(), "rows", g.Rows(),
		"active", snap.Count(), "instances", len(m.Instances()),
		"size", view.Width*view.Height)

	rv := view
	if r.opts.supersample > 1 {
		rv = view.scaled(r.opts.supersample)
	}

	cov, err := r.renderMask(m, rv)
	if err != nil {
		return nil, err
	}

	pm := NewPixmap(rv.Width, rv.Height)
	r.compose(g, snap, rv, cov, pm)

	if r.opts.supersample > 1 {
		return downscale(pm, view.Width, view.Height), nil
	}
	return pm, nil
}

// RenderMask evaluates only the connector pass: anti-aliased union coverage
// for every pixel of view, row-major. The returned buffer is owned by the
// renderer and valid until the next call; rasterizer backends that composite
// themselves consume it directly.
func (r *Renderer) RenderMask(m *Mask, view View) ([]float32, error) {
	if err := view.validate(); err != nil {
		return nil, err
	}
	return r.renderMask(m, view)
}

func (r *Renderer) renderMask(m *Mask, view View) ([]float32, error) {
	n := view.Width * view.Height
	if cap(r.cov) < n {
		r.cov = make([]float32, n)
	}
	cov := r.cov[:n]

	ev := r.opts.evaluator
	if ev == nil {
		ev = Evaluator()
	}
	if ev != nil {
		err := ev.EvaluateMask(m, view, r.opts.aaWidth, cov)
		if err == nil {
			return cov, nil
		}
		if errors.Is(err, ErrFallbackToCPU) {
			Logger().Debug("mask evaluator declined, using CPU", "evaluator", ev.Name())
		} else {
			Logger().Warn("mask evaluator failed, using CPU", "evaluator", ev.Name(), "err", err)
		}
	}

	// CPU path: pure per-pixel evaluation, parallel across disjoint tiles.
	// The AA width is capped at the mask's bucket padding guarantee.
	aa := math.Min(view.AAWorldWidth(r.opts.aaWidth), m.grid.spacing*bucketPad)
	tiles := parallel.Split(view.Width, view.Height)
	work := make([]func(), len(tiles))
	for i, t := range tiles {
		t := t
		work[i] = func() {
			for py := t.Y0; py < t.Y1; py++ {
				rowBase := py * view.Width
				for px := t.X0; px < t.X1; px++ {
					cov[rowBase+px] = float32(m.Coverage(view.WorldAt(px, py), aa))
				}
			}
		}
	}
	r.workerPool().ExecuteAll(work)
	return cov, nil
}

// compose runs the compositing passes per pixel, in draw order:
// background, connector fill, boundary rings, inner fills.
func (r *Renderer) compose(g *Grid, snap Snapshot, view View, cov []float32, pm *Pixmap) {
	style := r.opts.style
	aa := view.AAWorldWidth(r.opts.aaWidth)
	halfRing := style.RingWidth / 2

	// Circles reach at most this far from their center; pixels farther
	// from every center than reach skip the circle loops entirely.
	reach := g.OuterRadius() + halfRing + aa
	kr := int(math.Ceil(reach / g.Spacing()))

	tiles := parallel.Split(view.Width, view.Height)
	work := make([]func(), len(tiles))
	for i, t := range tiles {
		t := t
		work[i] = func() {
			for py := t.Y0; py < t.Y1; py++ {
				for px := t.X0; px < t.X1; px++ {
					p := view.WorldAt(px, py)
					out := style.Connector.Over(style.Background, float64(cov[py*view.Width+px]))

					ncol, nrow := g.nearestIndex(p)
					if style.RingWidth > 0 {
						for dr := -kr; dr <= kr; dr++ {
							for dc := -kr; dc <= kr; dc++ {
								col, row := ncol+dc, nrow+dr
								if !g.Contains(col, row) {
									continue
								}
								c := ringCoverage(p, g.Center(col, row), g.OuterRadius(), halfRing, aa)
								out = style.OuterRing.Over(out, c)
							}
						}
					}
					for dr := -kr; dr <= kr; dr++ {
						for dc := -kr; dc <= kr; dc++ {
							col, row := ncol+dc, nrow+dr
							if !g.Contains(col, row) {
								continue
							}
							fill := style.InnerInactive
							if snap.Active(col, row) {
								fill = style.InnerActive
							}
							c := circleCoverage(p, g.Center(col, row), g.InnerRadius(), aa)
							out = fill.Over(out, c)
						}
					}
					pm.SetPixel(px, py, out)
				}
			}
		}
	}
	r.workerPool().ExecuteAll(work)
}

func (r *Renderer) workerPool() *parallel.WorkerPool {
	if r.pool == nil {
		r.pool = parallel.NewWorkerPool(r.opts.workers)
	}
	return r.pool
}

// downscale resamples a supersampled pixmap to the target size with a
// Catmull-Rom kernel.
func downscale(src *Pixmap, width, height int) *Pixmap {
	dstImg := image.NewNRGBA(image.Rect(0, 0, width, height))
	srcImg := src.ToImage()
	xdraw.CatmullRom.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), xdraw.Src, nil)

	dst := NewPixmap(width, height)
	copy(dst.data, dstImg.Pix)
	return dst
}
