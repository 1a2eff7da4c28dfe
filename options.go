package dotgrid

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default software rendering
//	r := dotgrid.NewRenderer()
//
//	// 2x supersampling with a custom palette
//	r := dotgrid.NewRenderer(dotgrid.WithSupersample(2), dotgrid.WithStyle(s))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	style       Style
	aaWidth     float64 // smoothstep half-width in pixels
	workers     int     // 0 = GOMAXPROCS
	supersample int     // 1 = off
	evaluator   MaskEvaluator
}

func defaultOptions() options {
	return options{
		style:       DefaultStyle(),
		aaWidth:     DefaultAAWidth,
		supersample: 1,
	}
}

// WithStyle sets the renderer palette.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithAAWidth sets the anti-aliasing smoothstep half-width in pixels.
// Zero or negative disables anti-aliasing (hard region edges).
func WithAAWidth(pixels float64) Option {
	return func(o *options) {
		o.aaWidth = pixels
	}
}

// WithWorkers sets the number of worker goroutines for tile rendering.
// Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSupersample renders at k-times resolution and downscales the result,
// trading time for edge quality beyond what SDF anti-aliasing gives.
// Values < 2 disable supersampling.
func WithSupersample(k int) Option {
	return func(o *options) {
		if k < 1 {
			k = 1
		}
		o.supersample = k
	}
}

// WithEvaluator injects a mask evaluator for this renderer, overriding the
// globally registered one. Use for dependency injection of GPU or custom
// evaluators.
func WithEvaluator(ev MaskEvaluator) Option {
	return func(o *options) {
		o.evaluator = ev
	}
}
