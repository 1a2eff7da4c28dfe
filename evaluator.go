package dotgrid

import (
	"errors"
	"sync"
)

// MaskEvaluator is an optional plug-in that fills the connector coverage
// buffer for a whole frame, typically on the GPU. When one is registered,
// the Renderer tries it first; if the evaluator returns ErrFallbackToCPU or
// any other error, the Renderer transparently falls back to the CPU path.
//
// Implementations must produce the same coverage as Mask.Coverage within
// anti-aliasing tolerance: the region predicate is defined exactly once and
// backends mirror it, they do not re-derive it.
//
// Backend packages provide implementations; users opt in via blank import:
//
//	import _ "github.com/dotgrid/dotgrid/gpu" // enables GPU evaluation
type MaskEvaluator interface {
	// Name returns the evaluator name (e.g., "wgpu").
	Name() string

	// Init initializes backend resources. Called once during registration.
	Init() error

	// Close releases backend resources.
	Close()

	// EvaluateMask writes anti-aliased union coverage for every pixel of
	// view into dst (row-major, len Width*Height). aaPixels is the
	// smoothstep half-width in pixels.
	EvaluateMask(m *Mask, view View, aaPixels float64, dst []float32) error
}

var (
	evalMu              sync.RWMutex
	registeredEvaluator MaskEvaluator
)

// RegisterEvaluator registers a mask evaluator for optional accelerated
// evaluation. Only one evaluator can be registered; subsequent calls
// replace (and Close) the previous one. The evaluator's Init method is
// called during registration; if it fails, the evaluator is not registered
// and the error is returned.
func RegisterEvaluator(ev MaskEvaluator) error {
	if ev == nil {
		return errors.New("dotgrid: evaluator must not be nil")
	}
	if err := ev.Init(); err != nil {
		return err
	}
	propagateLogger(ev, Logger())

	evalMu.Lock()
	old := registeredEvaluator
	registeredEvaluator = ev
	evalMu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

// Evaluator returns the currently registered mask evaluator, or nil.
func Evaluator() MaskEvaluator {
	evalMu.RLock()
	defer evalMu.RUnlock()
	return registeredEvaluator
}
