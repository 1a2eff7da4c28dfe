//go:build !nogpu

// Package gpu registers the GPU mask evaluator for hardware-accelerated
// connector evaluation.
//
// Import this package to evaluate the connector mask with WebGPU compute
// shaders. If GPU initialization fails (no Vulkan available), the
// registration is silently skipped and rendering stays on the CPU path.
//
// Usage:
//
//	import _ "github.com/dotgrid/dotgrid/gpu" // enable GPU evaluation
package gpu

import (
	"github.com/dotgrid/dotgrid"
	"github.com/dotgrid/dotgrid/backend/wgpu"
)

func init() {
	if err := dotgrid.RegisterEvaluator(wgpu.New()); err != nil {
		dotgrid.Logger().Warn("GPU mask evaluator not available", "err", err)
	}
}

// SetDeviceProvider configures the registered evaluator to use a shared
// GPU device from an external provider (e.g. a gogpu window), avoiding a
// second GPU instance. The provider must be a gpucontext.DeviceProvider
// that also exposes its HAL handles.
func SetDeviceProvider(provider any) error {
	return wgpu.SetSharedDeviceProvider(provider)
}
