//go:build !nogpu

package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/dotgrid/dotgrid"
)

// SetSharedDeviceProvider forwards a device provider to the currently
// registered evaluator. It fails when no wgpu evaluator is registered or
// when the provider is not a gpucontext.DeviceProvider.
func SetSharedDeviceProvider(provider any) error {
	e, ok := dotgrid.Evaluator().(*Evaluator)
	if !ok {
		return fmt.Errorf("wgpu: no wgpu evaluator registered")
	}
	p, ok := provider.(gpucontext.DeviceProvider)
	if !ok {
		return fmt.Errorf("wgpu: provider is not a gpucontext.DeviceProvider")
	}
	return e.SetDeviceProvider(p)
}
