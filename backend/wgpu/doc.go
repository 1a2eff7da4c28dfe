// Package wgpu evaluates the connector mask on the GPU using WebGPU
// compute shaders via wgpu/hal.
//
// The evaluator implements the per-pixel parallel execution model: every
// output pixel evaluates the connector region SDF independently, one
// compute pass per connector instance, with the union accumulated into a
// shared coverage buffer by max-merge. The WGSL shader mirrors the Go
// region predicate; it is never an independent re-derivation of the
// geometry, so CPU and GPU output agree within anti-aliasing tolerance.
//
// Most users enable GPU evaluation through the blank-import package:
//
//	import _ "github.com/dotgrid/dotgrid/gpu"
//
// Direct use supports sharing a GPU device with a host application:
//
//	ev := wgpu.New()
//	if err := ev.SetDeviceProvider(provider); err != nil { ... }
//	dotgrid.RegisterEvaluator(ev)
//
// If no Vulkan-capable adapter is present, Init fails and rendering stays
// on the CPU path.
package wgpu
