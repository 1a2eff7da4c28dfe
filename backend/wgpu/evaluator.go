//go:build !nogpu

package wgpu

import (
	_ "embed"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/dotgrid/dotgrid"
)

//go:embed shaders/mask.wgsl
var maskShaderWGSL string

// gpuWaitTimeout bounds the fence wait for one frame's dispatch.
const gpuWaitTimeout = 5 * time.Second

// Evaluator computes connector mask coverage on the GPU. It implements
// dotgrid.MaskEvaluator.
//
// Each EvaluateMask call uploads the frame's resolved instances once, then
// encodes one compute pass per instance over the shared coverage buffer.
// Sequential passes carry implicit storage barriers, so the max-merge in
// the shader needs no atomics. A single submit and fence wait covers the
// whole frame.
type Evaluator struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline

	logger         *slog.Logger
	ready          bool
	externalDevice bool // true when using a shared device (don't destroy on Close)
}

var _ dotgrid.MaskEvaluator = (*Evaluator)(nil)

// New creates an uninitialized evaluator. Call Init (or register it via
// dotgrid.RegisterEvaluator, which calls Init) before use.
func New() *Evaluator {
	return &Evaluator{logger: dotgrid.Logger()}
}

// Name returns the evaluator name.
func (e *Evaluator) Name() string { return "wgpu" }

// SetLogger configures the evaluator's logger. Called by dotgrid when the
// package logger changes.
func (e *Evaluator) SetLogger(l *slog.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if l != nil {
		e.logger = l
	}
}

// Init acquires a GPU adapter and builds the compute pipeline. It fails
// when no Vulkan-capable adapter is present; callers then stay on the CPU
// path.
func (e *Evaluator) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ready {
		return nil
	}

	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("wgpu: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("wgpu: create instance: %w", err)
	}
	e.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		e.instance.Destroy()
		e.instance = nil
		return fmt.Errorf("wgpu: no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		e.instance.Destroy()
		e.instance = nil
		return fmt.Errorf("wgpu: open device: %w", err)
	}
	e.device = openDev.Device
	e.queue = openDev.Queue

	if err := e.createPipeline(); err != nil {
		e.device.Destroy()
		e.device = nil
		e.queue = nil
		e.instance.Destroy()
		e.instance = nil
		return err
	}

	e.ready = true
	e.logger.Info("GPU mask evaluator initialized", "adapter", selected.Info.Name)
	return nil
}

// Close releases GPU resources. Shared devices provided through
// SetDeviceProvider are not destroyed.
func (e *Evaluator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.destroyPipeline()
	if !e.externalDevice {
		if e.device != nil {
			e.device.Destroy()
		}
		if e.instance != nil {
			e.instance.Destroy()
		}
	}
	e.device = nil
	e.queue = nil
	e.instance = nil
	e.ready = false
	e.externalDevice = false
}

// SetDeviceProvider switches the evaluator to a shared GPU device from a
// host application (e.g. a gogpu window). The provider must also expose
// its HAL handles via HalDevice()/HalQueue().
func (e *Evaluator) SetDeviceProvider(provider gpucontext.DeviceProvider) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.destroyPipeline()
	if !e.externalDevice && e.device != nil {
		e.device.Destroy()
	}
	if e.instance != nil {
		e.instance.Destroy()
		e.instance = nil
	}

	e.device = device
	e.queue = queue
	e.externalDevice = true

	if err := e.createPipeline(); err != nil {
		e.ready = false
		return fmt.Errorf("wgpu: create pipeline with shared device: %w", err)
	}
	e.ready = true
	e.logger.Info("GPU mask evaluator switched to shared device")
	return nil
}

// createPipeline compiles the mask shader and builds the compute pipeline.
func (e *Evaluator) createPipeline() error {
	// Compile WGSL to SPIR-V.
	spirvBytes, err := naga.Compile(maskShaderWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: compile mask shader: %w", err)
	}
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	shader, err := e.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "mask_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create shader module: %w", err)
	}
	e.shader = shader

	bindLayout, err := e.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "mask_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create bind group layout: %w", err)
	}
	e.bindLayout = bindLayout

	pipeLayout, err := e.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "mask_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{e.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create pipeline layout: %w", err)
	}
	e.pipeLayout = pipeLayout

	pipeline, err := e.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "mask_pipeline", Layout: e.pipeLayout,
		Compute: hal.ComputeState{Module: e.shader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create compute pipeline: %w", err)
	}
	e.pipeline = pipeline
	return nil
}

func (e *Evaluator) destroyPipeline() {
	if e.device == nil {
		return
	}
	if e.pipeline != nil {
		e.device.DestroyComputePipeline(e.pipeline)
		e.pipeline = nil
	}
	if e.pipeLayout != nil {
		e.device.DestroyPipelineLayout(e.pipeLayout)
		e.pipeLayout = nil
	}
	if e.bindLayout != nil {
		e.device.DestroyBindGroupLayout(e.bindLayout)
		e.bindLayout = nil
	}
	if e.shader != nil {
		e.device.DestroyShaderModule(e.shader)
		e.shader = nil
	}
}

// EvaluateMask implements dotgrid.MaskEvaluator. dst receives row-major
// coverage for every pixel of view. Returns dotgrid.ErrFallbackToCPU when
// the GPU is not available.
func (e *Evaluator) EvaluateMask(m *dotgrid.Mask, view dotgrid.View, aaPixels float64, dst []float32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready {
		return dotgrid.ErrFallbackToCPU
	}
	if len(dst) != view.Width*view.Height {
		return fmt.Errorf("wgpu: dst length %d, want %d", len(dst), view.Width*view.Height)
	}
	if len(m.Instances()) == 0 {
		clear(dst)
		return nil
	}

	// Same AA clamp as the CPU path so both backends agree.
	aaWorld := math.Min(view.AAWorldWidth(aaPixels), m.Grid().Spacing()/2)

	return e.dispatch(m, view, aaWorld, dst)
}

// dispatch uploads the frame data and runs one compute pass per instance.
// One pass per instance (instead of a shader-side loop) keeps compositing
// order defined by implicit storage barriers and sidesteps SPIR-V loop
// miscompilation in the WGSL translator.
func (e *Evaluator) dispatch(m *dotgrid.Mask, view dotgrid.View, aaWorld float64, dst []float32) error {
	w, h := uint32(view.Width), uint32(view.Height) //nolint:gosec // dimensions always fit uint32
	covBufSize := uint64(w) * uint64(h) * 4
	instBytes := packInstances(m)
	n := len(m.Instances())

	instBuf, err := e.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "mask_instances", Size: uint64(len(instBytes)),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create instance buffer: %w", err)
	}
	defer e.device.DestroyBuffer(instBuf)

	covBuf, err := e.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "mask_coverage", Size: covBufSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create coverage buffer: %w", err)
	}
	defer e.device.DestroyBuffer(covBuf)

	stagingBuf, err := e.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "mask_staging", Size: covBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create staging buffer: %w", err)
	}
	defer e.device.DestroyBuffer(stagingBuf)

	e.queue.WriteBuffer(instBuf, 0, instBytes)
	e.queue.WriteBuffer(covBuf, 0, make([]byte, covBufSize))

	uniformBufs, bindGroups, err := e.createBindings(n, view, aaWorld, instBuf, uint64(len(instBytes)), covBuf, covBufSize)
	defer e.cleanupBindings(uniformBufs, bindGroups)
	if err != nil {
		return err
	}

	if err := e.encodePasses(bindGroups, covBuf, stagingBuf, w, h, covBufSize, dst); err != nil {
		return err
	}

	e.logger.Debug("GPU mask dispatch", "instances", n, "pixels", w*h)
	return nil
}

// createBindings creates one uniform buffer and bind group per instance.
// All bind groups share the instance and coverage buffers; only the
// instance index in the uniform block differs.
func (e *Evaluator) createBindings(
	n int, view dotgrid.View, aaWorld float64,
	instBuf hal.Buffer, instSize uint64,
	covBuf hal.Buffer, covSize uint64,
) ([]hal.Buffer, []hal.BindGroup, error) {
	paramSize := uint64(unsafe.Sizeof(gpuParams{}))
	origin := view.WorldAt(0, 0)
	uniformBufs := make([]hal.Buffer, 0, n)
	bindGroups := make([]hal.BindGroup, 0, n)

	for i := 0; i < n; i++ {
		paramBytes := packParams(view, origin, aaWorld, uint32(i)) //nolint:gosec // instance index fits uint32

		ub, err := e.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "mask_params", Size: paramSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return uniformBufs, bindGroups, fmt.Errorf("wgpu: create uniform buffer %d: %w", i, err)
		}
		uniformBufs = append(uniformBufs, ub)
		e.queue.WriteBuffer(ub, 0, paramBytes)

		bg, err := e.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label: "mask_bind", Layout: e.bindLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: paramSize}},
				{Binding: 1, Resource: gputypes.BufferBinding{Buffer: instBuf.NativeHandle(), Offset: 0, Size: instSize}},
				{Binding: 2, Resource: gputypes.BufferBinding{Buffer: covBuf.NativeHandle(), Offset: 0, Size: covSize}},
			},
		})
		if err != nil {
			return uniformBufs, bindGroups, fmt.Errorf("wgpu: create bind group %d: %w", i, err)
		}
		bindGroups = append(bindGroups, bg)
	}
	return uniformBufs, bindGroups, nil
}

func (e *Evaluator) cleanupBindings(uniformBufs []hal.Buffer, bindGroups []hal.BindGroup) {
	for _, bg := range bindGroups {
		if bg != nil {
			e.device.DestroyBindGroup(bg)
		}
	}
	for _, ub := range uniformBufs {
		if ub != nil {
			e.device.DestroyBuffer(ub)
		}
	}
}

// encodePasses encodes all instance passes in one command encoder, submits
// once, waits on a fence and reads the coverage back into dst.
func (e *Evaluator) encodePasses(
	bindGroups []hal.BindGroup, covBuf, stagingBuf hal.Buffer,
	w, h uint32, covBufSize uint64, dst []float32,
) error {
	encoder, err := e.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "mask_encoder"})
	if err != nil {
		return fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("mask_union"); err != nil {
		return fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	for _, bg := range bindGroups {
		pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "mask_pass"})
		pass.SetPipeline(e.pipeline)
		pass.SetBindGroup(0, bg, nil)
		pass.Dispatch((w+7)/8, (h+7)/8, 1)
		pass.End()
	}

	encoder.CopyBufferToBuffer(covBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: covBufSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	defer e.device.FreeCommandBuffer(cmdBuf)

	fence, err := e.device.CreateFence()
	if err != nil {
		return fmt.Errorf("wgpu: create fence: %w", err)
	}
	defer e.device.DestroyFence(fence)
	if err := e.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	fenceOK, err := e.device.Wait(fence, 1, gpuWaitTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wgpu: wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, covBufSize)
	if err := e.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("wgpu: readback: %w", err)
	}
	unpackCoverage(readback, dst)
	return nil
}
