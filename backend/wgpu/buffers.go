//go:build !nogpu

package wgpu

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/dotgrid/dotgrid"
)

// gpuInstance is the GPU-compatible layout of a resolved connector
// instance. Must match struct Inst in mask.wgsl: 64 bytes, vec2 fields on
// 8-byte boundaries.
type gpuInstance struct {
	Kind    uint32
	Pad     uint32
	AX, AY  float32
	BX, BY  float32
	CX, CY  float32
	DX, DY  float32
	Inner   float32
	Outer   float32
	MinX    float32
	MinY    float32
	MaxX    float32
	MaxY    float32
}

// gpuParams is the per-pass uniform block. Must match struct Params in
// mask.wgsl: 32 bytes.
type gpuParams struct {
	Width         uint32
	Height        uint32
	InstanceIndex uint32
	Pad           uint32
	OriginX       float32
	OriginY       float32
	InvScale      float32
	AAWidth       float32
}

// packInstances serializes the mask's instances into the storage buffer
// layout. Radii and bounds come from the resolved instances; nothing is
// recomputed here.
func packInstances(m *dotgrid.Mask) []byte {
	instances := m.Instances()
	out := make([]byte, 0, len(instances)*int(unsafe.Sizeof(gpuInstance{})))
	g := m.Grid()
	for _, in := range instances {
		lo, hi := in.Bounds()
		gi := gpuInstance{
			Kind:  uint32(in.Link.Kind),
			AX:    float32(in.A.X),
			AY:    float32(in.A.Y),
			BX:    float32(in.B.X),
			BY:    float32(in.B.Y),
			CX:    float32(in.C.X),
			CY:    float32(in.C.Y),
			DX:    float32(in.D.X),
			DY:    float32(in.D.Y),
			Inner: float32(g.InnerRadius()),
			Outer: float32(g.OuterRadius()),
			MinX:  float32(lo.X),
			MinY:  float32(lo.Y),
			MaxX:  float32(hi.X),
			MaxY:  float32(hi.Y),
		}
		out = append(out, structToBytes(unsafe.Pointer(&gi), unsafe.Sizeof(gi))...)
	}
	return out
}

// packParams serializes the uniform block for one compute pass.
func packParams(view dotgrid.View, origin dotgrid.Point, aaWorld float64, instanceIndex uint32) []byte {
	p := gpuParams{
		Width:         uint32(view.Width),
		Height:        uint32(view.Height),
		InstanceIndex: instanceIndex,
		OriginX:       float32(origin.X),
		OriginY:       float32(origin.Y),
		InvScale:      float32(1 / view.PixelsPerUnit),
		AAWidth:       float32(aaWorld),
	}
	b := structToBytes(unsafe.Pointer(&p), unsafe.Sizeof(p))
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// unpackCoverage converts the little-endian f32 readback into dst.
func unpackCoverage(readback []byte, dst []float32) {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(readback[i*4:]))
	}
}

func structToBytes(ptr unsafe.Pointer, size uintptr) []byte {
	return unsafe.Slice((*byte)(ptr), size) //nolint:gosec // safe struct serialization
}
