//go:build !nogpu

package wgpu

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/dotgrid/dotgrid"
)

// The Go-side layouts must match the WGSL struct layouts byte for byte;
// these constants are fixed by the shader, not by Go alignment rules.
func TestGPULayoutSizes(t *testing.T) {
	if size := unsafe.Sizeof(gpuInstance{}); size != 64 {
		t.Errorf("gpuInstance size = %d, want 64", size)
	}
	if size := unsafe.Sizeof(gpuParams{}); size != 32 {
		t.Errorf("gpuParams size = %d, want 32", size)
	}
	if off := unsafe.Offsetof(gpuInstance{}.AX); off != 8 {
		t.Errorf("gpuInstance.AX offset = %d, want 8", off)
	}
	if off := unsafe.Offsetof(gpuInstance{}.Inner); off != 40 {
		t.Errorf("gpuInstance.Inner offset = %d, want 40", off)
	}
	if off := unsafe.Offsetof(gpuParams{}.OriginX); off != 16 {
		t.Errorf("gpuParams.OriginX offset = %d, want 16", off)
	}
}

func testMask(t *testing.T) *dotgrid.Mask {
	t.Helper()
	g, err := dotgrid.NewGrid(dotgrid.Config{
		Cols: 2, Rows: 2, Spacing: 1.5, InnerRadius: 0.4, OuterRadius: 0.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	snap, err := dotgrid.NewSnapshot(g, []bool{true, true, true, true})
	if err != nil {
		t.Fatal(err)
	}
	m, err := dotgrid.NewMask(g, snap)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestPackInstances(t *testing.T) {
	m := testMask(t)
	instances := m.Instances()
	packed := packInstances(m)

	if len(packed) != len(instances)*64 {
		t.Fatalf("packed %d bytes, want %d", len(packed), len(instances)*64)
	}

	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(packed[off:]))
	}
	for i, in := range instances {
		base := i * 64
		if kind := binary.LittleEndian.Uint32(packed[base:]); kind != uint32(in.Link.Kind) {
			t.Errorf("instance %d kind = %d, want %d", i, kind, in.Link.Kind)
		}
		if ax := f32(base + 8); ax != float32(in.A.X) {
			t.Errorf("instance %d A.X = %v, want %v", i, ax, in.A.X)
		}
		if by := f32(base + 20); by != float32(in.B.Y) {
			t.Errorf("instance %d B.Y = %v, want %v", i, by, in.B.Y)
		}
		if inner := f32(base + 40); inner != 0.4 {
			t.Errorf("instance %d inner = %v, want 0.4", i, inner)
		}
		if outer := f32(base + 44); outer != 0.5 {
			t.Errorf("instance %d outer = %v, want 0.5", i, outer)
		}
		lo, hi := in.Bounds()
		if minX := f32(base + 48); minX != float32(lo.X) {
			t.Errorf("instance %d minX = %v, want %v", i, minX, lo.X)
		}
		if maxY := f32(base + 60); maxY != float32(hi.Y) {
			t.Errorf("instance %d maxY = %v, want %v", i, maxY, hi.Y)
		}
	}
}

func TestPackParams(t *testing.T) {
	view := dotgrid.View{Width: 320, Height: 240, PixelsPerUnit: 40, Center: dotgrid.Pt(0, 0)}
	origin := dotgrid.Pt(-4, -3)
	packed := packParams(view, origin, 0.0175, 7)

	if len(packed) != 32 {
		t.Fatalf("packed %d bytes, want 32", len(packed))
	}
	if w := binary.LittleEndian.Uint32(packed[0:]); w != 320 {
		t.Errorf("width = %d, want 320", w)
	}
	if h := binary.LittleEndian.Uint32(packed[4:]); h != 240 {
		t.Errorf("height = %d, want 240", h)
	}
	if idx := binary.LittleEndian.Uint32(packed[8:]); idx != 7 {
		t.Errorf("instance index = %d, want 7", idx)
	}
	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(packed[off:]))
	}
	if ox := f32(16); ox != -4 {
		t.Errorf("origin x = %v, want -4", ox)
	}
	if inv := f32(24); inv != float32(1.0/40) {
		t.Errorf("inv scale = %v, want %v", inv, float32(1.0/40))
	}
	if aa := f32(28); aa != float32(0.0175) {
		t.Errorf("aa width = %v, want 0.0175", aa)
	}
}

func TestUnpackCoverage(t *testing.T) {
	src := []float32{0, 0.25, 0.5, 1}
	raw := make([]byte, len(src)*4)
	for i, v := range src {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}

	dst := make([]float32, len(src))
	unpackCoverage(raw, dst)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}
}
