//go:build amd64 && goexperiment.simd

package quat

import (
	"math"
	"simd/archsimd"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-highway/hwyquat/hwy"
)

func TestMul2_SSE_F32x4(t *testing.T) {
	if hwy.CurrentLevel() != hwy.DispatchSSE {
		t.Skipf("archsimd lanes not in use (level %s)", hwy.CurrentName())
	}
	cases := [][2]hwy.Vec4[float32]{
		{hwy.Make4[float32](-22, 33, -44, 11), hwy.Make4[float32](66, -77, 88, -55)},
		{hwy.Make4[float32](2.2, 3.3, 4.4, 1.1), hwy.Make4[float32](6.6, 7.7, 8.8, 5.5)},
		{hwy.Make4[float32](0, 0, 0, 1), hwy.Make4[float32](0.25, -0.5, 0.125, 0.75)},
	}
	for _, c := range cases {
		got := hwy.ToVec4_SSE_F32x4(Mul2_SSE_F32x4(hwy.FromVec4_SSE_F32x4(c[0]), hwy.FromVec4_SSE_F32x4(c[1])))
		require.Equal(t, BaseMul2(c[0], c[1]), got)
	}
}

func TestSignMasks_SSE_F32x4(t *testing.T) {
	if hwy.CurrentLevel() != hwy.DispatchSSE {
		t.Skipf("archsimd lanes not in use (level %s)", hwy.CurrentName())
	}
	require.Equal(t, signMasksFloat32.x, hwy.ToVec4_SSE_F32x4(sseSignX))
	require.Equal(t, signMasksFloat32.y, hwy.ToVec4_SSE_F32x4(sseSignY))
	require.Equal(t, signMasksFloat32.z, hwy.ToVec4_SSE_F32x4(sseSignZ))
}

func TestMul2Fused_SSE_F32x4(t *testing.T) {
	if hwy.CurrentLevel() != hwy.DispatchSSE || !hwy.HasFMA() {
		t.Skipf("fused archsimd lanes not available (level %s)", hwy.CurrentName())
	}
	q1 := hwy.Make4[float32](2.2, 3.3, 4.4, 1.1)
	q2 := hwy.Make4[float32](6.6, 7.7, 8.8, 5.5)
	got := hwy.ToVec4_SSE_F32x4(Mul2Fused_SSE_F32x4(hwy.FromVec4_SSE_F32x4(q1), hwy.FromVec4_SSE_F32x4(q2)))
	want := BaseMul2Fused(q1, q2)
	for i := range hwy.NumLanes {
		require.InDelta(t, want.Lane(i), got.Lane(i), 1e-6*math.Abs(float64(want.Lane(i))), "lane %d", i)
	}
}

var sinkReg archsimd.Float32x4

func BenchmarkMul2_SSE_F32x4(b *testing.B) {
	if hwy.CurrentLevel() != hwy.DispatchSSE {
		b.Skip("archsimd lanes not in use")
	}
	q1 := hwy.FromVec4_SSE_F32x4(hwy.Make4[float32](0.1, 0.2, 0.3, 0.9))
	q2 := hwy.FromVec4_SSE_F32x4(hwy.Make4[float32](0.4, -0.1, 0.2, 0.8))
	for b.Loop() {
		sinkReg = Mul2_SSE_F32x4(q1, q2)
	}
}
