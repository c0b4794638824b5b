// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && goexperiment.simd

package quat

import (
	"simd/archsimd"

	"github.com/go-highway/hwyquat/hwy"
)

// Sign masks in registers, loaded once in init when archsimd lanes are in
// use.
var sseSignX, sseSignY, sseSignZ archsimd.Float32x4

func init() {
	if hwy.CurrentLevel() != hwy.DispatchSSE {
		return
	}
	sseSignX = hwy.FromVec4_SSE_F32x4(signMasksFloat32.x)
	sseSignY = hwy.FromVec4_SSE_F32x4(signMasksFloat32.y)
	sseSignZ = hwy.FromVec4_SSE_F32x4(signMasksFloat32.z)
	if useFMA {
		MultiplyFloat32 = multiplySSEFused
		return
	}
	MultiplyFloat32 = multiplySSE
}

func multiplySSE(result, a, b *Quat[float32]) {
	q1 := hwy.Load_SSE_F32x4(a.lanes())
	q2 := hwy.Load_SSE_F32x4(b.lanes())
	hwy.Store_SSE_F32x4(Mul2_SSE_F32x4(q1, q2), result.lanes())
}

func multiplySSEFused(result, a, b *Quat[float32]) {
	q1 := hwy.Load_SSE_F32x4(a.lanes())
	q2 := hwy.Load_SSE_F32x4(b.lanes())
	hwy.Store_SSE_F32x4(Mul2Fused_SSE_F32x4(q1, q2), result.lanes())
}

// Mul2_SSE_F32x4 is BaseMul2 on archsimd registers (MULPS + ADDPS, with
// VSHUFPS for every permute). Only call it at hwy.DispatchSSE.
func Mul2_SSE_F32x4(q1, q2 archsimd.Float32x4) archsimd.Float32x4 {
	acc := q2.Mul(hwy.BroadcastW_SSE_F32x4(q1))
	acc = hwy.MulAdd_SSE_F32x4(hwy.BroadcastX_SSE_F32x4(q1).Mul(sseSignX), hwy.ReverseLanes_SSE_F32x4(q2), acc)
	acc = hwy.MulAdd_SSE_F32x4(hwy.BroadcastY_SSE_F32x4(q1).Mul(sseSignY), hwy.SwapHalves_SSE_F32x4(q2), acc)
	acc = hwy.MulAdd_SSE_F32x4(hwy.BroadcastZ_SSE_F32x4(q1).Mul(sseSignZ), hwy.SwapPairs_SSE_F32x4(q2), acc)
	return acc
}

// Mul2Fused_SSE_F32x4 is BaseMul2Fused on archsimd registers.
// Only call it when hwy.HasFMA() is true.
func Mul2Fused_SSE_F32x4(q1, q2 archsimd.Float32x4) archsimd.Float32x4 {
	acc := q2.Mul(hwy.BroadcastW_SSE_F32x4(q1))
	acc = hwy.FMA_SSE_F32x4(hwy.BroadcastX_SSE_F32x4(q1).Mul(sseSignX), hwy.ReverseLanes_SSE_F32x4(q2), acc)
	acc = hwy.FMA_SSE_F32x4(hwy.BroadcastY_SSE_F32x4(q1).Mul(sseSignY), hwy.SwapHalves_SSE_F32x4(q2), acc)
	acc = hwy.FMA_SSE_F32x4(hwy.BroadcastZ_SSE_F32x4(q1).Mul(sseSignZ), hwy.SwapPairs_SSE_F32x4(q2), acc)
	return acc
}
