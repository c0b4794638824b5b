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

package hwy

import (
	"simd/archsimd"
)

// This file provides 128-bit float32 lane operations that work directly
// with archsimd.Float32x4 registers. Permutes with constant selectors
// compile to a single VSHUFPS through SelectFromPair; only a Perm that is
// not one of the named fast paths goes through memory.

// Load_SSE_F32x4 loads the 4 lanes at p.
func Load_SSE_F32x4(p *[NumLanes]float32) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(p[:])
}

// Store_SSE_F32x4 writes the 4 lanes of v to p.
func Store_SSE_F32x4(v archsimd.Float32x4, p *[NumLanes]float32) {
	v.StoreSlice(p[:])
}

// Mul_SSE_F32x4 computes a*b per lane (MULPS).
func Mul_SSE_F32x4(a, b archsimd.Float32x4) archsimd.Float32x4 {
	return a.Mul(b)
}

// MulAdd_SSE_F32x4 computes a*b + c per lane as MULPS followed by ADDPS.
func MulAdd_SSE_F32x4(a, b, c archsimd.Float32x4) archsimd.Float32x4 {
	return a.Mul(b).Add(c)
}

// FMA_SSE_F32x4 computes a*b + c per lane with a single rounding.
// Only call it when HasFMA() is true.
func FMA_SSE_F32x4(a, b, c archsimd.Float32x4) archsimd.Float32x4 {
	return a.MulAdd(b, c)
}

// BroadcastX_SSE_F32x4 returns (v[0], v[0], v[0], v[0]).
func BroadcastX_SSE_F32x4(v archsimd.Float32x4) archsimd.Float32x4 {
	return v.SelectFromPair(0, 0, 0, 0, v)
}

// BroadcastY_SSE_F32x4 returns (v[1], v[1], v[1], v[1]).
func BroadcastY_SSE_F32x4(v archsimd.Float32x4) archsimd.Float32x4 {
	return v.SelectFromPair(1, 1, 1, 1, v)
}

// BroadcastZ_SSE_F32x4 returns (v[2], v[2], v[2], v[2]).
func BroadcastZ_SSE_F32x4(v archsimd.Float32x4) archsimd.Float32x4 {
	return v.SelectFromPair(2, 2, 2, 2, v)
}

// BroadcastW_SSE_F32x4 returns (v[3], v[3], v[3], v[3]).
func BroadcastW_SSE_F32x4(v archsimd.Float32x4) archsimd.Float32x4 {
	return v.SelectFromPair(3, 3, 3, 3, v)
}

// ReverseLanes_SSE_F32x4 returns (v[3], v[2], v[1], v[0]).
func ReverseLanes_SSE_F32x4(v archsimd.Float32x4) archsimd.Float32x4 {
	return v.SelectFromPair(3, 2, 1, 0, v)
}

// SwapHalves_SSE_F32x4 returns (v[2], v[3], v[0], v[1]).
func SwapHalves_SSE_F32x4(v archsimd.Float32x4) archsimd.Float32x4 {
	return v.SelectFromPair(2, 3, 0, 1, v)
}

// SwapPairs_SSE_F32x4 returns (v[1], v[0], v[3], v[2]).
func SwapPairs_SSE_F32x4(v archsimd.Float32x4) archsimd.Float32x4 {
	return v.SelectFromPair(1, 0, 3, 2, v)
}

// Replicate_SSE_F32x4 broadcasts lane (lane & 3) into all lanes.
func Replicate_SSE_F32x4(v archsimd.Float32x4, lane int) archsimd.Float32x4 {
	switch lane & 3 {
	case 0:
		return BroadcastX_SSE_F32x4(v)
	case 1:
		return BroadcastY_SSE_F32x4(v)
	case 2:
		return BroadcastZ_SSE_F32x4(v)
	default:
		return BroadcastW_SSE_F32x4(v)
	}
}

// Swizzle_SSE_F32x4 permutes the lanes of v according to p. The same
// permutations SwizzlePerm singles out stay in registers.
func Swizzle_SSE_F32x4(v archsimd.Float32x4, p Perm) archsimd.Float32x4 {
	switch p {
	case PermXYZW:
		return v
	case PermXYXY:
		return v.SelectFromPair(0, 1, 0, 1, v)
	case PermZWZW:
		return v.SelectFromPair(2, 3, 2, 3, v)
	case PermXXYY:
		return v.SelectFromPair(0, 0, 1, 1, v)
	case PermZZWW:
		return v.SelectFromPair(2, 2, 3, 3, v)
	case PermXXZZ:
		return v.SelectFromPair(0, 0, 2, 2, v)
	case PermYYWW:
		return v.SelectFromPair(1, 1, 3, 3, v)
	case PermXXXX:
		return BroadcastX_SSE_F32x4(v)
	case PermYYYY:
		return BroadcastY_SSE_F32x4(v)
	case PermZZZZ:
		return BroadcastZ_SSE_F32x4(v)
	case PermWWWW:
		return BroadcastW_SSE_F32x4(v)
	case PermWZYX:
		return ReverseLanes_SSE_F32x4(v)
	case PermZWXY:
		return SwapHalves_SSE_F32x4(v)
	case PermYXWZ:
		return SwapPairs_SSE_F32x4(v)
	}
	return swizzleViaMemory_SSE_F32x4(v, p)
}

// swizzleViaMemory_SSE_F32x4 handles a runtime Perm with no constant
// selector form: store, permute the scalars, load.
func swizzleViaMemory_SSE_F32x4(v archsimd.Float32x4, p Perm) archsimd.Float32x4 {
	var data [NumLanes]float32
	v.StoreSlice(data[:])
	data = swizzleGeneric(Vec4[float32]{data: data}, p).data
	return archsimd.LoadFloat32x4Slice(data[:])
}

// ToVec4_SSE_F32x4 converts an archsimd register to the portable Vec4.
func ToVec4_SSE_F32x4(v archsimd.Float32x4) Vec4[float32] {
	var out Vec4[float32]
	v.StoreSlice(out.data[:])
	return out
}

// FromVec4_SSE_F32x4 converts a portable Vec4 to an archsimd register.
func FromVec4_SSE_F32x4(v Vec4[float32]) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(v.data[:])
}
