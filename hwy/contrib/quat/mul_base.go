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
package quat

import "github.com/go-highway/hwyquat/hwy"

// signMasks holds the lane signs applied to the X, Y and Z replicated
// terms of the product.
type signMasks[T hwy.Floats] struct {
	x, y, z hwy.Vec4[T]
}

func newSignMasks[T hwy.Floats]() signMasks[T] {
	return signMasks[T]{
		x: hwy.Make4[T](1, -1, 1, -1),
		y: hwy.Make4[T](1, 1, -1, -1),
		z: hwy.Make4[T](-1, 1, 1, -1),
	}
}

var (
	signMasksFloat32 = newSignMasks[float32]()
	signMasksFloat64 = newSignMasks[float64]()
)

// masksFor returns the package masks for float32 and float64. Named types
// derived from them get a fresh copy.
func masksFor[T hwy.Floats]() *signMasks[T] {
	if m, ok := any(&signMasksFloat32).(*signMasks[T]); ok {
		return m
	}
	if m, ok := any(&signMasksFloat64).(*signMasks[T]); ok {
		return m
	}
	m := newSignMasks[T]()
	return &m
}

// BaseMul2 returns the Hamilton product q1 * q2 of two quaternion registers
// laid out as (x, y, z, w):
//
//	x = w1x2 + x1w2 + y1z2 - z1y2
//	y = w1y2 - x1z2 + y1w2 + z1x2
//	z = w1z2 + x1y2 - y1x2 + z1w2
//	w = w1w2 - x1x2 - y1y2 - z1z2
//
// Each multiply-add rounds twice (see hwy.MulAdd), so results are
// bit-identical on every platform.
func BaseMul2[T hwy.Floats](q1, q2 hwy.Vec4[T]) hwy.Vec4[T] {
	return mul2(q1, q2, hwy.MulAdd[T])
}

// BaseMul2Fused is BaseMul2 with fused multiply-adds. Results differ from
// BaseMul2 only in last-bit rounding.
func BaseMul2Fused[T hwy.Floats](q1, q2 hwy.Vec4[T]) hwy.Vec4[T] {
	return mul2(q1, q2, hwy.FMA[T])
}

func mul2[T hwy.Floats](q1, q2 hwy.Vec4[T], mulAdd func(a, b, c hwy.Vec4[T]) hwy.Vec4[T]) hwy.Vec4[T] {
	m := masksFor[T]()
	// w1 * (x2, y2, z2, w2)
	acc := hwy.Mul(hwy.BroadcastW(q1), q2)
	// + x1 * (w2, -z2, y2, -x2)
	acc = mulAdd(hwy.Mul(hwy.BroadcastX(q1), m.x), hwy.ReverseLanes(q2), acc)
	// + y1 * (z2, w2, -x2, -y2)
	acc = mulAdd(hwy.Mul(hwy.BroadcastY(q1), m.y), hwy.SwapHalves(q2), acc)
	// + z1 * (-y2, x2, w2, -z2)
	acc = mulAdd(hwy.Mul(hwy.BroadcastZ(q1), m.z), hwy.SwapPairs(q2), acc)
	return acc
}

// multiplyWith loads a and b, applies mul and stores into result.
func multiplyWith[T hwy.Floats](result, a, b *Quat[T], mul func(q1, q2 hwy.Vec4[T]) hwy.Vec4[T]) {
	q1 := hwy.LoadAligned(a.lanes())
	q2 := hwy.LoadAligned(b.lanes())
	hwy.StoreAligned(mul(q1, q2), result.lanes())
}
