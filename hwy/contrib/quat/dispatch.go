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

// Dispatched entry points, set up by init() below and overridden by
// target-specific files (mul_amd64_simd.go).
var (
	// Mul2Float32 is the float32 register product.
	Mul2Float32 func(q1, q2 hwy.Vec4[float32]) hwy.Vec4[float32] = BaseMul2[float32]

	// Mul2Float64 is the float64 register product.
	Mul2Float64 func(q1, q2 hwy.Vec4[float64]) hwy.Vec4[float64] = BaseMul2[float64]

	// MultiplyFloat32 computes *result = *a * *b for float32 quaternions.
	// result must not alias a or b.
	MultiplyFloat32 func(result, a, b *Quat[float32]) = multiplyBaseFloat32

	// MultiplyFloat64 computes *result = *a * *b for float64 quaternions.
	// result must not alias a or b.
	MultiplyFloat64 func(result, a, b *Quat[float64]) = multiplyBaseFloat64
)

// useFMA records whether fused multiply-add was selected at init.
var useFMA bool

func init() {
	if hwy.FMAEnv() && hwy.HasFMA() {
		useFMA = true
		Mul2Float32 = BaseMul2Fused[float32]
		Mul2Float64 = BaseMul2Fused[float64]
	}
}

func multiplyBaseFloat32(result, a, b *Quat[float32]) {
	multiplyWith(result, a, b, Mul2Float32)
}

func multiplyBaseFloat64(result, a, b *Quat[float64]) {
	multiplyWith(result, a, b, Mul2Float64)
}

// FusedMulAdd reports whether the dispatched products use fused
// multiply-add.
func FusedMulAdd() bool {
	return useFMA
}

// multiplier returns the dispatched Multiply kernel for T. Named types
// derived from float32/float64 use the portable product.
func multiplier[T hwy.Floats]() func(result, a, b *Quat[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(MultiplyFloat32).(func(result, a, b *Quat[T]))
	case float64:
		return any(MultiplyFloat64).(func(result, a, b *Quat[T]))
	}
	return func(result, a, b *Quat[T]) {
		multiplyWith(result, a, b, BaseMul2[T])
	}
}

// Multiply loads *a and *b into lane registers, computes their Hamilton
// product and stores it into *result.
//
// result must not alias a or b; the pointers follow the same no-alias
// contract as the register loads and stores they feed.
func Multiply[T hwy.Floats](result, a, b *Quat[T]) {
	multiplier[T]()(result, a, b)
}
