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

// Package hwy provides 4-lane SIMD primitives with runtime CPU dispatch.
//
// The lane register is Vec4, a 128-bit value for float32 (four lanes). All
// operations are pure: they never fail, never allocate and never touch memory
// other than the pointers handed to LoadAligned and StoreAligned.
//
// Basic usage:
//
//	import "github.com/go-highway/hwyquat/hwy"
//
//	var src, dst [4]float32
//	v := hwy.LoadAligned(&src)
//	v = hwy.MulAdd(v, hwy.Replicate[hwy.W](v), hwy.Swizzle[hwy.W, hwy.Z, hwy.Y, hwy.X](v))
//	hwy.StoreAligned(v, &dst)
package hwy

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// NumLanes is the number of lanes held by a Vec4.
const NumLanes = 4

// Vec4 is a 4-lane register. For float32 it is exactly one 128-bit SIMD
// register; float64 lanes are handled by the same portable code.
//
// Vec4 values are transient: build them with LoadAligned, Load4, Set4, Make4
// or Zero4 and write them back with StoreAligned or Store4.
type Vec4[T Floats] struct {
	data [NumLanes]T
}

// Lane returns lane i. It panics if i is outside [0, 4).
// This is primarily for testing and should not be used in hot loops.
func (v Vec4[T]) Lane(i int) T {
	return v.data[i]
}

// Array returns the lanes as an array value.
func (v Vec4[T]) Array() [NumLanes]T {
	return v.data
}

// Make4 builds a register from four lane values, lane 0 first.
func Make4[T Floats](x, y, z, w T) Vec4[T] {
	return Vec4[T]{data: [NumLanes]T{x, y, z, w}}
}

// Set4 creates a register with all lanes set to value.
func Set4[T Floats](value T) Vec4[T] {
	return Vec4[T]{data: [NumLanes]T{value, value, value, value}}
}

// Zero4 creates a register with all lanes set to zero.
func Zero4[T Floats]() Vec4[T] {
	return Vec4[T]{}
}
