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

package hwy

import "unsafe"

// VectorAlign is the alignment in bytes expected by LoadAligned and
// StoreAligned, the size of one 128-bit register.
const VectorAlign = 16

// LoadAligned reads 4 consecutive lanes starting at p.
//
// Callers must pass a VectorAlign-aligned address. The portable
// implementation tolerates misalignment, but SIMD targets are free not to,
// so misaligned input is a contract violation rather than a checked error.
func LoadAligned[T Floats](p *[NumLanes]T) Vec4[T] {
	return Vec4[T]{data: *p}
}

// StoreAligned writes the 4 lanes of v to p. The same alignment contract as
// LoadAligned applies.
func StoreAligned[T Floats](v Vec4[T], p *[NumLanes]T) {
	*p = v.data
}

// Load4 loads the first 4 elements of src. It panics if len(src) < 4.
func Load4[T Floats](src []T) Vec4[T] {
	return Vec4[T]{data: [NumLanes]T(src[:NumLanes])}
}

// Store4 writes v into the first 4 elements of dst. It panics if len(dst) < 4.
func Store4[T Floats](v Vec4[T], dst []T) {
	copy(dst[:NumLanes], v.data[:])
}

// IsPtrAligned reports whether p sits on a VectorAlign boundary.
func IsPtrAligned(p unsafe.Pointer) bool {
	return uintptr(p)%VectorAlign == 0
}

// AlignedSlice returns a slice of n elements whose first element is
// VectorAlign-aligned. The backing array is over-allocated by up to
// VectorAlign bytes.
func AlignedSlice[T Floats](n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	pad := VectorAlign / elemSize
	buf := make([]T, n+pad)
	off := 0
	for off < pad && !IsPtrAligned(unsafe.Pointer(&buf[off])) {
		off++
	}
	return buf[off : off+n : off+n]
}
