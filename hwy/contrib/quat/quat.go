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

import (
	"fmt"
	"unsafe"

	"github.com/go-highway/hwyquat/hwy"
)

// Quat is a quaternion with components X, Y, Z (vector part) and W (scalar
// part).
//
// The layout is exactly four T fields with no padding, so a *Quat[T] can be
// read and written as one 4-lane register. Go cannot raise a struct's
// alignment, so 16-byte alignment of a Quat is only guaranteed for storage
// from MakeAligned; Multiply works on any address.
type Quat[T hwy.Floats] struct {
	X T
	Y T
	Z T
	W T
}

// Build-time layout checks: each line fails to compile if the size or the
// W offset changes.
var (
	_ [16 - unsafe.Sizeof(Quat[float32]{})]struct{}
	_ [unsafe.Sizeof(Quat[float32]{}) - 16]struct{}
	_ [32 - unsafe.Sizeof(Quat[float64]{})]struct{}
	_ [unsafe.Sizeof(Quat[float64]{}) - 32]struct{}
	_ [12 - unsafe.Offsetof(Quat[float32]{}.W)]struct{}
	_ [unsafe.Offsetof(Quat[float32]{}.W) - 12]struct{}
)

// New returns the quaternion (x, y, z, w).
func New[T hwy.Floats](x, y, z, w T) Quat[T] {
	return Quat[T]{X: x, Y: y, Z: z, W: w}
}

// Identity returns (0, 0, 0, 1).
func Identity[T hwy.Floats]() Quat[T] {
	return Quat[T]{W: 1}
}

// lanes views q as its four lanes.
func (q *Quat[T]) lanes() *[hwy.NumLanes]T {
	return (*[hwy.NumLanes]T)(unsafe.Pointer(q))
}

// Mul returns q * o, the Go form of the infix product: o is applied first,
// then q. It is defined entirely by Multiply.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	var result Quat[T]
	Multiply(&result, &q, &o)
	return result
}

// String implements fmt.Stringer.
func (q Quat[T]) String() string {
	return fmt.Sprintf("Quat(X=%v, Y=%v, Z=%v, W=%v)", q.X, q.Y, q.Z, q.W)
}

// MulScalar evaluates the Hamilton product a * b with the closed-form
// scalar formula. It is the reference that the lane kernels are checked
// against.
func MulScalar[T hwy.Floats](a, b Quat[T]) Quat[T] {
	return Quat[T]{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}
