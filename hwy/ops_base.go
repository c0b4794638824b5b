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

import "math"

// This file provides pure Go (scalar) implementations of the arithmetic lane
// operations. Target-specific versions (ops_sse.go) work directly on archsimd
// registers and are selected by the callers' dispatch tables.

// Mul performs lane-wise multiplication: result[i] = a[i] * b[i].
//
// Products are converted to T explicitly so that a later Add or MulAdd on
// the result is never fused with them.
func Mul[T Floats](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [NumLanes]T{
		T(a.data[0] * b.data[0]),
		T(a.data[1] * b.data[1]),
		T(a.data[2] * b.data[2]),
		T(a.data[3] * b.data[3]),
	}}
}

// Add performs lane-wise addition: result[i] = a[i] + b[i].
func Add[T Floats](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [NumLanes]T{
		a.data[0] + b.data[0],
		a.data[1] + b.data[1],
		a.data[2] + b.data[2],
		a.data[3] + b.data[3],
	}}
}

// MulAdd computes a*b + c per lane with two roundings: the product is
// rounded to T before the addition.
//
// The explicit T(...) conversion keeps the compiler from fusing the two
// operations, so results are identical on every platform.
func MulAdd[T Floats](a, b, c Vec4[T]) Vec4[T] {
	var result Vec4[T]
	for i := range NumLanes {
		p := T(a.data[i] * b.data[i])
		result.data[i] = p + c.data[i]
	}
	return result
}

// FMA computes a*b + c per lane with a single rounding.
func FMA[T Floats](a, b, c Vec4[T]) Vec4[T] {
	var result Vec4[T]
	for i := range NumLanes {
		result.data[i] = fmaHelper(a.data[i], b.data[i], c.data[i])
	}
	return result
}

func fmaHelper[T Floats](a, b, c T) T {
	switch av := any(a).(type) {
	case float32:
		// float32 products are exact in float64.
		bv := any(b).(float32)
		cv := any(c).(float32)
		return any(float32(math.FMA(float64(av), float64(bv), float64(cv)))).(T)
	case float64:
		return any(math.FMA(av, any(b).(float64), any(c).(float64))).(T)
	default:
		return T(math.FMA(float64(a), float64(b), float64(c)))
	}
}
