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

//go:generate go run ../cmd/permgen -output perm_gen.go

// This file provides the replicate and swizzle operations on Vec4.
// Swizzle and Replicate take their lane indices as type arguments, so an
// index outside 0..3 does not compile. SwizzlePerm is the runtime form.
// The lane selectors share one generic instantiation, so kernels use the
// named permutes (BroadcastX..W, ReverseLanes, SwapHalves, SwapPairs).

// LaneIndex is satisfied only by X, Y, Z and W, the compile-time lane
// selectors for lanes 0, 1, 2 and 3.
type LaneIndex interface {
	X | Y | Z | W
	Index() int
}

// X selects lane 0.
type X struct{}

// Y selects lane 1.
type Y struct{}

// Z selects lane 2.
type Z struct{}

// W selects lane 3.
type W struct{}

func (X) Index() int { return 0 }
func (Y) Index() int { return 1 }
func (Z) Index() int { return 2 }
func (W) Index() int { return 3 }

// Perm encodes a 4-lane permutation, 2 bits per destination lane:
// bits [1:0] pick the source of lane 0, bits [3:2] lane 1, and so on.
// All 256 values are valid permutations.
type Perm uint8

// PermOf encodes the permutation (i0, i1, i2, i3). Indices are taken mod 4.
func PermOf(i0, i1, i2, i3 int) Perm {
	return Perm(i0&3 | (i1&3)<<2 | (i2&3)<<4 | (i3&3)<<6)
}

// Index returns the source lane for destination lane k (taken mod 4).
func (p Perm) Index(k int) int {
	return int(p>>(2*uint(k&3))) & 3
}

const laneNames = "XYZW"

// String returns the permutation in XYZW notation, e.g. "WZYX".
func (p Perm) String() string {
	var b [NumLanes]byte
	for k := range NumLanes {
		b[k] = laneNames[p.Index(k)]
	}
	return string(b[:])
}

func permOf[I0, I1, I2, I3 LaneIndex]() Perm {
	var (
		i0 I0
		i1 I1
		i2 I2
		i3 I3
	)
	return PermOf(i0.Index(), i1.Index(), i2.Index(), i3.Index())
}

// Replicate broadcasts lane L into all lanes.
//
//	hwy.Replicate[hwy.W](v) // (v[3], v[3], v[3], v[3])
func Replicate[L LaneIndex, T Floats](v Vec4[T]) Vec4[T] {
	var l L
	return Set4(v.data[l.Index()])
}

// ReplicateLane broadcasts lane i&3 into all lanes.
func ReplicateLane[T Floats](v Vec4[T], i int) Vec4[T] {
	return Set4(v.data[i&3])
}

// Swizzle returns (v[I0], v[I1], v[I2], v[I3]).
//
//	hwy.Swizzle[hwy.W, hwy.Z, hwy.Y, hwy.X](v) // reverses v
func Swizzle[I0, I1, I2, I3 LaneIndex, T Floats](v Vec4[T]) Vec4[T] {
	return SwizzlePerm(v, permOf[I0, I1, I2, I3]())
}

// BroadcastX returns (v[0], v[0], v[0], v[0]).
func BroadcastX[T Floats](v Vec4[T]) Vec4[T] { return Set4(v.data[0]) }

// BroadcastY returns (v[1], v[1], v[1], v[1]).
func BroadcastY[T Floats](v Vec4[T]) Vec4[T] { return Set4(v.data[1]) }

// BroadcastZ returns (v[2], v[2], v[2], v[2]).
func BroadcastZ[T Floats](v Vec4[T]) Vec4[T] { return Set4(v.data[2]) }

// BroadcastW returns (v[3], v[3], v[3], v[3]).
func BroadcastW[T Floats](v Vec4[T]) Vec4[T] { return Set4(v.data[3]) }

// ReverseLanes returns (v[3], v[2], v[1], v[0]), the WZYX permutation.
func ReverseLanes[T Floats](v Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [NumLanes]T{v.data[3], v.data[2], v.data[1], v.data[0]}}
}

// SwapHalves returns (v[2], v[3], v[0], v[1]), the ZWXY permutation.
func SwapHalves[T Floats](v Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [NumLanes]T{v.data[2], v.data[3], v.data[0], v.data[1]}}
}

// SwapPairs returns (v[1], v[0], v[3], v[2]), the YXWZ permutation.
func SwapPairs[T Floats](v Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [NumLanes]T{v.data[1], v.data[0], v.data[3], v.data[2]}}
}

// SwizzlePerm returns (v[p.Index(0)], v[p.Index(1)], v[p.Index(2)], v[p.Index(3)]).
//
// Lane duplications, half swaps and the identity take dedicated paths that
// mirror the single-instruction forms on SSE (movelh/movehl, unpacklo/hi,
// moveldup/movehdup); every other permutation goes through swizzleGeneric.
// Callers with a fixed permutation should call the named function
// (ReverseLanes, BroadcastW, ...) directly.
func SwizzlePerm[T Floats](v Vec4[T], p Perm) Vec4[T] {
	d := v.data
	switch p {
	case PermXYZW:
		return v
	case PermXYXY:
		return Vec4[T]{data: [NumLanes]T{d[0], d[1], d[0], d[1]}}
	case PermZWZW:
		return Vec4[T]{data: [NumLanes]T{d[2], d[3], d[2], d[3]}}
	case PermXXYY:
		return Vec4[T]{data: [NumLanes]T{d[0], d[0], d[1], d[1]}}
	case PermZZWW:
		return Vec4[T]{data: [NumLanes]T{d[2], d[2], d[3], d[3]}}
	case PermXXZZ:
		return Vec4[T]{data: [NumLanes]T{d[0], d[0], d[2], d[2]}}
	case PermYYWW:
		return Vec4[T]{data: [NumLanes]T{d[1], d[1], d[3], d[3]}}
	case PermXXXX:
		return BroadcastX(v)
	case PermYYYY:
		return BroadcastY(v)
	case PermZZZZ:
		return BroadcastZ(v)
	case PermWWWW:
		return BroadcastW(v)
	case PermWZYX:
		return ReverseLanes(v)
	case PermZWXY:
		return SwapHalves(v)
	case PermYXWZ:
		return SwapPairs(v)
	}
	return swizzleGeneric(v, p)
}

func swizzleGeneric[T Floats](v Vec4[T], p Perm) Vec4[T] {
	return Vec4[T]{data: [NumLanes]T{
		v.data[p&3],
		v.data[(p>>2)&3],
		v.data[(p>>4)&3],
		v.data[(p>>6)&3],
	}}
}
