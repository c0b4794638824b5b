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
// Package quat multiplies quaternions on 4-lane hwy registers.
//
// A Quat holds its components in X, Y, Z, W order, which is also the lane
// order of the hwy.Vec4 it is loaded into. The Hamilton product is evaluated
// branch-free as four multiply-adds over replicated and swizzled lanes, with
// no scalar extraction.
//
// Composition follows the "right first" convention: for rotations a and b,
// a.Mul(b) applies b first, then a.
//
// Basic usage:
//
//	a := quat.Quat[float32]{X: 2, Y: 3, Z: 4, W: 1}
//	b := quat.Quat[float32]{X: 6, Y: 7, Z: 8, W: 5}
//	c := a.Mul(b) // {X: 12, Y: 30, Z: 24, W: -60}
//
// The float32 and float64 entry points are dispatched at init time: on amd64
// builds with GOEXPERIMENT=simd the float32 product runs on archsimd
// registers, and HWY_FMA=1 selects fused multiply-add where the CPU has it.
package quat
