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
	"unsafe"

	"github.com/go-highway/hwyquat/hwy"
	"github.com/go-highway/hwyquat/hwy/contrib/workerpool"
)

// Batch sizes for ParallelMulSlices, in quaternions.
const (
	// Below this many products the batch runs on the calling goroutine.
	MinParallelQuats = 4096

	// parallelBatch is the unit handed out to workers once there are more
	// batches than workers.
	parallelBatch = 1024
)

// MulSlices sets dst[i] = a[i] * b[i] for every index present in all three
// slices. dst must not overlap a or b.
//
// Example:
//
//	dst := make([]quat.Quat[float32], len(a))
//	quat.MulSlices(dst, a, b)
func MulSlices[T hwy.Floats](dst, a, b []Quat[T]) {
	n := min(len(dst), len(a), len(b))
	if n == 0 {
		return
	}
	mul := multiplier[T]()
	dst, a, b = dst[:n], a[:n], b[:n]
	for i := range dst {
		mul(&dst[i], &a[i], &b[i])
	}
}

// ParallelMulSlices is MulSlices split across pool. A nil pool, or fewer
// than MinParallelQuats products, runs sequentially. Every worker writes a
// disjoint range of dst.
func ParallelMulSlices[T hwy.Floats](pool *workerpool.Pool, dst, a, b []Quat[T]) {
	n := min(len(dst), len(a), len(b))
	if pool == nil || n < MinParallelQuats {
		MulSlices(dst, a, b)
		return
	}

	work := func(start, end int) {
		MulSlices(dst[start:end], a[start:end], b[start:end])
	}
	if (n+parallelBatch-1)/parallelBatch <= pool.NumWorkers() {
		pool.ParallelFor(n, work)
		return
	}
	pool.ParallelForAtomicBatched(n, parallelBatch, work)
}

// MakeAligned allocates n zeroed quaternions starting on a hwy.VectorAlign
// boundary.
func MakeAligned[T hwy.Floats](n int) []Quat[T] {
	if n <= 0 {
		return nil
	}
	buf := hwy.AlignedSlice[T](n * hwy.NumLanes)
	return unsafe.Slice((*Quat[T])(unsafe.Pointer(&buf[0])), n)
}
