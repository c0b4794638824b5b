// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

// coverage records how many times each index was visited.
func coverage(t *testing.T, n int, run func(fn func(start, end int))) {
	t.Helper()
	visits := make([]atomic.Int32, n)
	run(func(start, end int) {
		if start < 0 || end > n || start >= end {
			t.Errorf("bad range [%d, %d) for n=%d", start, end, n)
			return
		}
		for i := start; i < end; i++ {
			visits[i].Add(1)
		}
	})
	for i := range visits {
		if got := visits[i].Load(); got != 1 {
			t.Errorf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 100, 1001} {
		coverage(t, n, func(fn func(start, end int)) {
			pool.ParallelFor(n, fn)
		})
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	tests := []struct {
		n, batch int
	}{
		{1, 8},
		{100, 10},
		{101, 10},
		{1000, 1},
		{50, 0},
	}
	for _, tt := range tests {
		coverage(t, tt.n, func(fn func(start, end int)) {
			pool.ParallelForAtomicBatched(tt.n, tt.batch, fn)
		})
	}
}

func TestParallelForZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForAtomicBatched(0, 4, func(start, end int) { called = true })
	if called {
		t.Error("fn called for n=0")
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	coverage(t, 64, func(fn func(start, end int)) {
		pool.ParallelFor(64, fn)
	})
	coverage(t, 64, func(fn func(start, end int)) {
		pool.ParallelForAtomicBatched(64, 8, fn)
	})
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.ParallelFor(len(data), func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}
