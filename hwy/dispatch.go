package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set used for 4-lane float32
// operations.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE indicates 128-bit x86 vector instructions through
	// simd/archsimd (requires GOEXPERIMENT=simd and AVX for VEX encoding).
	DispatchSSE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE:
		return "sse"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName = "scalar"

// hasFMA reports hardware fused multiply-add. Set by init() in dispatch_*.go.
var hasFMA bool

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the lane register width in bytes. It is 16 on every
// target: one 128-bit register holds a float32 Vec4.
func CurrentWidth() int {
	return VectorAlign
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentName
}

// HasFMA returns true if the CPU executes fused multiply-add in hardware.
func HasFMA() bool {
	return hasFMA
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar fallback is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	return envFlag("HWY_NO_SIMD")
}

// FMAEnv checks if the HWY_FMA environment variable is set. When set and
// HasFMA is true, dispatched kernels use fused multiply-add, trading
// cross-platform bit-exactness for one rounding step per multiply-add.
func FMAEnv() bool {
	return envFlag("HWY_FMA")
}

func envFlag(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentName = "scalar"
}
