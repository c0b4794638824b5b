//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// There is no NEON lane kernel yet; Vec4 runs on the portable path.
	setScalarMode()

	// FMLA is part of ASIMD, which every ARMv8-A core implements.
	hasFMA = cpu.ARM64.HasASIMD
}
