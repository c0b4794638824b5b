//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures fall back to scalar mode.
	setScalarMode()
	hasFMA = false
}
