//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures have no detected register widths; every
	// reduction runs the scalar loop.
	setScalarMode()
}
