package hwy

import (
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// DispatchLevel represents the widest SIMD instruction set detected at startup.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go element-by-element code.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Capability is a set of available register widths.
type Capability uint8

const (
	// Cap128 is set when 128-bit registers (SSE2, NEON) are usable.
	Cap128 Capability = 1 << iota
	// Cap256 is set when 256-bit registers (AVX2) are usable.
	Cap256
	// Cap512 is set when 512-bit registers (AVX-512) are usable.
	Cap512
)

// Has reports whether every width in c2 is present in c.
func (c Capability) Has(c2 Capability) bool {
	return c&c2 == c2
}

// String lists the available widths, e.g. "128|256".
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(Cap128) {
		parts = append(parts, "128")
	}
	if c.Has(Cap256) {
		parts = append(parts, "256")
	}
	if c.Has(Cap512) {
		parts = append(parts, "512")
	}
	return strings.Join(parts, "|")
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files and never modified afterwards.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// currentCaps holds every register width the CPU reported.
var currentCaps Capability

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
// In scalar mode it still reports 16, which is used as the minimum allocation
// alignment.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// Capabilities returns the register widths detected at process start.
// The set is empty when SIMD is unavailable or disabled with HWY_NO_SIMD.
func Capabilities() Capability {
	return currentCaps
}

// HasSIMD reports whether batched evaluation is available.
func HasSIMD() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar fallback is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
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
	currentWidth = 16 // Keep 16-byte alignment even in scalar mode
	currentName = "scalar"
	currentCaps = 0
}

func setLevel(level DispatchLevel, caps Capability) {
	currentLevel = level
	currentName = level.String()
	currentCaps = caps
	switch {
	case caps.Has(Cap512):
		currentWidth = 64
	case caps.Has(Cap256):
		currentWidth = 32
	default:
		currentWidth = 16
	}
}

// MaxLanes returns the number of lanes of type T processed per batch.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int16: 32/2 = 16 lanes
//
// In scalar mode MaxLanes is 1.
func MaxLanes[T Lanes]() int {
	if currentLevel == DispatchScalar {
		return 1
	}
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
