package lanes

import (
	"os"
	"strconv"
)

// nativeWidths records, per aggregate Width, whether the host CPU can hold
// that aggregate in a single vector register. Set by init() in the
// native_*.go files. Shapes at non-native widths are emulated lane by lane
// with identical numeric results.
var nativeWidths [W512 + 1]bool

// nativeWidth reports whether w maps onto one hardware vector register.
func nativeWidth(w Width) bool {
	if w < 0 || int(w) >= len(nativeWidths) {
		return false
	}
	return nativeWidths[w]
}

// NativeWidths returns the aggregate widths the host supports natively, in
// ascending order. Empty when running in forced-emulation mode.
func NativeWidths() []Width {
	var out []Width
	for _, w := range Widths {
		if nativeWidths[w] {
			out = append(out, w)
		}
	}
	return out
}

// NoSimdEnv checks if the LANES_NO_SIMD environment variable is set.
// When set, every shape reports Native == false regardless of CPU
// capabilities. Numeric results are unaffected; this exists for testing
// the emulated path and for debugging.
func NoSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
