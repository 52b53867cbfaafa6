//go:build !amd64 && !arm64

package lanes

func init() {
	// Other architectures run every shape through the emulated path for
	// now. Results are identical; only throughput differs.
	// Future: wasm SIMD128, riscv64 vector extension.
}
