// Package gf16 implements the scalar arithmetic engine for GF(2^16) used by
// the Leopard-RS FFT-based erasure code: log/exp tables under a Cantor basis,
// the additive-FFT butterflies (FFT/IFFT), the formal derivative used during
// decoding, and the Fast Walsh-Hadamard Transform used to build the
// error-locator polynomial.
//
// Every operation here is bit-exact and table-driven; there is no SIMD
// kernel. Capabilities reports what the CPU could accelerate if one were
// ever added, but nothing in this package branches on it.
package gf16
