package gf16

import "github.com/klauspost/cpuid/v2"

// Capabilities reports what instruction sets the running CPU exposes that a
// SIMD-accelerated engine could use. ScalarEngine never reads this - it
// exists so a future SIMD implementer has somewhere to report against,
// matching the advanced Engine abstraction the library exposes for
// selecting among scalar and (future) SIMD field engines.
type Capabilities struct {
	SSSE3   bool
	AVX2    bool
	AVX512F bool
}

func detectCapabilities() Capabilities {
	return Capabilities{
		SSSE3:   cpuid.CPU.Has(cpuid.SSSE3),
		AVX2:    cpuid.CPU.Has(cpuid.AVX2),
		AVX512F: cpuid.CPU.Has(cpuid.AVX512F),
	}
}

// Engine is the field-arithmetic capability set the encoder and decoder
// drive. ScalarEngine is the only implementation in this module; the
// interface exists so an accelerated engine can be substituted without
// touching the rate or encoder/decoder layers.
type Engine interface {
	Add(dst, src Shard)
	Mul(dst, src Shard, logM GfElement)
	MulAdd(dst, src Shard, logM GfElement)
	FFT(work []Shard, mTrunc, m int, skewLUT []GfElement)
	IFFTEncode(data []Shard, mTrunc int, work []Shard, xorInto []Shard, m int, skewLUT []GfElement)
	IFFTDecode(mTrunc int, work []Shard, m int, skewLUT []GfElement)
	FormalDerivative(work []Shard, n int)
	FWHT(data *[Order]GfElement, mTrunc int)
	Capabilities() Capabilities
}

// ScalarEngine is the reference, table-driven GF(2^16) engine: no SIMD, no
// assembly, bit-exact across platforms. It is the default and, today, the
// only engine.
type ScalarEngine struct{}

var _ Engine = ScalarEngine{}

func (ScalarEngine) Add(dst, src Shard)                        { Add(dst, src) }
func (ScalarEngine) Mul(dst, src Shard, logM GfElement)         { Mul(dst, src, logM) }
func (ScalarEngine) MulAdd(dst, src Shard, logM GfElement)      { MulAdd(dst, src, logM) }
func (ScalarEngine) FFT(work []Shard, mTrunc, m int, skewLUT []GfElement) {
	FFT(work, mTrunc, m, skewLUT)
}
func (ScalarEngine) IFFTEncode(data []Shard, mTrunc int, work []Shard, xorInto []Shard, m int, skewLUT []GfElement) {
	IFFTEncode(data, mTrunc, work, xorInto, m, skewLUT)
}
func (ScalarEngine) IFFTDecode(mTrunc int, work []Shard, m int, skewLUT []GfElement) {
	IFFTDecode(mTrunc, work, m, skewLUT)
}
func (ScalarEngine) FormalDerivative(work []Shard, n int) { FormalDerivative(work, n) }
func (ScalarEngine) FWHT(data *[Order]GfElement, mTrunc int) { FWHT(data, mTrunc) }
func (ScalarEngine) Capabilities() Capabilities              { return detectCapabilities() }
