package gf16

// Zero overwrites every byte of s with zero.
func Zero(s Shard) {
	for i := range s {
		s[i] = 0
	}
}

// AddAll XORs every shard in src into the matching shard in dst: for each
// i, dst[i] ^= src[i].
func AddAll(dst, src []Shard) {
	for i, s := range src {
		Add(dst[i], s)
	}
}

// IFFTEncode is the encoder's decimation-in-time inverse FFT. It copies the
// first mTrunc shards of data into work (zero-filling the rest up to m),
// runs the length-m inverse transform using skew starting at skewLUT[dist]
// offsets, and - if xorInto is non-nil - XORs the first m results into
// xorInto. This is the core of the high-rate per-chunk encode step.
func IFFTEncode(data []Shard, mTrunc int, work []Shard, xorInto []Shard, m int, skewLUT []GfElement) {
	for i := 0; i < mTrunc; i++ {
		copy(work[i], data[i])
	}
	for i := mTrunc; i < m; i++ {
		Zero(work[i])
	}

	dist := 1
	dist4 := 4
	for dist4 <= m {
		for r := 0; r < mTrunc; r += dist4 {
			iend := r + dist
			skew01 := skewLUT[iend]
			skew02 := skewLUT[iend+dist]
			skew23 := skewLUT[iend+dist*2]

			for i := r; i < iend; i++ {
				ifft4(work[i:], dist, skew01, skew23, skew02)
			}
		}
		dist = dist4
		dist4 <<= 2
	}

	if dist < m {
		if dist*2 != m {
			panic("gf16: IFFTEncode: internal size invariant violated")
		}
		skew := skewLUT[dist]
		if skew == Modulus {
			AddAll(work[dist:dist*2], work[:dist])
		} else {
			for i := 0; i < dist; i++ {
				ifft2(work[i], work[i+dist], skew)
			}
		}
	}

	if xorInto != nil {
		AddAll(xorInto[:m], work[:m])
	}
}

// IFFTDecode is the decoder's in-place inverse FFT over a length-m working
// buffer, used once on the combined recovered/present data during
// reconstruction, and by the low-rate encoder on its padded originals.
func IFFTDecode(mTrunc int, work []Shard, m int, skewLUT []GfElement) {
	dist := 1
	dist4 := 4
	for dist4 <= m {
		for r := 0; r < mTrunc; r += dist4 {
			iend := r + dist
			skew01 := skewLUT[iend-1]
			skew02 := skewLUT[iend+dist-1]
			skew23 := skewLUT[iend+dist*2-1]

			for i := r; i < iend; i++ {
				ifft4(work[i:], dist, skew01, skew23, skew02)
			}
		}
		dist = dist4
		dist4 <<= 2
	}

	if dist < m {
		if dist*2 != m {
			panic("gf16: IFFTDecode: internal size invariant violated")
		}
		skew := skewLUT[dist-1]
		if skew == Modulus {
			AddAll(work[dist:dist*2], work[:dist])
		} else {
			for i := 0; i < dist; i++ {
				ifft2(work[i], work[i+dist], skew)
			}
		}
	}
}

// FFT is the in-place forward FFT shared by the encoders (high rate applies
// it once to the accumulated IFFT result, low rate once per recovery chunk)
// and the decoder (applied once to the recovered working buffer, truncated
// to mTrunc outputs).
func FFT(work []Shard, mTrunc, m int, skewLUT []GfElement) {
	dist4 := m
	dist := m >> 2
	for dist != 0 {
		for r := 0; r < mTrunc; r += dist4 {
			iend := r + dist
			skew01 := skewLUT[iend-1]
			skew02 := skewLUT[iend+dist-1]
			skew23 := skewLUT[iend+dist*2-1]

			for i := r; i < iend; i++ {
				fft4(work[i:], dist, skew01, skew23, skew02)
			}
		}
		dist4 = dist
		dist >>= 2
	}

	if dist4 == 2 {
		for r := 0; r < mTrunc; r += 2 {
			skew := skewLUT[r]
			if skew == Modulus {
				Add(work[r+1], work[r])
			} else {
				fft2(work[r], work[r+1], skew)
			}
		}
	}
}

// FormalDerivative applies the GF(2^16) formal derivative in place, the
// decoding step that turns the error-locator-weighted spectrum back into
// one whose IFFT/FFT round trip reveals the erased values.
func FormalDerivative(work []Shard, n int) {
	for i := 1; i < n; i++ {
		width := ((i ^ (i - 1)) + 1) >> 1
		AddAll(work[i-width:i], work[i:i+width])
	}
}

// FWHT is the length-Order decimation-in-time Walsh-Hadamard transform used
// to build the error-locator polynomial. Only the first mTrunc input
// positions are assumed nonzero; later levels still process the full
// Order-length array because the transform mixes every position together.
func FWHT(data *[Order]GfElement, mTrunc int) {
	dist := 1
	dist4 := 4
	for dist4 <= Order {
		for r := 0; r < mTrunc; r += dist4 {
			// 16-bit indices: every block lies inside [0, Order), so
			// off+dist*3 never exceeds 65535 and the uint16 index is
			// always in range for the [Order] array.
			dist := uint16(dist)
			off := uint16(r)
			for i := uint16(0); i < dist; i++ {
				t0 := data[off]
				t1 := data[off+dist]
				t2 := data[off+dist*2]
				t3 := data[off+dist*3]

				t0, t1 = addMod(t0, t1), subMod(t0, t1)
				t2, t3 = addMod(t2, t3), subMod(t2, t3)
				t0, t2 = addMod(t0, t2), subMod(t0, t2)
				t1, t3 = addMod(t1, t3), subMod(t1, t3)

				data[off] = t0
				data[off+dist] = t1
				data[off+dist*2] = t2
				data[off+dist*3] = t3
				off++
			}
		}
		dist = dist4
		dist4 <<= 2
	}
}
