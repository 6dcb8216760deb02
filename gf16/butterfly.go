package gf16

// The butterflies below are Leopard's additive-FFT primitives, not a
// classical complex-valued DFT. A skew log exactly equal to Modulus is a
// sentinel the skew-table construction produces at structural boundaries;
// at those positions the butterfly degenerates to a single XOR on the
// second operand, with the first operand left untouched. This is load
// bearing, not a speed shortcut: substituting the general two-step
// butterfly there (even with a multiplier of 1) computes a different,
// wrong, result, so the branch is preserved exactly as the reference
// engine performs it rather than "simplified" away.

// fft2 is the two-way forward butterfly: x ^= y*skew, then y ^= x.
func fft2(x, y Shard, skewLog GfElement) {
	if skewLog == Modulus {
		Add(y, x)
		return
	}
	MulAdd(x, y, skewLog)
	Add(y, x)
}

// ifft2 is the two-way inverse butterfly: y ^= x, then x ^= y*skew.
func ifft2(x, y Shard, skewLog GfElement) {
	if skewLog == Modulus {
		Add(y, x)
		return
	}
	Add(y, x)
	MulAdd(x, y, skewLog)
}

// fft4 applies one 4-way forward butterfly across work[0], work[dist],
// work[2*dist], work[3*dist].
func fft4(work []Shard, dist int, skew01, skew23, skew02 GfElement) {
	fft2(work[0], work[dist*2], skew02)
	fft2(work[dist], work[dist*3], skew02)

	fft2(work[0], work[dist], skew01)
	fft2(work[dist*2], work[dist*3], skew23)
}

// ifft4 applies one 4-way inverse butterfly across work[0], work[dist],
// work[2*dist], work[3*dist].
func ifft4(work []Shard, dist int, skew01, skew23, skew02 GfElement) {
	ifft2(work[0], work[dist], skew01)
	ifft2(work[dist*2], work[dist*3], skew23)

	ifft2(work[0], work[dist*2], skew02)
	ifft2(work[dist], work[dist*3], skew02)
}
