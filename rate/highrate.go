package rate

import "github.com/malaire/reed-solomon-16/gf16"

// HighRate is used when recovery count does not exceed original count. Its
// chunk size N is ceilPow2(m): originals are consumed in chunks of N,
// each chunk's IFFT result XORed into a single N-shard accumulator, and
// one closing FFT over that accumulator yields all m recovery shards at
// once. This is a direct generalization of the reference encoder, which
// only ever implements this shape.
type HighRate struct{}

var _ Rate = HighRate{}

func (HighRate) Name() string { return "high-rate" }

func (HighRate) Layout(k, m int) Layout {
	return Layout{
		N:               gf16.CeilPow2(m),
		FirstCount:      m,
		FirstIsRecovery: true,
		SecondCount:     k,
	}
}

func (HighRate) Encode(eng gf16.Engine, originals []Shard, k, m, shardLen int) ([]Shard, error) {
	n := gf16.CeilPow2(m)
	skewTable := gf16.SkewTable()

	work := newShards(n*2, shardLen)

	mTrunc := n
	if k < mTrunc {
		mTrunc = k
	}
	sh := originals
	skewLUT := skewTable[n-1:]
	eng.IFFTEncode(sh[:k], mTrunc, work, nil, n, skewLUT)

	lastCount := k % n
	if n < k {
		for i := n; i+n <= k; i += n {
			sh = sh[n:]
			skewLUT = skewLUT[n:]
			eng.IFFTEncode(sh[:n], n, work[n:], work, n, skewLUT)
		}
		if lastCount != 0 {
			sh = sh[n:]
			skewLUT = skewLUT[n:]
			eng.IFFTEncode(sh[:lastCount], lastCount, work[n:], work, n, skewLUT)
		}
	}

	eng.FFT(work, m, n, skewTable[:])

	return work[:m], nil
}
