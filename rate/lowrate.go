package rate

import "github.com/malaire/reed-solomon-16/gf16"

// LowRate is used when recovery count exceeds original count. Its chunk
// size N is ceilPow2(k): all k originals are IFFT'd into a single N-shard
// buffer once, and each recovery chunk of up to N shards is produced by
// an independent forward FFT of a copy of that buffer, evaluated at a
// different set of skew points per chunk. The reference encoder never
// needs this shape - it only ever chunks by parity count - so this is
// built by symmetry with HighRate rather than ported line for line.
type LowRate struct{}

var _ Rate = LowRate{}

func (LowRate) Name() string { return "low-rate" }

func (LowRate) Layout(k, m int) Layout {
	return Layout{
		N:               gf16.CeilPow2(k),
		FirstCount:      k,
		FirstIsRecovery: false,
		SecondCount:     m,
	}
}

func (LowRate) Encode(eng gf16.Engine, originals []Shard, k, m, shardLen int) ([]Shard, error) {
	n := gf16.CeilPow2(k)
	skewTable := gf16.SkewTable()

	// Originals occupy positions [0, n) and recovery chunks start at
	// position n, matching Layout's slot order for the decoder.
	work := newShards(n, shardLen)
	for i := 0; i < k; i++ {
		copy(work[i], originals[i])
	}
	eng.IFFTDecode(k, work, n, skewTable[:])

	recovery := newShards(m, shardLen)
	chunk := newShards(n, shardLen)
	for off := 0; off < m; off += n {
		count := n
		if off+count > m {
			count = m - off
		}
		for i := 0; i < n; i++ {
			copy(chunk[i], work[i])
		}
		eng.FFT(chunk, count, n, skewTable[n+off:])
		for i := 0; i < count; i++ {
			copy(recovery[off+i], chunk[i])
		}
	}

	return recovery, nil
}
