package rate

import (
	"github.com/malaire/reed-solomon-16/gf16"
)

// Shard is a 64-byte-aligned deinterleaved field-element buffer, the same
// layout gf16 operates on.
type Shard = gf16.Shard

// Layout describes where the decoder should place original and recovery
// shards within its working buffer for a given rate. The working buffer is
// logically split into a first group of exactly N slots (N being this
// rate's chunk size) and a second group of SecondCount slots immediately
// following it; the decoder pads the whole thing up to the next power of
// two on top of that.
//
// Slots in the first group beyond FirstCount are padding. Which way that
// padding is treated depends on FirstIsRecovery: recovery-side padding
// never existed and is folded into the erasure count, original-side
// padding is defined to be zero and counts as present.
type Layout struct {
	N               int
	FirstCount      int
	FirstIsRecovery bool
	SecondCount     int
}

// Rate is a Leopard-RS chunking strategy. HighRate is used whenever
// parity count does not exceed original count; LowRate otherwise.
type Rate interface {
	Name() string
	Layout(k, m int) Layout
	Encode(eng gf16.Engine, originals []Shard, k, m, shardLen int) ([]Shard, error)
}

// Select returns the rate appropriate for k original and m recovery
// shards: HighRate when m <= k, LowRate otherwise. This mirrors the
// encode/decode symmetry point called out in the chunk-size discussion in
// the original Leopard construction, generalized to the side klauspost's
// single-strategy implementation never needed because it only ever
// targeted m <= k workloads.
func Select(k, m int) Rate {
	if m <= k {
		return HighRate{}
	}
	return LowRate{}
}

func newShards(n, shardLen int) []Shard {
	s := make([]Shard, n)
	for i := range s {
		s[i] = make(Shard, shardLen)
	}
	return s
}
