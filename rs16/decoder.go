package rs16

import (
	"sync"

	"github.com/malaire/reed-solomon-16/gf16"
	"github.com/malaire/reed-solomon-16/rate"
)

// Decoder is a stateful builder: add whichever original and recovery
// shards are available, in any order since each carries its own index,
// then call Decode to reconstruct the missing originals.
type Decoder struct {
	dataShards   int
	parityShards int
	shardSize    int
	opt          options
	rate         rate.Rate
	workPool     sync.Pool

	originals       []Shard
	recovery        []Shard
	originalPresent int
	recoveryPresent int
}

// NewDecoder creates a Decoder matching an Encoder built with the same
// dataShards, parityShards, and shardSize.
func NewDecoder(dataShards, parityShards, shardSize int, opts ...Option) (*Decoder, error) {
	return newDecoder(dataShards, parityShards, shardSize, nil, opts...)
}

// newDecoder is NewDecoder with an optional forced rate strategy;
// forcedRate nil means pick automatically via rate.Select. See
// newEncoder for why the Advanced wrappers need this.
func newDecoder(dataShards, parityShards, shardSize int, forcedRate rate.Rate, opts ...Option) (*Decoder, error) {
	if err := validateShape(dataShards, parityShards); err != nil {
		return nil, err
	}
	if err := validateShardSize(shardSize); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	r := forcedRate
	if r == nil {
		r = rate.Select(dataShards, parityShards)
	}
	d := &Decoder{
		dataShards:   dataShards,
		parityShards: parityShards,
		shardSize:    shardSize,
		opt:          o,
		rate:         r,
	}
	d.Reset()
	return d, nil
}

func (d *Decoder) DataShards() int   { return d.dataShards }
func (d *Decoder) ParityShards() int { return d.parityShards }
func (d *Decoder) TotalShards() int  { return d.dataShards + d.parityShards }

// AddOriginalShard records a received original shard at idx.
func (d *Decoder) AddOriginalShard(idx int, s Shard) error {
	if idx < 0 || idx >= d.dataShards {
		return ErrInvalidIndex
	}
	if len(s) != d.shardSize {
		return ErrBadShardSize
	}
	if d.originals[idx] != nil {
		return ErrDuplicateShard
	}
	d.originals[idx] = append(Shard(nil), s...)
	d.originalPresent++
	return nil
}

// AddRecoveryShard records a received recovery shard at idx.
func (d *Decoder) AddRecoveryShard(idx int, s Shard) error {
	if idx < 0 || idx >= d.parityShards {
		return ErrInvalidIndex
	}
	if len(s) != d.shardSize {
		return ErrBadShardSize
	}
	if d.recovery[idx] != nil {
		return ErrDuplicateShard
	}
	d.recovery[idx] = append(Shard(nil), s...)
	d.recoveryPresent++
	return nil
}

// Reset clears every added shard so the Decoder can be driven through
// another decode cycle. The pooled work buffers Decode uses are kept.
func (d *Decoder) Reset() {
	d.originals = make([]Shard, d.dataShards)
	d.recovery = make([]Shard, d.parityShards)
	d.originalPresent = 0
	d.recoveryPresent = 0
}

// Decode reconstructs every missing original shard from whatever
// originals and recoveries were added. It requires at least DataShards
// shards total, of either kind; otherwise it returns ErrNotEnoughShards.
// The returned map contains exactly the original indices never added.
func (d *Decoder) Decode() (RestoredOriginals, error) {
	if d.originalPresent == d.dataShards {
		return RestoredOriginals{}, nil
	}
	if d.originalPresent+d.recoveryPresent < d.dataShards {
		return nil, ErrNotEnoughShards
	}

	eng := d.opt.engine
	layout := d.rate.Layout(d.dataShards, d.parityShards)
	logicalLen := layout.N + layout.SecondCount
	n := gf16.CeilPow2(logicalLen)

	firstGroup := func(i int) Shard {
		if layout.FirstIsRecovery {
			return d.recovery[i]
		}
		return d.originals[i]
	}
	secondGroup := func(i int) Shard {
		if layout.FirstIsRecovery {
			return d.originals[i]
		}
		return d.recovery[i]
	}

	var errLocs [gf16.Order]gf16.GfElement
	for i := 0; i < layout.N; i++ {
		switch {
		case i < layout.FirstCount:
			if firstGroup(i) == nil {
				errLocs[i] = 1
			}
		case layout.FirstIsRecovery:
			// Recovery-side padding beyond the real parity count never
			// existed; it counts toward the erasure budget regardless.
			errLocs[i] = 1
		default:
			// Original-side padding is defined to be zero and counts as
			// present; errLocs[i] stays 0.
		}
	}
	for i := 0; i < layout.SecondCount; i++ {
		if secondGroup(i) == nil {
			errLocs[layout.N+i] = 1
		}
	}

	fwhtTrunc := logicalLen
	if !layout.FirstIsRecovery {
		// Low rate: every position past the last recovery slot holds an
		// evaluation nobody supplied, so it is an erasure, not a zero.
		for i := logicalLen; i < gf16.Order; i++ {
			errLocs[i] = 1
		}
		fwhtTrunc = gf16.Order
	}
	eng.FWHT(&errLocs, fwhtTrunc)
	walshLog := gf16.WalshLog()
	for i := range errLocs {
		errLocs[i] = gf16.GfElement((uint32(errLocs[i]) * uint32(walshLog[i])) % gf16.Modulus)
	}
	eng.FWHT(&errLocs, gf16.Order)

	work := d.getWork(n)
	defer d.workPool.Put(work)

	for i := 0; i < layout.N; i++ {
		if i < layout.FirstCount {
			if s := firstGroup(i); s != nil {
				eng.Mul(work[i], s, errLocs[i])
				continue
			}
		}
		gf16.Zero(work[i])
	}
	for i := 0; i < layout.SecondCount; i++ {
		pos := layout.N + i
		if s := secondGroup(i); s != nil {
			eng.Mul(work[pos], s, errLocs[pos])
		} else {
			gf16.Zero(work[pos])
		}
	}
	for i := logicalLen; i < n; i++ {
		gf16.Zero(work[i])
	}

	skew := gf16.SkewTable()
	eng.IFFTDecode(logicalLen, work, n, skew[:])
	eng.FormalDerivative(work, n)
	eng.FFT(work, logicalLen, n, skew[:])

	restored := make(RestoredOriginals)
	for k := 0; k < d.dataShards; k++ {
		if d.originals[k] != nil {
			continue
		}
		var pos int
		if layout.FirstIsRecovery {
			pos = layout.N + k
		} else {
			pos = k
		}
		scale := gf16.Modulus - errLocs[pos]
		out := make(Shard, d.shardSize)
		eng.Mul(out, work[pos], scale)
		restored[k] = out
	}
	logger.Debugf("decode: restored %d of %d missing originals", len(restored), d.dataShards-d.originalPresent)
	return restored, nil
}

func (d *Decoder) getWork(n int) []Shard {
	var work []Shard
	if w, ok := d.workPool.Get().([]Shard); ok {
		work = w
	}
	if cap(work) >= n {
		work = work[:n]
	} else {
		work = make([]Shard, n)
	}
	for i := range work {
		if cap(work[i]) < d.shardSize {
			work[i] = make(Shard, d.shardSize)
		} else {
			work[i] = work[i][:d.shardSize]
		}
	}
	return work
}
