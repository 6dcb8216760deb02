package rs16

import "github.com/malaire/reed-solomon-16/rate"

// Encoder is a stateful builder: add exactly DataShards original shards
// in index order, then call Encode to produce the recovery shards.
type Encoder struct {
	dataShards   int
	parityShards int
	shardSize    int
	opt          options
	rate         rate.Rate

	originals []Shard
	filled    int
}

// New creates an Encoder for dataShards original shards, each shardSize
// bytes, producing parityShards recovery shards. shardSize must be a
// positive multiple of 64; (dataShards, parityShards) must fall within
// the field's admissible shape envelope, or New returns
// ErrUnsupportedShape.
func New(dataShards, parityShards, shardSize int, opts ...Option) (*Encoder, error) {
	return newEncoder(dataShards, parityShards, shardSize, nil, opts...)
}

// newEncoder is New with an optional forced rate strategy; forcedRate nil
// means pick automatically via rate.Select. It backs the Advanced
// HighRateEncoder/LowRateEncoder wrappers, which need the shape checked
// against the specific rate they force rather than the one Select would
// have chosen.
func newEncoder(dataShards, parityShards, shardSize int, forcedRate rate.Rate, opts ...Option) (*Encoder, error) {
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
	e := &Encoder{
		dataShards:   dataShards,
		parityShards: parityShards,
		shardSize:    shardSize,
		opt:          o,
		rate:         r,
	}
	e.Reset()
	return e, nil
}

func (e *Encoder) DataShards() int   { return e.dataShards }
func (e *Encoder) ParityShards() int { return e.parityShards }
func (e *Encoder) TotalShards() int  { return e.dataShards + e.parityShards }

// AddOriginalShard appends the next original shard. The i-th call
// supplies original index i; calls after DataShards have already been
// added return ErrTooManyShards.
func (e *Encoder) AddOriginalShard(s Shard) error {
	if e.filled >= e.dataShards {
		return ErrTooManyShards
	}
	if len(s) != e.shardSize {
		return ErrBadShardSize
	}
	e.originals[e.filled] = append(Shard(nil), s...)
	e.filled++
	return nil
}

// EncodeResult holds the recovery shards produced by Encode, in index
// order 0..ParityShards-1.
type EncodeResult struct {
	recovery []Shard
}

// Shards returns every recovery shard in index order.
func (r *EncodeResult) Shards() []Shard { return r.recovery }

// Shard returns the recovery shard at index i.
func (r *EncodeResult) Shard(i int) Shard { return r.recovery[i] }

// Encode runs the configured rate's formula over the added originals,
// returning ErrNotEnoughShards if fewer than DataShards were added.
// Shards added via AddOriginalShard remain valid; Encode does not
// consume them, so calling Encode again after Reset-free reuse returns
// the same result.
func (e *Encoder) Encode() (*EncodeResult, error) {
	if e.filled < e.dataShards {
		return nil, ErrNotEnoughShards
	}

	logger.Debugf("encoding %d originals into %d recovery shards via %s", e.dataShards, e.parityShards, e.rate.Name())

	recovery, err := e.rate.Encode(e.opt.engine, e.originals, e.dataShards, e.parityShards, e.shardSize)
	if err != nil {
		return nil, err
	}
	return &EncodeResult{recovery: recovery}, nil
}

// Reset clears every added original shard so the Encoder can be driven
// through another encode cycle with the same shape and shard size. No
// work buffer is kept between cycles: each Encode allocates its own.
func (e *Encoder) Reset() {
	e.originals = make([]Shard, e.dataShards)
	e.filled = 0
}

// Split partitions data into dataShards equal-length shards, padding the
// final shard with zeros and rounding every shard's length up to a
// multiple of 64 bytes as needed. The resulting shard length is what
// callers should pass as shardSize to New.
func Split(dataShards int, data []byte) ([]Shard, error) {
	if dataShards < 1 {
		return nil, ErrUnsupportedShape
	}
	if len(data) == 0 {
		return nil, ErrShortData
	}

	perShard := (len(data) + dataShards - 1) / dataShards
	if perShard%64 != 0 {
		perShard += 64 - perShard%64
	}

	shards := make([]Shard, dataShards)
	for i := range shards {
		shards[i] = make(Shard, perShard)
	}
	for i, b := range data {
		shards[i/perShard][i%perShard] = b
	}
	return shards, nil
}
