package rs16

import "github.com/malaire/reed-solomon-16/rate"

// HighRateEncoder is Encoder with the chunking strategy pinned to
// HighRate instead of chosen automatically by parity-to-data ratio. Use
// it when a caller already knows parityShards <= dataShards and wants
// ErrUnsupportedShape for shapes that would otherwise silently fall
// through to LowRate.
type HighRateEncoder struct{ *Encoder }

// NewHighRateEncoder is New, with the rate forced to HighRate.
// parityShards must not exceed dataShards.
func NewHighRateEncoder(dataShards, parityShards, shardSize int, opts ...Option) (*HighRateEncoder, error) {
	if parityShards > dataShards {
		return nil, ErrUnsupportedShape
	}
	e, err := newEncoder(dataShards, parityShards, shardSize, rate.HighRate{}, opts...)
	if err != nil {
		return nil, err
	}
	return &HighRateEncoder{e}, nil
}

// LowRateEncoder is Encoder with the chunking strategy pinned to
// LowRate instead of chosen automatically.
type LowRateEncoder struct{ *Encoder }

// NewLowRateEncoder is New, with the rate forced to LowRate.
// parityShards must exceed dataShards.
func NewLowRateEncoder(dataShards, parityShards, shardSize int, opts ...Option) (*LowRateEncoder, error) {
	if parityShards <= dataShards {
		return nil, ErrUnsupportedShape
	}
	e, err := newEncoder(dataShards, parityShards, shardSize, rate.LowRate{}, opts...)
	if err != nil {
		return nil, err
	}
	return &LowRateEncoder{e}, nil
}

// HighRateDecoder is Decoder with the chunking strategy pinned to
// HighRate. It must be paired with shards produced by a HighRateEncoder
// (or the automatic Encoder when it happened to choose HighRate).
type HighRateDecoder struct{ *Decoder }

// NewHighRateDecoder is NewDecoder, with the rate forced to HighRate.
func NewHighRateDecoder(dataShards, parityShards, shardSize int, opts ...Option) (*HighRateDecoder, error) {
	if parityShards > dataShards {
		return nil, ErrUnsupportedShape
	}
	d, err := newDecoder(dataShards, parityShards, shardSize, rate.HighRate{}, opts...)
	if err != nil {
		return nil, err
	}
	return &HighRateDecoder{d}, nil
}

// LowRateDecoder is Decoder with the chunking strategy pinned to
// LowRate. It must be paired with shards produced by a LowRateEncoder
// (or the automatic Encoder when it happened to choose LowRate).
type LowRateDecoder struct{ *Decoder }

// NewLowRateDecoder is NewDecoder, with the rate forced to LowRate.
func NewLowRateDecoder(dataShards, parityShards, shardSize int, opts ...Option) (*LowRateDecoder, error) {
	if parityShards <= dataShards {
		return nil, ErrUnsupportedShape
	}
	d, err := newDecoder(dataShards, parityShards, shardSize, rate.LowRate{}, opts...)
	if err != nil {
		return nil, err
	}
	return &LowRateDecoder{d}, nil
}
