package rs16

import "github.com/pkg/errors"

// Encode is the thin one-shot wrapper around Encoder: it adds every
// shard in originals in order and returns the recovery shards. Prefer
// Encoder directly for streaming or repeated use.
func Encode(dataShards, parityShards int, originals []Shard) ([]Shard, error) {
	if len(originals) != dataShards {
		return nil, errors.Wrap(ErrNotEnoughShards, "rs16: encode")
	}
	shardSize := 0
	if len(originals) > 0 {
		shardSize = len(originals[0])
	}
	enc, err := New(dataShards, parityShards, shardSize)
	if err != nil {
		return nil, errors.Wrap(err, "rs16: encode")
	}
	for _, s := range originals {
		if err := enc.AddOriginalShard(s); err != nil {
			return nil, errors.Wrap(err, "rs16: encode")
		}
	}
	result, err := enc.Encode()
	if err != nil {
		return nil, errors.Wrap(err, "rs16: encode")
	}
	return result.Shards(), nil
}

// Decode is the thin one-shot wrapper around Decoder: providedOriginals
// and providedRecoveries map shard index to contents for whichever
// shards are available.
func Decode(dataShards, parityShards int, providedOriginals, providedRecoveries map[int]Shard) (RestoredOriginals, error) {
	shardSize := 0
	for _, s := range providedOriginals {
		shardSize = len(s)
		break
	}
	if shardSize == 0 {
		for _, s := range providedRecoveries {
			shardSize = len(s)
			break
		}
	}

	dec, err := NewDecoder(dataShards, parityShards, shardSize)
	if err != nil {
		return nil, errors.Wrap(err, "rs16: decode")
	}
	for idx, s := range providedOriginals {
		if err := dec.AddOriginalShard(idx, s); err != nil {
			return nil, errors.Wrap(err, "rs16: decode")
		}
	}
	for idx, s := range providedRecoveries {
		if err := dec.AddRecoveryShard(idx, s); err != nil {
			return nil, errors.Wrap(err, "rs16: decode")
		}
	}
	restored, err := dec.Decode()
	if err != nil {
		return nil, errors.Wrap(err, "rs16: decode")
	}
	return restored, nil
}
