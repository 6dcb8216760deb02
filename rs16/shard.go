package rs16

import "github.com/malaire/reed-solomon-16/gf16"

// Shard is one original or recovery block. Its length must be a positive
// multiple of 64 bytes, and all shards in a single Encoder/Decoder
// instance must share the same length.
type Shard = gf16.Shard

// RestoredOriginals maps the index of an original shard that was not
// supplied to Decode to its restored contents. It contains exactly the
// original indices that were missing from the input.
type RestoredOriginals map[int]Shard

// shapeAdmissible reports whether (k,m) falls within the field's
// admissible envelope: for some n in [0,16], k <= 2^16-2^n and m <= 2^n,
// or symmetrically k <= 2^n and m <= 2^16-2^n.
func shapeAdmissible(k, m int) bool {
	const order = 1 << 16
	for n := 0; n <= 16; n++ {
		pow := 1 << n
		if k <= order-pow && m <= pow {
			return true
		}
		if k <= pow && m <= order-pow {
			return true
		}
	}
	return false
}

func validateShape(dataShards, parityShards int) error {
	if dataShards < 1 || parityShards < 1 {
		return ErrUnsupportedShape
	}
	if !shapeAdmissible(dataShards, parityShards) {
		return ErrUnsupportedShape
	}
	return nil
}

func validateShardSize(size int) error {
	if size <= 0 || size%64 != 0 {
		return ErrBadShardSize
	}
	return nil
}
