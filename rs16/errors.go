package rs16

import "errors"

// ErrUnsupportedShape is returned when (dataShards, parityShards) falls
// outside the admissible envelope from the shape-limit table, or a
// rate-specific bound is violated.
var ErrUnsupportedShape = errors.New("rs16: shard counts outside the admissible (K,M) envelope")

// ErrBadShardSize is returned when a shard's length is zero, not a
// multiple of 64, or does not match the instance's configured size.
var ErrBadShardSize = errors.New("rs16: shard size must be a positive multiple of 64 bytes matching the configured size")

// ErrTooManyShards is returned by AddOriginalShard once dataShards
// shards have already been added.
var ErrTooManyShards = errors.New("rs16: all original shards already supplied")

// ErrNotEnoughShards is returned by Encode without dataShards originals
// added, or by Decode with fewer than dataShards shards total supplied.
var ErrNotEnoughShards = errors.New("rs16: not enough shards to proceed")

// ErrInvalidIndex is returned when a shard index falls outside
// [0, dataShards) for originals or [0, parityShards) for recoveries.
var ErrInvalidIndex = errors.New("rs16: shard index out of range")

// ErrDuplicateShard is returned when the same index is supplied more
// than once within a kind (original or recovery) to a decoder.
var ErrDuplicateShard = errors.New("rs16: duplicate shard index")

// ErrShortData is returned by Split when the input is empty. Non-empty
// input shorter than the shard count is accepted and zero-padded.
var ErrShortData = errors.New("rs16: not enough data to fill the requested number of shards")
