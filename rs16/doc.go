// Package rs16 implements a systematic Leopard-RS erasure code over
// GF(2^16): given K original shards, it produces M recovery shards such
// that any K of the K+M total shards are enough to recover the rest, in
// O(n log n) time via additive FFTs rather than a Vandermonde/Cauchy
// matrix. See the gf16 and rate packages for the field engine and chunking
// strategies this package drives.
package rs16
