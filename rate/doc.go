// Package rate implements the two Leopard-RS chunking strategies: HighRate,
// used when recovery count does not exceed original count, and LowRate,
// used otherwise. Both expose the same shape - chunk size, encode, and the
// logical slot layout the decoder needs - so the encoder and decoder cores
// are written once and driven by whichever Rate the facade selects.
package rate
