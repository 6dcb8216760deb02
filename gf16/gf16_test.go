package gf16

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomShard(t *testing.T, r *rand.Rand, n int) Shard {
	t.Helper()
	s := make(Shard, n)
	_, err := r.Read(s)
	require.NoError(t, err)
	return s
}

func TestAddIsXor(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	a := randomShard(t, r, 64)
	b := randomShard(t, r, 64)
	want := make(Shard, 64)
	for i := range want {
		want[i] = a[i] ^ b[i]
	}
	Add(a, b)
	assert.Equal(t, want, a)
}

func TestMulByLogZeroIsIdentity(t *testing.T) {
	// logM == 0 selects exp(0) == 1, the multiplicative identity - not
	// the zero element, which has no logarithm and is never passed here.
	r := rand.New(rand.NewSource(2))
	src := randomShard(t, r, 64)
	dst := make(Shard, 64)
	Mul(dst, src, 0)
	assert.Equal(t, src, dst)
}

func TestLogExpRoundTrip(t *testing.T) {
	initTables()
	for a := 1; a < Order; a++ {
		got := expTable[logTable[a]]
		assert.Equalf(t, GfElement(a), got, "exp(log(%d)) != %d", a, a)
	}
}

func TestMulLogAdditivity(t *testing.T) {
	initTables()
	for _, a := range []GfElement{1, 2, 3, 255, 256, 65534} {
		for _, b := range []GfElement{1, 7, 300, 65534} {
			logA := logTable[a]
			logB := logTable[b]
			want := expTable[addMod(logA, logB)]
			got := mulLog(a, logB)
			assert.Equal(t, want, got)
		}
	}
}

// TestFFTInverseOfIFFT checks the identity spec §8 asks for: FFT and IFFT,
// called with the same (unshifted) skew table - the convention the decoder
// uses for both its IFFTDecode and FFT calls - are exact inverses. The
// encoder's IFFTEncode intentionally uses a *different* (shifted) skew
// offset than its closing FFT call: that mismatch is what turns the
// transform pair into "evaluate the data's interpolating polynomial at a
// different set of points" instead of identity, i.e. it's how parity gets
// produced at all, so it is deliberately not exercised by this test.
func TestFFTInverseOfIFFT(t *testing.T) {
	initTables()
	const n = 16
	r := rand.New(rand.NewSource(3))

	work := make([]Shard, n)
	for i := range work {
		work[i] = randomShard(t, r, 64)
	}
	original := make([]Shard, n)
	for i, s := range work {
		original[i] = append(Shard(nil), s...)
	}

	skew := skewTable[:]
	IFFTDecode(n, work, n, skew)
	FFT(work, n, n, skew)

	for i := range original {
		assert.Equal(t, original[i], work[i], "index %d", i)
	}
}

func TestFormalDerivativeLeavesLengthUnchanged(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	const n = 8
	work := make([]Shard, n)
	for i := range work {
		work[i] = randomShard(t, r, 64)
	}
	before := make([]Shard, n)
	for i, s := range work {
		before[i] = append(Shard(nil), s...)
	}
	FormalDerivative(work, n)
	for i := range work {
		assert.Len(t, work[i], 64)
	}
}

// TestFWHTSelfInverse checks the sanity property the decoder relies on when
// it applies FWHT, multiplies pointwise by walshLog, and applies FWHT again:
// applying FWHT twice to the same data returns the original values, since every butterfly level
// adds and subtracts mod Modulus and Order (65536) == 1 mod Modulus, so the
// doubling factor a full Walsh-Hadamard transform normally introduces
// collapses to the identity here. Inputs are drawn from [1, Modulus) rather
// than [0, Order): 0 and Modulus are the same residue mod Modulus but
// distinct uint16 values, and the transform normalizes between them, so
// either endpoint would round-trip to the other representation rather than
// back to itself - not a real failure of the property, just a reminder that
// "log of zero" has two spellings in this table family.
func TestFWHTSelfInverse(t *testing.T) {
	initTables()
	r := rand.New(rand.NewSource(5))

	var data, want [Order]GfElement
	for i := range data {
		data[i] = GfElement(1 + r.Intn(Modulus-1))
	}
	want = data

	FWHT(&data, Order)
	FWHT(&data, Order)

	for i := range data {
		assert.Equalf(t, want[i], data[i], "index %d", i)
	}
}

func TestCeilPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1023: 1024, 1024: 1024, 1025: 2048, 65535: 65536, 32768: 32768}
	for in, want := range cases {
		assert.Equal(t, want, CeilPow2(in), "CeilPow2(%d)", in)
	}
}
