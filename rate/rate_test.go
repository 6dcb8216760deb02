package rate

import (
	"math/rand"
	"testing"

	"github.com/malaire/reed-solomon-16/gf16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPicksHighRateWhenParityDoesNotExceedData(t *testing.T) {
	assert.Equal(t, "high-rate", Select(10, 10).Name())
	assert.Equal(t, "high-rate", Select(10, 3).Name())
	assert.Equal(t, "low-rate", Select(3, 10).Name())
}

func TestHighRateLayout(t *testing.T) {
	l := HighRate{}.Layout(10, 3)
	assert.Equal(t, 4, l.N) // ceilPow2(3)
	assert.Equal(t, 3, l.FirstCount)
	assert.True(t, l.FirstIsRecovery)
	assert.Equal(t, 10, l.SecondCount)
}

func TestLowRateLayout(t *testing.T) {
	l := LowRate{}.Layout(10, 30)
	assert.Equal(t, 16, l.N) // ceilPow2(10)
	assert.Equal(t, 10, l.FirstCount)
	assert.False(t, l.FirstIsRecovery)
	assert.Equal(t, 30, l.SecondCount)
}

func randomShards(t *testing.T, r *rand.Rand, n, size int) []Shard {
	t.Helper()
	out := make([]Shard, n)
	for i := range out {
		out[i] = make(Shard, size)
		_, err := r.Read(out[i])
		require.NoError(t, err)
	}
	return out
}

func TestHighRateEncodeShape(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const k, m, size = 10, 4, 64
	originals := randomShards(t, r, k, size)
	recovery, err := HighRate{}.Encode(gf16.ScalarEngine{}, originals, k, m, size)
	require.NoError(t, err)
	require.Len(t, recovery, m)
	for _, s := range recovery {
		assert.Len(t, s, size)
	}
}

func TestLowRateEncodeShape(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	const k, m, size = 3, 20, 64
	originals := randomShards(t, r, k, size)
	recovery, err := LowRate{}.Encode(gf16.ScalarEngine{}, originals, k, m, size)
	require.NoError(t, err)
	require.Len(t, recovery, m)
	for _, s := range recovery {
		assert.Len(t, s, size)
	}
}

func TestHighRateEncodeIsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	const k, m, size = 5, 5, 64
	originals := randomShards(t, r, k, size)
	a, err := HighRate{}.Encode(gf16.ScalarEngine{}, originals, k, m, size)
	require.NoError(t, err)
	b, err := HighRate{}.Encode(gf16.ScalarEngine{}, originals, k, m, size)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
