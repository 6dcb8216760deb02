package gf16

import (
	"math/bits"
	"sync"

	logging "github.com/dep2p/log"
)

// GfElement is a single element of GF(2^16).
type GfElement = uint16

const (
	// Bits is the field's extension degree.
	Bits = 16
	// Order is the number of elements in the field, 2^16.
	Order = 1 << Bits
	// Modulus is Order-1; logs live in [0, Modulus) and Modulus itself is
	// reserved to mean "log of zero" in a few lookup tables.
	Modulus = Order - 1
	// polynomial is the GF(2^16) reduction polynomial used to build the
	// exp table via an LFSR, before the Cantor-basis change of basis.
	polynomial = 0x1002D
)

// cantorBasis is the change-of-basis vector that turns the LFSR-generated
// table into logs expressed over Cantor's basis, which is what makes the
// additive FFT's butterfly coefficients (fftSkew below) cheap to derive.
var cantorBasis = [Bits]GfElement{
	0x0001, 0xACCA, 0x3C0E, 0x163E,
	0xC582, 0xED2E, 0x914C, 0x4012,
	0x6C98, 0x10D8, 0x6A72, 0xB900,
	0xFDB8, 0xFB34, 0xFF38, 0x991E,
}

var (
	logTable *[Order]GfElement
	expTable *[Order]GfElement

	// skewTable holds the FFT butterfly coefficients ("skew factors"),
	// precomputed from the field generator and indexed by chunk position.
	skewTable *[Modulus]GfElement

	// walshLog holds FWHT(log(i)) for every field point, used to turn the
	// error-locator's 0/1 erasure pattern into a log-domain polynomial.
	walshLog *[Order]GfElement

	// mulTables holds, for every possible multiplier (expressed as a log),
	// the two 256-entry nibble tables that let Mul/MulAdd operate on whole
	// shards 64 bytes (32 field elements) at a time instead of one
	// multiplication per element.
	mulTables *[Order]mulLUT
)

type mulLUT struct {
	Lo [256]GfElement
	Hi [256]GfElement
}

var logger = logging.Logger("gf16")

func init() {
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: true,
		Level:  logging.LevelInfo,
	})
}

var tablesOnce sync.Once

// initTables lazily builds every global table exactly once, the first time any
// engine operation is invoked. Thereafter the tables are immutable and safe
// to read from any number of goroutines without synchronization.
func initTables() {
	tablesOnce.Do(func() {
		buildLogExpTables()
		buildSkewAndWalshTables()
		buildMulTables()
		logger.Debug("gf16: global tables initialized")
	})
}

func buildLogExpTables() {
	expTable = &[Order]GfElement{}
	logTable = &[Order]GfElement{}

	// Build the raw LFSR-generated exponent table.
	state := 1
	for i := GfElement(0); i < Modulus; i++ {
		expTable[state] = i
		state <<= 1
		if state >= Order {
			state ^= polynomial
		}
	}
	expTable[0] = Modulus

	// Re-express logs over the Cantor basis.
	logTable[0] = 0
	for i := 0; i < Bits; i++ {
		basis := cantorBasis[i]
		width := 1 << i
		for j := 0; j < width; j++ {
			logTable[j+width] = logTable[j] ^ basis
		}
	}
	for i := 0; i < Order; i++ {
		logTable[i] = expTable[logTable[i]]
	}
	for i := 0; i < Order; i++ {
		expTable[logTable[i]] = GfElement(i)
	}
	expTable[Modulus] = expTable[0]
}

// mulLog returns a * exp(logB) where a is a plain field element and logB is
// already a logarithm - used only while building tables, where multiplying
// in log form up front saves repeated table lookups later.
func mulLog(a, logB GfElement) GfElement {
	if a == 0 {
		return 0
	}
	return expTable[addMod(logTable[a], logB)]
}

// addMod computes (a+b) mod Modulus using the partial-reduction trick: since
// a,b < Modulus < 2^16, a+b < 2^17, so one conditional add of the overflow
// bit is enough to land back in range (the result may equal Modulus, which
// every caller here treats as a valid "log of zero" sentinel).
func addMod(a, b GfElement) GfElement {
	sum := uint32(a) + uint32(b)
	return GfElement(sum + sum>>Bits)
}

// subMod is addMod's inverse, same partial-reduction trick on the borrow bit.
func subMod(a, b GfElement) GfElement {
	dif := uint32(a) - uint32(b)
	return GfElement(dif + dif>>Bits)
}

func buildSkewAndWalshTables() {
	var temp [Bits - 1]GfElement
	for i := 1; i < Bits; i++ {
		temp[i-1] = GfElement(1 << i)
	}

	skewTable = &[Modulus]GfElement{}
	walshLog = &[Order]GfElement{}

	for m := 0; m < Bits-1; m++ {
		step := 1 << (m + 1)
		skewTable[1<<m-1] = 0

		for i := m; i < Bits-1; i++ {
			s := 1 << (i + 1)
			for j := 1<<m - 1; j < s; j += step {
				skewTable[j+s] = skewTable[j] ^ temp[i]
			}
		}

		temp[m] = Modulus - logTable[mulLog(temp[m], logTable[temp[m]^1])]

		for i := m + 1; i < Bits-1; i++ {
			sum := addMod(logTable[temp[i]^1], temp[m])
			temp[i] = mulLog(temp[i], sum)
		}
	}

	for i := 0; i < Modulus; i++ {
		skewTable[i] = logTable[skewTable[i]]
	}

	for i := 0; i < Order; i++ {
		walshLog[i] = logTable[i]
	}
	walshLog[0] = 0
	FWHT(walshLog, Order)
}

// CeilPow2 returns the smallest power of two that is >= n. n must be >= 1.
func CeilPow2(n int) int {
	const w = bits.UintSize
	return 1 << (w - bits.LeadingZeros(uint(n-1)))
}

// SkewTable returns the global FFT skew-factor table, initializing it on
// first use. Callers index into it directly the way the rate strategies
// need to (each rate picks its own starting offset into the table).
func SkewTable() *[Modulus]GfElement {
	initTables()
	return skewTable
}

// WalshLog returns the precomputed FWHT(log) table used to turn an
// error-locator bit pattern into a log-domain polynomial.
func WalshLog() *[Order]GfElement {
	initTables()
	return walshLog
}

// SetLog reconfigures where gf16's (rare) debug output goes, mirroring the
// reedsolomon package's SetLog.
func SetLog(filename string, stderr ...bool) {
	useStderr := false
	if len(stderr) > 0 {
		useStderr = stderr[0]
	}
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: useStderr,
		File:   filename,
		Level:  logging.LevelInfo,
	})
}
