// Package blocktesting provides deterministic blocks and corruption injection
// for tests of the correctors.
package blocktesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-blockfix/digest"
	"github.com/forestrie/go-blockfix/oracle"
	"github.com/forestrie/go-blockfix/parity"
	"github.com/stretchr/testify/require"
)

type TestConfig struct {
	// We seed the RNG from Seed. It is normal to force it to some fixed value
	// so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	Width           parity.Width // defaults to Width64
	ParitySeed      uint64
	HashSeed        uint64
	HashKind        oracle.HashKind
}

type TestContext struct {
	Log    logger.Logger
	Oracle *oracle.Checksums
	Cfg    TestConfig
	T      testing.TB

	rng *rand.Rand
}

func NewTestContext(t testing.TB, cfg TestConfig) TestContext {
	t.Helper()
	if cfg.Width == 0 {
		cfg.Width = parity.Width64
	}

	logger.New("NOOP")
	t.Cleanup(logger.OnExit)

	o, err := oracle.New(oracle.WithHashKind(cfg.HashKind))
	require.NoError(t, err)

	return TestContext{
		Log:    logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Oracle: o,
		Cfg:    cfg,
		T:      t,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Rand returns the context RNG. Draws are deterministic for a given Seed.
func (c *TestContext) Rand() *rand.Rand { return c.rng }

// NewBlock returns a block of n pseudo random bytes.
func (c *TestContext) NewBlock(n int) []byte {
	b := make([]byte, n)
	_, err := c.rng.Read(b)
	require.NoError(c.T, err)
	return b
}

// Capture records the digest set of a known-good block using the context
// width and seeds.
func (c *TestContext) Capture(block []byte) digest.Set {
	d, err := digest.Capture(c.Oracle, c.Cfg.Width, block, c.Cfg.ParitySeed, c.Cfg.HashSeed)
	require.NoError(c.T, err)
	return d
}

// NewGoodBlock returns a fresh block together with its digests and a pristine
// copy for comparison after repair.
func (c *TestContext) NewGoodBlock(n int) (block []byte, d digest.Set, pristine []byte) {
	block = c.NewBlock(n)
	return block, c.Capture(block), append([]byte(nil), block...)
}

// CorruptRandomBit flips one pseudo randomly chosen bit and returns its linear
// bit index.
func (c *TestContext) CorruptRandomBit(block []byte) int {
	j := c.rng.Intn(len(block) * 8)
	FlipBit(block, j)
	return j
}

// CorruptRandomBits flips two distinct pseudo random bits and returns their
// linear indices in ascending order.
func (c *TestContext) CorruptRandomBits(block []byte) (int, int) {
	n := len(block) * 8
	i := c.rng.Intn(n)
	j := c.rng.Intn(n - 1)
	if j >= i {
		j++
	}
	FlipBit(block, i)
	FlipBit(block, j)
	if i > j {
		i, j = j, i
	}
	return i, j
}
