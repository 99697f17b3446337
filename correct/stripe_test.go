package correct

import (
	"testing"

	"github.com/forestrie/go-blockfix/blocktesting"
	"github.com/forestrie/go-blockfix/oracle"
	"github.com/forestrie/go-blockfix/parity"
	"github.com/stretchr/testify/require"
)

func TestStripeScenario4096(t *testing.T) {
	tc := blocktesting.NewTestContext(t, blocktesting.TestConfig{
		Seed: 1698342521, TestLabelPrefix: "TestStripeScenario4096",
	})
	block, d, pristine := tc.NewGoodBlock(4096)
	require.Equal(t, 512, parity.Width64.Stripes(len(block)))

	blocktesting.CorruptStripe(parity.Width64, block, 37, 0xFF)

	c := NewStripeCorrector(tc.Oracle, parity.Width64)
	r, err := c.LocateAndFix(block, d.Parity, d.CRC, d.Seed)
	require.NoError(t, err)
	r = Verify(tc.Oracle, block, r, d.VerifyHash, d.HashSeed)

	require.True(t, r.Found)
	require.True(t, r.Verified)
	require.Len(t, r.Locations, 1)
	require.Equal(t, KindStripe, r.Locations[0].Kind)
	require.Equal(t, 37, r.Locations[0].Stripe)
	require.Equal(t, OutcomeCorrected, r.Outcome())
	require.NoError(t, r.Err())
	require.Equal(t, pristine, block)
	require.Equal(t, tc.Oracle.Hash64(pristine, 0), tc.Oracle.Hash64(block, 0))
}

func TestStripeRoundTripEveryIndex(t *testing.T) {
	tests := []struct {
		name       string
		width      parity.Width
		paritySeed uint64
		hashKind   oracle.HashKind
	}{
		{"64 bit, zero seed", parity.Width64, 0, oracle.HashXXH64},
		{"64 bit, seeded", parity.Width64, 0xA5A5A5A5_5A5A5A5A, oracle.HashXXH64},
		{"32 bit, zero seed", parity.Width32, 0, oracle.HashXXH64},
		{"32 bit, seeded", parity.Width32, 0xC0FFEE, oracle.HashXXH64},
		{"64 bit, xxh3", parity.Width64, 0x77, oracle.HashXXH3},
		{"64 bit, blake3", parity.Width64, 0x77, oracle.HashBLAKE3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := blocktesting.NewTestContext(t, blocktesting.TestConfig{
				Seed: 11, TestLabelPrefix: "TestStripeRoundTrip",
				Width: tt.width, ParitySeed: tt.paritySeed, HashSeed: 5, HashKind: tt.hashKind,
			})
			require.Equal(t, tt.hashKind, tc.Oracle.HashKind())
			block, d, pristine := tc.NewGoodBlock(256)
			c := NewStripeCorrector(tc.Oracle, tt.width)

			for i := 0; i < tt.width.Stripes(len(block)); i++ {
				// Replace stripe i with a different value.
				v := tc.Rand().Uint64() & tt.width.Mask()
				if v == tt.width.Word(block, i) {
					v ^= 1
				}
				tt.width.PutWord(block, i, v)

				r, err := c.LocateAndFix(block, d.Parity, d.CRC, d.Seed)
				require.NoError(t, err)
				r = Verify(tc.Oracle, block, r, d.VerifyHash, d.HashSeed)

				require.True(t, r.Found, "stripe %d", i)
				require.True(t, r.Verified, "stripe %d", i)
				require.Equal(t, []Location{StripeLocation(tt.width, i, v)}, r.Locations)
				require.Equal(t, pristine, block)
			}
		})
	}
}

func TestStripeCleanBlock(t *testing.T) {
	tc := blocktesting.NewTestContext(t, blocktesting.TestConfig{Seed: 2, TestLabelPrefix: "TestStripeClean"})
	block, d, pristine := tc.NewGoodBlock(512)

	r, err := NewStripeCorrector(tc.Oracle, parity.Width64).LocateAndFix(block, d.Parity, d.CRC, d.Seed)
	require.NoError(t, err)
	require.True(t, r.Clean)
	require.False(t, r.Found)
	require.Zero(t, r.Candidates)
	require.Empty(t, r.Locations)

	r = Verify(tc.Oracle, block, r, d.VerifyHash, d.HashSeed)
	require.Equal(t, OutcomeClean, r.Outcome())
	require.Equal(t, pristine, block)
}

func TestStripeMultiStripeNotFound(t *testing.T) {
	tc := blocktesting.NewTestContext(t, blocktesting.TestConfig{Seed: 3, TestLabelPrefix: "TestStripeMulti"})
	block, d, _ := tc.NewGoodBlock(512)

	blocktesting.CorruptStripe(parity.Width64, block, 2, 0x10)
	blocktesting.CorruptStripe(parity.Width64, block, 9, 0x01)
	corrupt := clone(block)

	r, err := NewStripeCorrector(tc.Oracle, parity.Width64).LocateAndFix(block, d.Parity, d.CRC, d.Seed)
	require.NoError(t, err)
	require.False(t, r.Found)
	require.Equal(t, OutcomeNotFound, r.Outcome())
	require.ErrorIs(t, r.Err(), ErrNoCorrectionFound)
	require.Equal(t, uint64(64), r.Candidates)
	require.Equal(t, corrupt, block, "the block is restored after an unsuccessful search")
}

func TestStripeParityBlindCorruption(t *testing.T) {
	tc := blocktesting.NewTestContext(t, blocktesting.TestConfig{Seed: 4, TestLabelPrefix: "TestStripeBlind"})
	block, d, _ := tc.NewGoodBlock(128)

	// The same bit in two words leaves the parity unchanged, so every
	// reconstruction equals the current stripe and nothing is tested.
	blocktesting.CorruptStripe(parity.Width64, block, 1, 0x80)
	blocktesting.CorruptStripe(parity.Width64, block, 6, 0x80)

	r, err := NewStripeCorrector(tc.Oracle, parity.Width64).LocateAndFix(block, d.Parity, d.CRC, d.Seed)
	require.NoError(t, err)
	require.False(t, r.Found)
	require.Zero(t, r.Candidates)
}

func TestStripeRejectsBadInputs(t *testing.T) {
	tc := blocktesting.NewTestContext(t, blocktesting.TestConfig{Seed: 5, TestLabelPrefix: "TestStripeBad"})

	_, err := NewStripeCorrector(tc.Oracle, parity.Width64).LocateAndFix(make([]byte, 20), 0, 0, 0)
	require.ErrorIs(t, err, parity.ErrMisalignedBlock)

	_, err = NewStripeCorrector(tc.Oracle, parity.Width32).LocateAndFix(make([]byte, 20), 1<<32, 0, 0)
	require.ErrorIs(t, err, parity.ErrSeedWidth)

	_, err = NewStripeCorrector(tc.Oracle, parity.Width(2)).LocateAndFix(make([]byte, 20), 0, 0, 0)
	require.ErrorIs(t, err, parity.ErrBadWidth)
}

func BenchmarkStripeCorrector(b *testing.B) {
	tc := blocktesting.NewTestContext(b, blocktesting.TestConfig{Seed: 1, TestLabelPrefix: "BenchmarkStripe"})
	block, d, _ := tc.NewGoodBlock(4096)
	c := NewStripeCorrector(tc.Oracle, parity.Width64)
	b.SetBytes(int64(len(block)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Worst case: the last stripe.
		blocktesting.CorruptStripe(parity.Width64, block, 511, 0xFF)
		r, err := c.LocateAndFix(block, d.Parity, d.CRC, d.Seed)
		if err != nil || !r.Found {
			b.Fatalf("not corrected: %v", err)
		}
	}
}
