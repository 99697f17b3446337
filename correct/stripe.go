package correct

import (
	"github.com/forestrie/go-blockfix/oracle"
	"github.com/forestrie/go-blockfix/parity"
)

// StripeCorrector repairs a block in which exactly one parity word differs
// from the original.
type StripeCorrector struct {
	oracle oracle.Oracle
	width  parity.Width
}

func NewStripeCorrector(o oracle.Oracle, w parity.Width) *StripeCorrector {
	return &StripeCorrector{oracle: o, width: w}
}

// LocateAndFix searches for the single corrupt stripe of block.
//
// expectedParity must have been computed over the original block with seed.
// On a CRC match the block is left holding the reconstructed stripe and the
// result is Found with one KindStripe location. Otherwise the block is returned
// unchanged. The result is not verified; see Verify.
func (c *StripeCorrector) LocateAndFix(
	block []byte, expectedParity uint64, expectedCRC uint32, seed uint64,
) (Result, error) {
	w := c.width
	if err := w.CheckAligned(block); err != nil {
		return Result{}, err
	}
	if (expectedParity|seed)&^w.Mask() != 0 {
		return Result{}, parity.ErrSeedWidth
	}

	if c.oracle.CRC32(0, block) == expectedCRC {
		return Result{Clean: true}, nil
	}

	var r Result
	n := w.Stripes(len(block))
	for i := 0; i < n; i++ {
		saved := w.Word(block, i)

		// With the expected parity in place of stripe i, the block parity is
		// the value stripe i must hold for the block to match expectedParity.
		w.PutWord(block, i, expectedParity)
		candidate, err := parity.Compute(w, block, seed)
		if err != nil {
			w.PutWord(block, i, saved)
			return Result{}, err
		}

		// Same value: the block is unchanged and its CRC is known to mismatch.
		if candidate == saved {
			w.PutWord(block, i, saved)
			continue
		}

		w.PutWord(block, i, candidate)
		r.Candidates++
		if c.oracle.CRC32(0, block) == expectedCRC {
			r.Found = true
			r.Locations = []Location{StripeLocation(w, i, saved)}
			return r, nil
		}
		w.PutWord(block, i, saved)
	}
	return r, nil
}
