package correct

import (
	"context"

	"github.com/forestrie/go-blockfix/oracle"
)

// BitFlipCorrector repairs one or two flipped bits anywhere in a block using
// only the block CRC. The block needs no alignment.
type BitFlipCorrector struct {
	oracle oracle.Oracle
}

func NewBitFlipCorrector(o oracle.Oracle) *BitFlipCorrector {
	return &BitFlipCorrector{oracle: o}
}

// LocateAndFix flips candidate bits until the block CRC equals expectedCRC.
//
// maxBits is 1 or 2. Single bits are tried first in ascending (byte, bit)
// order, then, for maxBits 2, all pairs (i, j) with i < j in lexicographic
// order of their linear bit indices. The first match wins, so the reported
// locations are deterministic for a given block.
//
// ctx is polled once per outer loop iteration, where the block is always in its
// input state. On cancellation the block is unchanged and ctx.Err() is
// returned.
func (c *BitFlipCorrector) LocateAndFix(
	ctx context.Context, block []byte, expectedCRC uint32, maxBits int,
) (Result, error) {
	if maxBits != 1 && maxBits != 2 {
		return Result{}, ErrBadMaxBits
	}
	if c.oracle.CRC32(0, block) == expectedCRC {
		return Result{Clean: true}, nil
	}

	var r Result
	nbits := len(block) * 8

	for i := 0; i < nbits; i++ {
		if i&7 == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}
		flipBitLSB0(block, i)
		r.Candidates++
		if c.oracle.CRC32(0, block) == expectedCRC {
			r.Found = true
			r.Locations = []Location{BitLocation(BitPositionAt(i))}
			return r, nil
		}
		flipBitLSB0(block, i)
	}

	if maxBits == 1 {
		return r, nil
	}

	for i := 0; i < nbits-1; i++ {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		flipBitLSB0(block, i)
		for j := i + 1; j < nbits; j++ {
			flipBitLSB0(block, j)
			r.Candidates++
			if c.oracle.CRC32(0, block) == expectedCRC {
				r.Found = true
				r.Locations = []Location{
					BitLocation(BitPositionAt(i)),
					BitLocation(BitPositionAt(j)),
				}
				return r, nil
			}
			flipBitLSB0(block, j)
		}
		flipBitLSB0(block, i)
	}
	return r, nil
}
