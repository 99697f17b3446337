package parity

import (
	"errors"
	"math"
)

// Width is the parity word width in bytes.
type Width uint8

const (
	Width32 Width = 4
	Width64 Width = 8

	// Lanes is the number of independent accumulators.
	Lanes = 4
)

var (
	ErrMisalignedBlock = errors.New("parity: block length is not a multiple of the word width")
	ErrBadWidth        = errors.New("parity: word width must be 4 or 8 bytes")
	ErrSeedWidth       = errors.New("parity: seed does not fit the word width")
)

// Check returns ErrBadWidth for anything other than Width32 or Width64.
func (w Width) Check() error {
	if w != Width32 && w != Width64 {
		return ErrBadWidth
	}
	return nil
}

// Bits returns the word width in bits.
func (w Width) Bits() int { return int(w) * 8 }

// Mask returns the mask of the low Bits() bits of a uint64.
func (w Width) Mask() uint64 {
	if w == Width32 {
		return math.MaxUint32
	}
	return math.MaxUint64
}

// CheckAligned returns ErrMisalignedBlock if the block can not be split into
// whole words.
func (w Width) CheckAligned(block []byte) error {
	if err := w.Check(); err != nil {
		return err
	}
	if len(block)%int(w) != 0 {
		return ErrMisalignedBlock
	}
	return nil
}

// Stripes returns the number of words in an aligned block of n bytes.
func (w Width) Stripes(n int) int {
	return n / int(w)
}
