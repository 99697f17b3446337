// Package digest captures the integrity digests of a block at a known-good
// point in time.
package digest

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-blockfix/oracle"
	"github.com/forestrie/go-blockfix/parity"
)

var (
	ErrBadRecord     = errors.New("digest: record is not a valid digest set")
	ErrWidthMismatch = errors.New("digest: parity or seed does not fit the word width")
)

// Set is the digest set for one block. It is immutable once captured; the
// caller owns its provenance.
type Set struct {
	Width parity.Width `cbor:"1,keyasint"`
	// Seed tweaks the parity. For Width32 it fits in 32 bits.
	Seed   uint64 `cbor:"2,keyasint"`
	Parity uint64 `cbor:"3,keyasint"`
	// CRC is the CRC32C of the whole block, started from seed 0.
	CRC        uint32 `cbor:"4,keyasint"`
	HashSeed   uint64 `cbor:"5,keyasint"`
	VerifyHash uint64 `cbor:"6,keyasint"`
}

// Capture computes the digest set of a known-good block.
func Capture(o oracle.Oracle, w parity.Width, block []byte, seed, hashSeed uint64) (Set, error) {
	p, err := parity.Compute(w, block, seed)
	if err != nil {
		return Set{}, fmt.Errorf("capture parity: %w", err)
	}
	return Set{
		Width:      w,
		Seed:       seed,
		Parity:     p,
		CRC:        o.CRC32(0, block),
		HashSeed:   hashSeed,
		VerifyHash: o.Hash64(block, hashSeed),
	}, nil
}

// Check validates the width and the word sized fields.
func (s Set) Check() error {
	if err := s.Width.Check(); err != nil {
		return err
	}
	m := s.Width.Mask()
	if s.Seed&^m != 0 || s.Parity&^m != 0 {
		return ErrWidthMismatch
	}
	return nil
}
