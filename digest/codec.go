package digest

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Codec encodes digest sets as deterministic CBOR maps with integer keys. How
// the encoded record is stored next to its block is up to the caller.
type Codec struct {
	em cbor.EncMode
	dm cbor.DecMode
}

func NewCodec() (Codec, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dm, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{em: em, dm: dm}, nil
}

func (c Codec) Encode(s Set) ([]byte, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	return c.em.Marshal(s)
}

func (c Codec) Decode(data []byte) (Set, error) {
	var s Set
	if err := c.dm.Unmarshal(data, &s); err != nil {
		return Set{}, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if err := s.Check(); err != nil {
		return Set{}, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	return s, nil
}
