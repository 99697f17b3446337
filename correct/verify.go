package correct

import "github.com/forestrie/go-blockfix/oracle"

// Verify confirms a clean or found result against the verification hash of the
// block. Not found results are returned as is.
func Verify(o oracle.Oracle, block []byte, r Result, expectedHash, hashSeed uint64) Result {
	if !r.Found && !r.Clean {
		return r
	}
	r.Verified = o.Hash64(block, hashSeed) == expectedHash
	return r
}

// Revert undoes the fix recorded in r, returning block to the state it was in
// when the corrector was called. It is a no-op for results without locations.
func Revert(block []byte, r Result) {
	for k := len(r.Locations) - 1; k >= 0; k-- {
		l := r.Locations[k]
		switch l.Kind {
		case KindStripe:
			l.Width.PutWord(block, l.Stripe, l.Prior)
		case KindBit:
			flipBitLSB0(block, l.Bit.Index())
		}
	}
}
