package correct

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-blockfix/parity"
)

var (
	ErrBadMaxBits           = errors.New("correct: max bits must be 1 or 2")
	ErrUnknownStrategy      = errors.New("correct: unknown strategy")
	ErrNoCorrectionFound    = errors.New("correct: no candidate matched the recorded checksum")
	ErrUnverifiedCorrection = errors.New("correct: checksum matched but the verification hash did not")
)

// Outcome classifies a Result.
type Outcome uint8

const (
	OutcomeNotFound Outcome = iota
	OutcomeClean
	OutcomeCorrected
	OutcomeUnverified
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeCorrected:
		return "corrected"
	case OutcomeUnverified:
		return "unverified"
	default:
		return "not-found"
	}
}

// LocationKind says which field of a Location is meaningful.
type LocationKind uint8

const (
	KindStripe LocationKind = iota
	KindBit
)

// Location is one repaired unit: a stripe or a single bit.
type Location struct {
	Kind LocationKind

	// Stripe, Width and Prior are set for KindStripe. Prior is the corrupt
	// value the stripe held before the fix.
	Stripe int
	Width  parity.Width
	Prior  uint64

	// Bit is set for KindBit.
	Bit BitPosition
}

func StripeLocation(w parity.Width, stripe int, prior uint64) Location {
	return Location{Kind: KindStripe, Stripe: stripe, Width: w, Prior: prior}
}

func BitLocation(p BitPosition) Location {
	return Location{Kind: KindBit, Bit: p}
}

func (l Location) String() string {
	if l.Kind == KindStripe {
		return fmt.Sprintf("stripe %d (offset %d, was %#x)", l.Stripe, l.Stripe*int(l.Width), l.Prior)
	}
	return l.Bit.String()
}

// Result is the outcome of one correction attempt.
type Result struct {
	// Clean is set when the block already matched the recorded CRC and no
	// candidate was tried.
	Clean bool
	// Found is set when a candidate matched the recorded CRC. The block holds
	// the candidate.
	Found     bool
	Locations []Location
	// Verified is only meaningful after Verify. Until then a found result
	// classifies as OutcomeUnverified.
	Verified bool
	// Candidates counts the modified blocks tested against the CRC.
	Candidates uint64
}

func (r Result) Outcome() Outcome {
	switch {
	case !r.Found && !r.Clean:
		return OutcomeNotFound
	case !r.Verified:
		return OutcomeUnverified
	case r.Clean:
		return OutcomeClean
	default:
		return OutcomeCorrected
	}
}

// Err maps the outcome onto ErrNoCorrectionFound or ErrUnverifiedCorrection,
// and nil for a clean or corrected block.
func (r Result) Err() error {
	switch r.Outcome() {
	case OutcomeNotFound:
		return ErrNoCorrectionFound
	case OutcomeUnverified:
		return ErrUnverifiedCorrection
	default:
		return nil
	}
}
