package correct

import (
	"context"
	"errors"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-blockfix/digest"
	"github.com/forestrie/go-blockfix/oracle"
	"github.com/forestrie/go-blockfix/parity"
)

// Strategy names a corrector.
type Strategy uint8

const (
	StrategyStripe Strategy = iota
	StrategyBitFlip
)

func (s Strategy) String() string {
	switch s {
	case StrategyStripe:
		return "stripe"
	case StrategyBitFlip:
		return "bitflip"
	default:
		return "unknown"
	}
}

type RepairerConfig struct {
	// Strategies are tried in order until one matches the CRC.
	Strategies []Strategy
	// MaxBits is passed to the bit flip corrector (1 or 2).
	MaxBits int
	// MaxDoubleBitBytes caps the block size for the pair search. Larger blocks
	// only get the single bit pass. Zero means no cap.
	MaxDoubleBitBytes int
	// RevertUnverified puts the block back in its input state when a CRC match
	// fails verification.
	RevertUnverified bool
}

func DefaultRepairerConfig() RepairerConfig {
	return RepairerConfig{
		Strategies:        []Strategy{StrategyStripe, StrategyBitFlip},
		MaxBits:           2,
		MaxDoubleBitBytes: 512,
		RevertUnverified:  true,
	}
}

// Repairer runs the correctors against a block and its digest set and verifies
// any fix before reporting it.
type Repairer struct {
	Cfg    RepairerConfig
	Log    logger.Logger
	Oracle oracle.Oracle
}

// NewRepairer returns a Repairer. Empty Strategies and a zero MaxBits take the
// DefaultRepairerConfig values; the other fields are used as given.
func NewRepairer(cfg RepairerConfig, log logger.Logger, o oracle.Oracle) *Repairer {
	def := DefaultRepairerConfig()
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = def.Strategies
	}
	if cfg.MaxBits == 0 {
		cfg.MaxBits = def.MaxBits
	}
	return &Repairer{
		Cfg:    cfg,
		Log:    log,
		Oracle: o,
	}
}

// Repair checks block against d and, if the CRC does not match, searches for a
// fix. The returned result is always verified. A NotFound or Unverified
// outcome is not an error; errors are reserved for bad arguments and
// cancellation.
//
// Strategies are tried in order and the search stops at the first CRC match,
// verified or not. An unverified match is reported as OutcomeUnverified (and
// reverted if RevertUnverified is set) without running the later strategies.
func (r *Repairer) Repair(ctx context.Context, block []byte, d digest.Set) (Result, error) {
	if err := d.Check(); err != nil {
		return Result{}, err
	}

	if r.Oracle.CRC32(0, block) == d.CRC {
		res := Verify(r.Oracle, block, Result{Clean: true}, d.VerifyHash, d.HashSeed)
		if !res.Verified {
			r.Log.Infof("Repair: crc matches but verification hash does not, digests are inconsistent with the block")
		}
		return res, nil
	}

	var candidates uint64
	for _, s := range r.Cfg.Strategies {
		res, err := r.run(ctx, s, block, d)
		candidates += res.Candidates
		if errors.Is(err, parity.ErrMisalignedBlock) {
			r.Log.Debugf("Repair: %v skipped: %v", s, err)
			continue
		}
		if err != nil {
			return Result{Candidates: candidates}, fmt.Errorf("repair %v: %w", s, err)
		}
		res.Candidates = candidates
		if !res.Found {
			r.Log.Debugf("Repair: %v: no match after %d candidates", s, res.Candidates)
			continue
		}

		res = Verify(r.Oracle, block, res, d.VerifyHash, d.HashSeed)
		if res.Verified {
			r.Log.Infof("Repair: %v: corrected %v", s, res.Locations)
			return res, nil
		}

		r.Log.Infof("Repair: %v: crc collision at %v, verification hash mismatch", s, res.Locations)
		if r.Cfg.RevertUnverified {
			Revert(block, res)
		}
		return res, nil
	}
	return Result{Candidates: candidates}, nil
}

func (r *Repairer) run(ctx context.Context, s Strategy, block []byte, d digest.Set) (Result, error) {
	switch s {
	case StrategyStripe:
		return NewStripeCorrector(r.Oracle, d.Width).LocateAndFix(block, d.Parity, d.CRC, d.Seed)
	case StrategyBitFlip:
		maxBits := r.Cfg.MaxBits
		if maxBits > 1 && r.Cfg.MaxDoubleBitBytes > 0 && len(block) > r.Cfg.MaxDoubleBitBytes {
			r.Log.Debugf("Repair: block of %d bytes exceeds the pair search cap %d, single bit only",
				len(block), r.Cfg.MaxDoubleBitBytes)
			maxBits = 1
		}
		return NewBitFlipCorrector(r.Oracle).LocateAndFix(ctx, block, d.CRC, maxBits)
	default:
		return Result{}, ErrUnknownStrategy
	}
}
