// Package oracle provides the checksum primitives the correctors consult: a
// CRC32C membership test and an independent 64 bit verification hash.
//
// Neither primitive offers any protection against deliberate tampering.
package oracle

import (
	"encoding/binary"
	"errors"
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

var ErrUnknownHashKind = errors.New("oracle: unknown verification hash kind")

// Oracle is the checksum contract consumed by the correctors. Both functions
// must be deterministic for a given input.
type Oracle interface {
	// CRC32 extends the running checksum seed with data. A seed of 0 starts a
	// fresh checksum.
	CRC32(seed uint32, data []byte) uint32
	// Hash64 returns the seeded verification hash of data.
	Hash64(data []byte, seed uint64) uint64
}

// HashKind selects the verification hash.
type HashKind uint8

const (
	HashXXH64 HashKind = iota
	HashXXH3
	HashBLAKE3
)

func (k HashKind) String() string {
	switch k {
	case HashXXH64:
		return "xxh64"
	case HashXXH3:
		return "xxh3"
	case HashBLAKE3:
		return "blake3"
	default:
		return "unknown"
	}
}

// castagnoli is hardware accelerated by hash/crc32 where the CPU supports it.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Checksums is the default Oracle: CRC32C and a configurable hash.
type Checksums struct {
	kind HashKind
}

// New returns a Checksums oracle. The default hash is xxh64.
func New(opts ...Option) (*Checksums, error) {
	o := Options{HashKind: HashXXH64}
	for _, opt := range opts {
		opt(&o)
	}
	if o.HashKind > HashBLAKE3 {
		return nil, ErrUnknownHashKind
	}
	return &Checksums{kind: o.HashKind}, nil
}

// HashKind reports the configured verification hash.
func (c *Checksums) HashKind() HashKind { return c.kind }

func (c *Checksums) CRC32(seed uint32, data []byte) uint32 {
	return crc32.Update(seed, castagnoli, data)
}

func (c *Checksums) Hash64(data []byte, seed uint64) uint64 {
	switch c.kind {
	case HashXXH3:
		return xxh3.HashSeed(data, seed)
	case HashBLAKE3:
		return blake3Hash64(data, seed)
	default:
		if seed == 0 {
			return xxhash.Sum64(data)
		}
		d := xxhash.NewWithSeed(seed)
		_, _ = d.Write(data)
		return d.Sum64()
	}
}

// blake3Hash64 hashes the little-endian seed followed by data and keeps the
// first 8 bytes of the digest.
func blake3Hash64(data []byte, seed uint64) uint64 {
	var s [8]byte
	binary.LittleEndian.PutUint64(s[:], seed)

	h := blake3.New()
	_, _ = h.Write(s[:])
	_, _ = h.Write(data)
	var sum [32]byte
	return binary.LittleEndian.Uint64(h.Sum(sum[:0])[:8])
}
