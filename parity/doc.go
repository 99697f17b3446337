package parity

/*

# Multi-lane XOR parity for fixed size blocks

This package computes a seeded XOR parity of a block at word granularity. The
parity is a cheap fingerprint: it is fast to recompute and, together with a
CRC, it is enough to reconstruct a single corrupted word (see package
`correct`).

It follows the same conventions as the other byte layout packages:

- small, composable functions
- explicit byte layouts
- a burden of knowledge on the caller for hot paths

## Words and byte order

A block is partitioned into words of 4 bytes (`Width32`) or 8 bytes
(`Width64`). Words are always read little-endian, so the parity of a given
block is the same on every host. The block length must be a multiple of the
word width; a misaligned block is reported with ErrMisalignedBlock and is never
silently truncated.

## Lanes

Words are distributed round robin over four independent accumulators:

	word 0 -> p1, word 1 -> p2, word 2 -> p3, word 3 -> p4, word 4 -> p1 ...

	parity = p1 ^ p2 ^ p3 ^ p4 ^ seed

The four chains have no data dependency on each other, which lets the CPU
overlap them. XOR is associative and commutative so the result is numerically
identical to the single accumulator fold, Fold32 and Fold64, which are kept as
the reference implementation.

## Seeds

The seed is a tweak, folded in once at the end. For any block

	Parity64(b, s1) ^ Parity64(b, s2) == s1 ^ s2

What parity is not: it is blind to any change that flips the same bit in an
even number of words. It is an accidental error detector only.

*/
