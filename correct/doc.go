package correct

/*

# Localizing and correcting corruption from digests

The correctors in this package repair a corrupted block in place using only
digests recorded while the block was known to be good. No copy of the original
data is needed. Both are exhaustive searches that use the CRC as a membership
oracle: a candidate is accepted when the CRC of the whole modified block equals
the recorded CRC.

## Stripe search

The block is an array of parity words (stripes). If exactly one stripe is
corrupt, its original value is recovered from the recorded parity P. Writing P
into stripe i and recomputing the block parity yields

	X ^ P ^ seed == o

where X is the XOR of the other stripes and o is the original stripe i. Each
stripe is tried in turn and validated by CRC. Corruption spanning more than one
stripe is outside this model and is reported as not found.

## Bit flip search

Without parity, every single bit is flipped in ascending (byte, bit) order and
tested. Optionally every unordered pair of bits (i, j), i < j, is tried next in
lexicographic order. The pair pass is O((8n)^2) CRCs of the full block and is a
last resort; callers bound it by block size.

## Verification

A 32 bit CRC can not discriminate between the number of candidates the pair
search tries. Every CRC match must be confirmed by the independent verification
hash (Verify). A result that matched the CRC but not the hash is
OutcomeUnverified, which is distinct from OutcomeNotFound. Results are data, not
errors: not finding a fix is an expected outcome.

The block is mutated during the search and must not be observed by anyone else
until the call returns. Correctors keep no state between calls and may be used
concurrently on different blocks.

*/
