package blocktesting

import "github.com/forestrie/go-blockfix/parity"

// FlipBit flips linear bit j (byte j/8, bit j%8 counted from the LSB).
func FlipBit(block []byte, j int) {
	block[j>>3] ^= 1 << uint8(j&7)
}

// CorruptStripe xors stripe i of an aligned block with mask. A zero mask (after
// truncation to the width) leaves the stripe unchanged.
func CorruptStripe(w parity.Width, block []byte, i int, mask uint64) {
	w.PutWord(block, i, w.Word(block, i)^mask)
}
