package correct

import "fmt"

// BitPosition addresses one bit of a block. Bit 0 is the least significant bit
// of the byte at Offset.
type BitPosition struct {
	Offset int
	Bit    uint8
}

// BitPositionAt converts a linear bit index (Offset*8 + Bit) to a BitPosition.
func BitPositionAt(j int) BitPosition {
	return BitPosition{Offset: j >> 3, Bit: uint8(j & 7)}
}

// Index returns the linear bit index.
func (p BitPosition) Index() int { return p.Offset<<3 | int(p.Bit) }

func (p BitPosition) String() string {
	return fmt.Sprintf("byte %d bit %d", p.Offset, p.Bit)
}

func flipBitLSB0(block []byte, j int) {
	block[j>>3] ^= 1 << uint8(j&7)
}
