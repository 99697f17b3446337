package parity

import "encoding/binary"

func readU32LE(b []byte) uint32     { return binary.LittleEndian.Uint32(b) }
func readU64LE(b []byte) uint64     { return binary.LittleEndian.Uint64(b) }
func writeU32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func writeU64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// Word reads stripe i of block as a uint64. Width32 words are zero extended.
//
// The caller must ensure block is aligned and i is in range.
func (w Width) Word(block []byte, i int) uint64 {
	off := i * int(w)
	if w == Width32 {
		return uint64(readU32LE(block[off : off+4]))
	}
	return readU64LE(block[off : off+8])
}

// PutWord writes v into stripe i of block. Width32 keeps the low 32 bits.
//
// The caller must ensure block is aligned and i is in range.
func (w Width) PutWord(block []byte, i int, v uint64) {
	off := i * int(w)
	if w == Width32 {
		writeU32LE(block[off:off+4], uint32(v))
		return
	}
	writeU64LE(block[off:off+8], v)
}
