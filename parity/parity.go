package parity

// Parity32 returns the seeded 32 bit XOR parity of block.
func Parity32(block []byte, seed uint32) (uint32, error) {
	if len(block)%int(Width32) != 0 {
		return 0, ErrMisalignedBlock
	}

	var p1, p2, p3, p4 uint32
	n := len(block) / int(Width32)
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		off := i * int(Width32)
		p1 ^= readU32LE(block[off:])
		p2 ^= readU32LE(block[off+4:])
		p3 ^= readU32LE(block[off+8:])
		p4 ^= readU32LE(block[off+12:])
	}
	// The tail is shorter than a full round, so it only reaches the leading lanes.
	off := i * int(Width32)
	switch n - i {
	case 3:
		p3 ^= readU32LE(block[off+8:])
		fallthrough
	case 2:
		p2 ^= readU32LE(block[off+4:])
		fallthrough
	case 1:
		p1 ^= readU32LE(block[off:])
	}

	return p1 ^ p2 ^ p3 ^ p4 ^ seed, nil
}

// Parity64 returns the seeded 64 bit XOR parity of block.
func Parity64(block []byte, seed uint64) (uint64, error) {
	if len(block)%int(Width64) != 0 {
		return 0, ErrMisalignedBlock
	}

	var p1, p2, p3, p4 uint64
	n := len(block) / int(Width64)
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		off := i * int(Width64)
		p1 ^= readU64LE(block[off:])
		p2 ^= readU64LE(block[off+8:])
		p3 ^= readU64LE(block[off+16:])
		p4 ^= readU64LE(block[off+24:])
	}
	off := i * int(Width64)
	switch n - i {
	case 3:
		p3 ^= readU64LE(block[off+16:])
		fallthrough
	case 2:
		p2 ^= readU64LE(block[off+8:])
		fallthrough
	case 1:
		p1 ^= readU64LE(block[off:])
	}

	return p1 ^ p2 ^ p3 ^ p4 ^ seed, nil
}

// Compute returns the seeded parity of block at width w, zero extended to 64
// bits. For Width32 the seed must fit in 32 bits.
func Compute(w Width, block []byte, seed uint64) (uint64, error) {
	switch w {
	case Width32:
		if seed&^w.Mask() != 0 {
			return 0, ErrSeedWidth
		}
		p, err := Parity32(block, uint32(seed))
		return uint64(p), err
	case Width64:
		return Parity64(block, seed)
	default:
		return 0, ErrBadWidth
	}
}

// Fold32 is the single accumulator reference for Parity32.
func Fold32(block []byte, seed uint32) (uint32, error) {
	if len(block)%int(Width32) != 0 {
		return 0, ErrMisalignedBlock
	}
	p := seed
	for off := 0; off < len(block); off += int(Width32) {
		p ^= readU32LE(block[off:])
	}
	return p, nil
}

// Fold64 is the single accumulator reference for Parity64.
func Fold64(block []byte, seed uint64) (uint64, error) {
	if len(block)%int(Width64) != 0 {
		return 0, ErrMisalignedBlock
	}
	p := seed
	for off := 0; off < len(block); off += int(Width64) {
		p ^= readU64LE(block[off:])
	}
	return p, nil
}
