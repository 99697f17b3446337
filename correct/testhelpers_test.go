package correct

import (
	"context"
	"math/bits"

	"github.com/forestrie/go-blockfix/oracle"
)

// weakCRC replaces the CRC with the bit parity of the block, so almost any
// single flip collides. The verification hash is left intact.
type weakCRC struct {
	oracle.Oracle
}

func (w weakCRC) CRC32(seed uint32, data []byte) uint32 {
	n := 0
	for _, b := range data {
		n += bits.OnesCount8(b)
	}
	return seed ^ uint32(n&1)
}

func clone(b []byte) []byte { return append([]byte(nil), b...) }

// cancelAfter reports context.Canceled from the (n+1)th call of Err onwards.
type cancelAfter struct {
	context.Context
	n     int
	calls int
}

func (c *cancelAfter) Err() error {
	c.calls++
	if c.calls > c.n {
		return context.Canceled
	}
	return nil
}
