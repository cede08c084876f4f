package blake

import (
	"encoding/binary"
	"math/bits"
)

// core64 is the 64-bit word family shared by BLAKE-384 and BLAKE-512:
// 128-byte blocks, 16 rounds, a 128-bit (two-word) bit counter and a
// 32-byte salt.
type core64 struct {
	h      [8]uint64 // chaining value
	s      [4]uint64 // salt, zero unless set
	t0, t1 uint64    // message bit counter, t1 is the high word
	nullt  bool      // suppress the counter for a padding-only final block
}

func (c *core64) reset(digestBits int) {
	if digestBits == 384 {
		c.h = iv384
	} else {
		c.h = iv512
	}
	c.t0, c.t1 = 0, 0
	c.nullt = false
}

func (c *core64) setSalt(salt []byte) {
	for i := range c.s {
		c.s[i] = binary.BigEndian.Uint64(salt[i*8:])
	}
}

func (c *core64) addCount(nbits uint64) {
	var carry uint64
	c.t0, carry = bits.Add64(c.t0, nbits, 0)
	c.t1 += carry
}

func (c *core64) subCount(nbits uint64) {
	var borrow uint64
	c.t0, borrow = bits.Sub64(c.t0, nbits, 0)
	c.t1 -= borrow
}

func (c *core64) markEmptyFinal() { c.nullt = true }

func (c *core64) lengthField(bufferedBits uint64) []byte {
	lo, carry := bits.Add64(c.t0, bufferedBits, 0)
	hi := c.t1 + carry
	field := make([]byte, 16)
	binary.BigEndian.PutUint64(field, hi)
	binary.BigEndian.PutUint64(field[8:], lo)
	return field
}

func (c *core64) extract(out []byte) {
	for i, w := range c.h {
		binary.BigEndian.PutUint64(out[i*8:], w)
	}
}

func (c *core64) clone() core {
	d := *c
	return &d
}

func g64(v, m *[16]uint64, s *[16]int, i, a, b, cc, d int) {
	j, k := s[2*i], s[2*i+1]
	v[a] += v[b] + (m[j] ^ u512[k])
	v[d] = bits.RotateLeft64(v[d]^v[a], -32)
	v[cc] += v[d]
	v[b] = bits.RotateLeft64(v[b]^v[cc], -25)
	v[a] += v[b] + (m[k] ^ u512[j])
	v[d] = bits.RotateLeft64(v[d]^v[a], -16)
	v[cc] += v[d]
	v[b] = bits.RotateLeft64(v[b]^v[cc], -11)
}

func (c *core64) compress(block []byte) {
	var m [16]uint64
	for i := range m {
		m[i] = binary.BigEndian.Uint64(block[i*8:])
	}

	var v [16]uint64
	copy(v[:8], c.h[:])
	for i := 0; i < 4; i++ {
		v[8+i] = c.s[i] ^ u512[i]
	}
	copy(v[12:], u512[4:8])
	if !c.nullt {
		v[12] ^= c.t0
		v[13] ^= c.t0
		v[14] ^= c.t1
		v[15] ^= c.t1
	}

	for r := 0; r < rounds64; r++ {
		s := &sigma[r%10]
		// Column step.
		g64(&v, &m, s, 0, 0, 4, 8, 12)
		g64(&v, &m, s, 1, 1, 5, 9, 13)
		g64(&v, &m, s, 2, 2, 6, 10, 14)
		g64(&v, &m, s, 3, 3, 7, 11, 15)
		// Diagonal step.
		g64(&v, &m, s, 4, 0, 5, 10, 15)
		g64(&v, &m, s, 5, 1, 6, 11, 12)
		g64(&v, &m, s, 6, 2, 7, 8, 13)
		g64(&v, &m, s, 7, 3, 4, 9, 14)
	}

	for i := 0; i < 8; i++ {
		c.h[i] ^= c.s[i%4] ^ v[i] ^ v[i+8]
	}
}
