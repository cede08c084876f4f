package blake

import (
	"encoding/binary"
	"math/bits"
)

// core32 is the 32-bit word family shared by BLAKE-224 and BLAKE-256:
// 64-byte blocks, 14 rounds, a 64-bit (two-word) bit counter and a
// 16-byte salt.
type core32 struct {
	h     [8]uint32 // chaining value
	s     [4]uint32 // salt, zero unless set
	t     uint64    // message bit counter
	nullt bool      // suppress the counter for a padding-only final block
}

func (c *core32) reset(digestBits int) {
	if digestBits == 224 {
		c.h = iv224
	} else {
		c.h = iv256
	}
	c.t = 0
	c.nullt = false
}

func (c *core32) setSalt(salt []byte) {
	for i := range c.s {
		c.s[i] = binary.BigEndian.Uint32(salt[i*4:])
	}
}

func (c *core32) addCount(nbits uint64) { c.t += nbits }
func (c *core32) subCount(nbits uint64) { c.t -= nbits }
func (c *core32) markEmptyFinal()       { c.nullt = true }

// lengthField encodes the total message bit length (counter plus bits
// still buffered) as the big-endian two-word field appended during
// padding.
func (c *core32) lengthField(bufferedBits uint64) []byte {
	field := make([]byte, 8)
	binary.BigEndian.PutUint64(field, c.t+bufferedBits)
	return field
}

func (c *core32) extract(out []byte) {
	for i, w := range c.h {
		binary.BigEndian.PutUint32(out[i*4:], w)
	}
}

func (c *core32) clone() core {
	d := *c
	return &d
}

// g32 is the quarter-round: mix one column or diagonal of the working
// state with two message words selected by the round schedule.
func g32(v, m *[16]uint32, s *[16]int, i, a, b, cc, d int) {
	j, k := s[2*i], s[2*i+1]
	v[a] += v[b] + (m[j] ^ u256[k])
	v[d] = bits.RotateLeft32(v[d]^v[a], -16)
	v[cc] += v[d]
	v[b] = bits.RotateLeft32(v[b]^v[cc], -12)
	v[a] += v[b] + (m[k] ^ u256[j])
	v[d] = bits.RotateLeft32(v[d]^v[a], -8)
	v[cc] += v[d]
	v[b] = bits.RotateLeft32(v[b]^v[cc], -7)
}

func (c *core32) compress(block []byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.BigEndian.Uint32(block[i*4:])
	}

	// Initialize the 16-word working state from the chaining value, the
	// salted constants and the block counter.
	var v [16]uint32
	copy(v[:8], c.h[:])
	for i := 0; i < 4; i++ {
		v[8+i] = c.s[i] ^ u256[i]
	}
	copy(v[12:], u256[4:8])
	if !c.nullt {
		t0, t1 := uint32(c.t), uint32(c.t>>32)
		v[12] ^= t0
		v[13] ^= t0
		v[14] ^= t1
		v[15] ^= t1
	}

	for r := 0; r < rounds32; r++ {
		s := &sigma[r%10]
		// Column step.
		g32(&v, &m, s, 0, 0, 4, 8, 12)
		g32(&v, &m, s, 1, 1, 5, 9, 13)
		g32(&v, &m, s, 2, 2, 6, 10, 14)
		g32(&v, &m, s, 3, 3, 7, 11, 15)
		// Diagonal step.
		g32(&v, &m, s, 4, 0, 5, 10, 15)
		g32(&v, &m, s, 5, 1, 6, 11, 12)
		g32(&v, &m, s, 6, 2, 7, 8, 13)
		g32(&v, &m, s, 7, 3, 4, 9, 14)
	}

	// Fold the working state and the salt back into the chaining value.
	for i := 0; i < 8; i++ {
		c.h[i] ^= c.s[i%4] ^ v[i] ^ v[i+8]
	}
}
