package blake

import "fmt"

// Digest sizes in bytes.
const (
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

// Block sizes in bytes. The 224 and 256-bit variants share a block size,
// as do the 384 and 512-bit variants.
const (
	BlockSize256 = 64
	BlockSize512 = 128
)

// Salt sizes in bytes per family.
const (
	SaltSize256 = 16
	SaltSize512 = 32
)

// params fixes every size derived from the requested digest length.
type params struct {
	bits      int  // requested digest length in bits
	size      int  // digest length in bytes
	blockSize int  // compression block size in bytes
	saltSize  int  // required salt length in bytes
	full      bool // output equals the chaining width (256, 512)
}

func paramsFor(digestBits int) (params, bool) {
	switch digestBits {
	case 224:
		return params{224, Size224, BlockSize256, SaltSize256, false}, true
	case 256:
		return params{256, Size256, BlockSize256, SaltSize256, true}, true
	case 384:
		return params{384, Size384, BlockSize512, SaltSize512, false}, true
	case 512:
		return params{512, Size512, BlockSize512, SaltSize512, true}, true
	}
	return params{}, false
}

// core is the word-width-specific half of the engine. Exactly two
// implementations exist (core32, core64); the Hasher drives whichever the
// variant selected at construction.
type core interface {
	reset(digestBits int)
	setSalt(salt []byte)
	compress(block []byte)
	addCount(nbits uint64)
	subCount(nbits uint64)
	markEmptyFinal()
	lengthField(bufferedBits uint64) []byte
	extract(out []byte)
	clone() core
}

func newCore(p params) core {
	switch p.blockSize {
	case BlockSize256:
		return new(core32)
	case BlockSize512:
		return new(core64)
	}
	// Unreachable: paramsFor admits only the two block sizes.
	panic(fmt.Sprintf("blake: internal error: no core for block size %d", p.blockSize))
}

// Hasher is the incremental hashing state for one digest computation.
//
// Lifecycle: a Hasher is created open by New (or a per-variant
// constructor), optionally salted once via AddSalt before any data is
// written, fed with any number of Update calls, and consumed by exactly
// one Finalize. Any Update, AddSalt or Finalize on a finalized Hasher
// fails with ErrInvalidStateTransition; Reset reopens it for a new
// message.
//
// A Hasher must not be used from multiple goroutines concurrently.
// Independent Hashers are fully isolated and need no synchronization.
type Hasher struct {
	p       params
	c       core
	x       []byte // pending input, always shorter than one block
	nx      int
	started bool // data has been written; salt is locked
	done    bool // finalized; terminal until Reset
}

// New creates a Hasher producing digests of the given bit length.
//
// Returns ErrBadDigestLength unless digestBits is one of 224, 256, 384
// or 512.
func New(digestBits int) (*Hasher, error) {
	p, ok := paramsFor(digestBits)
	if !ok {
		return nil, fmt.Errorf("%w: %d (supported: 224, 256, 384, 512)", ErrBadDigestLength, digestBits)
	}
	h := &Hasher{p: p, c: newCore(p), x: make([]byte, p.blockSize)}
	h.c.reset(p.bits)
	return h, nil
}

// SaltSize reports the salt length in bytes required by the given digest
// length: 16 for 224/256, 32 for 384/512.
//
// Returns ErrBadDigestLength for unsupported digest lengths.
func SaltSize(digestBits int) (int, error) {
	p, ok := paramsFor(digestBits)
	if !ok {
		return 0, fmt.Errorf("%w: %d (supported: 224, 256, 384, 512)", ErrBadDigestLength, digestBits)
	}
	return p.saltSize, nil
}

// AddSalt applies a salt to the computation. The salt is mixed into every
// compressed block, so it must be set while the Hasher is still fresh.
//
// Returns error if:
//   - the salt length is not SaltSize(digestBits) (ErrBadSaltLength)
//   - any data has already been written (ErrInvalidStateTransition)
//   - the Hasher has been finalized (ErrInvalidStateTransition)
func (h *Hasher) AddSalt(salt []byte) error {
	if h.done || h.started {
		return fmt.Errorf("%w: salt must be set before any data is written", ErrInvalidStateTransition)
	}
	if len(salt) != h.p.saltSize {
		return fmt.Errorf("%w: got %d bytes, BLAKE-%d requires %d", ErrBadSaltLength, len(salt), h.p.bits, h.p.saltSize)
	}
	h.c.setSalt(salt)
	return nil
}

// Update appends data to the message being hashed. It may be called any
// number of times with arbitrarily sized chunks; the digest depends only
// on the concatenation of all chunks.
//
// Update cannot fail on an open Hasher. It returns
// ErrInvalidStateTransition if called after Finalize.
func (h *Hasher) Update(data []byte) error {
	if h.done {
		return fmt.Errorf("%w: update after finalize", ErrInvalidStateTransition)
	}
	h.started = true
	h.absorb(data)
	return nil
}

// absorb buffers input and compresses every full block, crediting the
// counter with one block's worth of bits before each compression.
func (h *Hasher) absorb(p []byte) {
	bs := h.p.blockSize
	if h.nx > 0 {
		n := copy(h.x[h.nx:], p)
		h.nx += n
		p = p[n:]
		if h.nx == bs {
			h.c.addCount(uint64(bs) * 8)
			h.c.compress(h.x)
			h.nx = 0
		}
	}
	for len(p) >= bs {
		h.c.addCount(uint64(bs) * 8)
		h.c.compress(p[:bs])
		p = p[bs:]
	}
	if len(p) > 0 {
		h.nx = copy(h.x, p)
	}
}

// Finalize pads the message, runs the final compression(s) and writes the
// digest into out, consuming the Hasher. out must hold at least Size()
// bytes; exactly Size() bytes are written.
//
// Returns error if:
//   - the Hasher has already been finalized (ErrInvalidStateTransition)
//   - out is shorter than Size() (ErrOutputBufferTooSmall)
func (h *Hasher) Finalize(out []byte) error {
	if h.done {
		return fmt.Errorf("%w: finalize after finalize", ErrInvalidStateTransition)
	}
	if len(out) < h.p.size {
		return fmt.Errorf("%w: got %d bytes, BLAKE-%d requires %d", ErrOutputBufferTooSmall, len(out), h.p.bits, h.p.size)
	}
	h.done = true
	h.finish(out[:h.p.size])
	return nil
}

// finish applies the padding rule and extracts the digest.
//
// The padding appends a 0x80 terminator bit, zero fill, one
// domain-separation byte distinguishing the truncated variant from its
// full-width sibling, and the big-endian total message bit length. The
// counter-credit gained while absorbing padding bytes is subtracted up
// front so each final compression sees the true message length; a final
// block holding no message bits is compressed with the counter
// suppressed entirely.
func (h *Hasher) finish(out []byte) {
	length := h.c.lengthField(uint64(h.nx) * 8)
	mark := h.p.blockSize - len(length) - 1
	tail := byte(0x00)
	if h.p.full {
		tail = 0x01
	}

	switch {
	case h.nx == mark:
		// Exactly one byte of room before the length field: the
		// terminator and domain bits share it.
		h.c.subCount(8)
		h.absorb([]byte{0x80 | tail})
	case h.nx < mark:
		if h.nx == 0 {
			h.c.markEmptyFinal()
		}
		h.c.subCount(uint64(mark-h.nx) * 8)
		h.absorb(padding[:mark-h.nx])
		h.c.subCount(8)
		h.absorb([]byte{tail})
	default:
		// No room for the length field: close this block with padding
		// and spill into a second, message-free final block.
		h.c.subCount(uint64(h.p.blockSize-h.nx) * 8)
		h.absorb(padding[:h.p.blockSize-h.nx])
		h.c.markEmptyFinal()
		h.c.subCount(uint64(mark) * 8)
		h.absorb(padding[1 : mark+1])
		h.c.subCount(8)
		h.absorb([]byte{tail})
	}
	h.c.subCount(uint64(len(length)) * 8)
	h.absorb(length)

	var chain [Size512]byte
	full := chain[:h.p.blockSize/2]
	h.c.extract(full)
	copy(out, full[:h.p.size])
}

// Reset reopens the Hasher for a new message with the same digest length
// and the same salt, discarding all buffered input and counters.
func (h *Hasher) Reset() {
	h.c.reset(h.p.bits)
	h.nx = 0
	h.started = false
	h.done = false
}

// clone returns an independent deep copy of the Hasher.
func (h *Hasher) clone() *Hasher {
	d := *h
	d.c = h.c.clone()
	d.x = make([]byte, len(h.x))
	copy(d.x, h.x)
	return &d
}
