package blake

import "hash"

var _ hash.Hash = (*Hasher)(nil)

// Hash computes the BLAKE digest of data in one call. The returned slice
// is digestBits/8 bytes long.
//
// Returns ErrBadDigestLength unless digestBits is one of 224, 256, 384
// or 512. For any chunking of data across Update calls, the incremental
// path produces an identical digest.
func Hash(digestBits int, data []byte) ([]byte, error) {
	h, err := New(digestBits)
	if err != nil {
		return nil, err
	}
	if err := h.Update(data); err != nil {
		return nil, err
	}
	out := make([]byte, h.p.size)
	if err := h.Finalize(out); err != nil {
		return nil, err
	}
	return out, nil
}

// New224 creates a BLAKE-224 Hasher.
func New224() *Hasher { return mustNew(224) }

// New256 creates a BLAKE-256 Hasher.
func New256() *Hasher { return mustNew(256) }

// New384 creates a BLAKE-384 Hasher.
func New384() *Hasher { return mustNew(384) }

// New512 creates a BLAKE-512 Hasher.
func New512() *Hasher { return mustNew(512) }

func mustNew(digestBits int) *Hasher {
	h, err := New(digestBits)
	if err != nil {
		panic("blake: " + err.Error())
	}
	return h
}

// Write implements hash.Hash by delegating to Update. It reports the
// full length of p on success and fails only on a finalized Hasher.
func (h *Hasher) Write(p []byte) (int, error) {
	if err := h.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum implements hash.Hash: it appends the digest of the data written so
// far to in and returns the result. Unlike Finalize, Sum leaves the
// Hasher open, so more data can be written afterwards.
//
// Sum panics if the Hasher has been consumed by Finalize; use Reset to
// reopen it first.
func (h *Hasher) Sum(in []byte) []byte {
	if h.done {
		panic("blake: Sum after Finalize")
	}
	d := h.clone()
	out := make([]byte, d.p.size)
	d.done = true
	d.finish(out)
	return append(in, out...)
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return h.p.size }

// BlockSize returns the compression block size in bytes.
func (h *Hasher) BlockSize() int { return h.p.blockSize }
