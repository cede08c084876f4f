package blake

import "errors"

// Sentinel errors returned by the package. Callers can classify failures
// with errors.Is; returned errors wrap these with context.
var (
	// ErrBadDigestLength is returned when the requested digest length is
	// not one of 224, 256, 384 or 512 bits. No state is created.
	ErrBadDigestLength = errors.New("blake: unsupported digest length")

	// ErrBadSaltLength is returned when a salt does not match the
	// variant's required length (16 bytes for BLAKE-224/256, 32 bytes
	// for BLAKE-384/512).
	ErrBadSaltLength = errors.New("blake: salt length does not match variant")

	// ErrInvalidStateTransition is returned when an operation is illegal
	// in the hasher's current lifecycle state: salting after data has
	// been written, or any use of a finalized hasher.
	ErrInvalidStateTransition = errors.New("blake: invalid hasher state transition")

	// ErrOutputBufferTooSmall is returned by Finalize when the
	// caller-provided buffer is shorter than the digest size.
	ErrOutputBufferTooSmall = errors.New("blake: output buffer too small")
)
