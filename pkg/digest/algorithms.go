// Package digest provides a named-algorithm registry and digest-list
// formatting, parsing and verification on top of the BLAKE engine in
// pkg/blake, with the related modern hash families (BLAKE2b, SHA-2,
// SHA-3) registered alongside for interoperability.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/forcebit/blake-hash-go/pkg/blake"
)

// Algorithm identifiers. The blake-* entries are computed by this
// repository's engine; the rest come from the standard library and
// golang.org/x/crypto.
const (
	// BLAKE family (SHA-3 finalist, this repository)
	AlgorithmBLAKE224 = "blake-224"
	AlgorithmBLAKE256 = "blake-256"
	AlgorithmBLAKE384 = "blake-384"
	AlgorithmBLAKE512 = "blake-512"

	// BLAKE2b family (RFC 7693)
	AlgorithmBLAKE2b256 = "blake2b-256"
	AlgorithmBLAKE2b512 = "blake2b-512"

	// SHA-2 family (NIST FIPS 180-4)
	AlgorithmSHA256 = "sha-256"
	AlgorithmSHA512 = "sha-512"

	// SHA-3 family (NIST FIPS 202)
	AlgorithmSHA3256 = "sha3-256"
	AlgorithmSHA3512 = "sha3-512"
)

// SupportedAlgorithms is a set of all algorithms supported by this
// package. Use O(1) lookup: _, ok := SupportedAlgorithms[algorithm].
var SupportedAlgorithms = map[string]struct{}{
	AlgorithmBLAKE224:   {},
	AlgorithmBLAKE256:   {},
	AlgorithmBLAKE384:   {},
	AlgorithmBLAKE512:   {},
	AlgorithmBLAKE2b256: {},
	AlgorithmBLAKE2b512: {},
	AlgorithmSHA256:     {},
	AlgorithmSHA512:     {},
	AlgorithmSHA3256:    {},
	AlgorithmSHA3512:    {},
}

// digestSizes maps every supported algorithm to its output length in
// bytes, used when validating parsed digest lists.
var digestSizes = map[string]int{
	AlgorithmBLAKE224:   blake.Size224,
	AlgorithmBLAKE256:   blake.Size256,
	AlgorithmBLAKE384:   blake.Size384,
	AlgorithmBLAKE512:   blake.Size512,
	AlgorithmBLAKE2b256: blake2b.Size256,
	AlgorithmBLAKE2b512: blake2b.Size,
	AlgorithmSHA256:     sha256.Size,
	AlgorithmSHA512:     sha512.Size,
	AlgorithmSHA3256:    32,
	AlgorithmSHA3512:    64,
}

// blakeBits maps the BLAKE algorithm identifiers to their digest bit
// lengths; only these algorithms accept a salt.
func blakeBits(algorithm string) (int, bool) {
	switch algorithm {
	case AlgorithmBLAKE224:
		return 224, true
	case AlgorithmBLAKE256:
		return 256, true
	case AlgorithmBLAKE384:
		return 384, true
	case AlgorithmBLAKE512:
		return 512, true
	}
	return 0, false
}

// DigestSize returns the digest length in bytes produced by the given
// algorithm, or an error if the algorithm is unsupported.
func DigestSize(algorithm string) (int, error) {
	size, ok := digestSizes[algorithm]
	if !ok {
		return 0, fmt.Errorf("unsupported algorithm %q", algorithm)
	}
	return size, nil
}

// NewDigester creates a hash.Hash instance for streaming digest
// computation. This is the PRIMARY API for memory-efficient operations
// (O(1) memory).
//
// Supported algorithms: blake-224, blake-256, blake-384, blake-512,
// blake2b-256, blake2b-512, sha-256, sha-512, sha3-256, sha3-512.
//
// Returns hash.Hash for incremental computation, or error if algorithm
// is unsupported.
func NewDigester(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case AlgorithmBLAKE224:
		return blake.New224(), nil
	case AlgorithmBLAKE256:
		return blake.New256(), nil
	case AlgorithmBLAKE384:
		return blake.New384(), nil
	case AlgorithmBLAKE512:
		return blake.New512(), nil
	case AlgorithmBLAKE2b256:
		h, err := blake2b.New256(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize BLAKE2b-256 hasher: %w", err)
		}
		return h, nil
	case AlgorithmBLAKE2b512:
		h, err := blake2b.New512(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize BLAKE2b-512 hasher: %w", err)
		}
		return h, nil
	case AlgorithmSHA256:
		return sha256.New(), nil
	case AlgorithmSHA512:
		return sha512.New(), nil
	case AlgorithmSHA3256:
		return sha3.New256(), nil
	case AlgorithmSHA3512:
		return sha3.New512(), nil
	default:
		return nil, fmt.Errorf("unsupported algorithm %q", algorithm)
	}
}

// NewSaltedDigester creates a hash.Hash computing a salted digest. Only
// the BLAKE family carries the construction's native salt input; every
// other algorithm is rejected.
//
// Returns error if:
//   - the algorithm is not one of the blake-* identifiers
//   - the salt length does not match the variant (16 bytes for
//     blake-224/256, 32 bytes for blake-384/512)
func NewSaltedDigester(algorithm string, salt []byte) (hash.Hash, error) {
	bits, ok := blakeBits(algorithm)
	if !ok {
		return nil, fmt.Errorf("algorithm %q does not support salting", algorithm)
	}
	h, err := blake.New(bits)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s hasher: %w", algorithm, err)
	}
	if err := h.AddSalt(salt); err != nil {
		return nil, fmt.Errorf("failed to salt %s hasher: %w", algorithm, err)
	}
	return h, nil
}
