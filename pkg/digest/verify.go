package digest

import (
	"crypto/subtle"
	"fmt"
	"io"
)

// VerifyDigestBytes verifies that a body's digest matches the digest-list
// value for all required algorithms. Uses constant-time comparison via
// crypto/subtle.ConstantTimeCompare for security.
//
// Parameters:
//   - body: The complete message body as bytes
//   - list: The digest-list value (see FormatDigestList)
//   - requiredAlgorithms: List of algorithms that must be present and verified
//
// Returns error if:
//   - List cannot be parsed
//   - Any required algorithm is missing from the list
//   - Any digest verification fails (mismatch)
//   - Required algorithms list is empty
func VerifyDigestBytes(body []byte, list string, requiredAlgorithms []string) error {
	if len(requiredAlgorithms) == 0 {
		return fmt.Errorf("requiredAlgorithms cannot be empty")
	}

	listDigests, err := ParseDigestList(list)
	if err != nil {
		return fmt.Errorf("failed to parse digest list: %w", err)
	}

	for _, algorithm := range requiredAlgorithms {
		expectedDigest, found := listDigests[algorithm]
		if !found {
			return fmt.Errorf("required algorithm %q not found in digest list", algorithm)
		}

		actualDigest, err := ComputeDigest(body, algorithm)
		if err != nil {
			return fmt.Errorf("failed to compute digest for algorithm %q: %w", algorithm, err)
		}

		// Constant-time comparison (security requirement)
		if subtle.ConstantTimeCompare(actualDigest, expectedDigest) != 1 {
			return fmt.Errorf("digest mismatch for algorithm %q: verification failed", algorithm)
		}
	}

	return nil
}

// VerifyDigest verifies that a reader's content matches the digest-list
// value for all required algorithms. This is the streaming API that uses
// O(1) memory regardless of content size.
//
// Parameters:
//   - reader: The message body as an io.Reader
//   - list: The digest-list value (see FormatDigestList)
//   - requiredAlgorithms: List of algorithms that must be present and verified
//
// Returns error if:
//   - List cannot be parsed
//   - Any required algorithm is missing from the list
//   - Any digest verification fails (mismatch)
//   - Required algorithms list is empty
//   - Reader read fails
//
// Memory guarantee: O(1) - uses io.MultiWriter to compute all digests in single pass
func VerifyDigest(reader io.Reader, list string, requiredAlgorithms []string) error {
	if len(requiredAlgorithms) == 0 {
		return fmt.Errorf("requiredAlgorithms cannot be empty")
	}

	listDigests, err := ParseDigestList(list)
	if err != nil {
		return fmt.Errorf("failed to parse digest list: %w", err)
	}

	// Create hashers for all required algorithms
	hashers := make(map[string]io.Writer, len(requiredAlgorithms))
	for _, algorithm := range requiredAlgorithms {
		if _, found := listDigests[algorithm]; !found {
			return fmt.Errorf("required algorithm %q not found in digest list", algorithm)
		}

		h, err := NewDigester(algorithm)
		if err != nil {
			return fmt.Errorf("failed to create digester for algorithm %q: %w", algorithm, err)
		}
		hashers[algorithm] = h
	}

	// Create MultiWriter for all hashers (single-pass streaming)
	writers := make([]io.Writer, 0, len(hashers))
	for _, h := range hashers {
		writers = append(writers, h)
	}
	multiWriter := io.MultiWriter(writers...)

	// Stream content through all hashers simultaneously (O(1) memory)
	_, err = io.Copy(multiWriter, reader)
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	// Verify all digests using constant-time comparison
	for _, algorithm := range requiredAlgorithms {
		expectedDigest := listDigests[algorithm]
		actualDigest := hashers[algorithm].(interface{ Sum([]byte) []byte }).Sum(nil)

		// Constant-time comparison (security requirement)
		if subtle.ConstantTimeCompare(actualDigest, expectedDigest) != 1 {
			return fmt.Errorf("digest mismatch for algorithm %q: verification failed", algorithm)
		}
	}

	return nil
}
