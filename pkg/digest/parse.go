package digest

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ParseDigestList parses a digest-list string produced by
// FormatDigestList and returns a map of algorithm names to digest bytes.
//
// Format: algorithm=:base64digest:, algorithm2=:base64digest2:
// Example: blake-256=:uU0nuZNNPgilLlLX2n2r+sSE7+N6U4DukIj3rOLvzek=:
//
// Returns error if:
//   - List syntax is invalid
//   - Algorithm is not supported
//   - Algorithm appears more than once
//   - Digest value is not a :base64: byte sequence
//   - Digest length doesn't match expected size for algorithm
//   - Base64 decoding fails
func ParseDigestList(list string) (map[string][]byte, error) {
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("digest list cannot be empty")
	}

	entries := strings.Split(list, ",")
	result := make(map[string][]byte, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return nil, fmt.Errorf("digest list contains an empty entry")
		}

		algorithm, value, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("entry %q: expected algorithm=:base64: pair", entry)
		}

		if _, ok := SupportedAlgorithms[algorithm]; !ok {
			return nil, fmt.Errorf("unsupported algorithm %q", algorithm)
		}
		if _, dup := result[algorithm]; dup {
			return nil, fmt.Errorf("algorithm %q appears more than once", algorithm)
		}

		// Byte sequence: :base64:
		if len(value) < 2 || value[0] != ':' || value[len(value)-1] != ':' {
			return nil, fmt.Errorf("algorithm %q: digest must be a :base64: byte sequence", algorithm)
		}
		digestBytes, err := base64.StdEncoding.DecodeString(value[1 : len(value)-1])
		if err != nil {
			return nil, fmt.Errorf("algorithm %q: failed to decode digest: %w", algorithm, err)
		}

		expectedSize, err := DigestSize(algorithm)
		if err != nil {
			return nil, err
		}
		if len(digestBytes) != expectedSize {
			return nil, fmt.Errorf("algorithm %q: digest is %d bytes, expected %d",
				algorithm, len(digestBytes), expectedSize)
		}

		result[algorithm] = digestBytes
	}

	return result, nil
}
