package digest

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
)

// FormatDigestList formats a map of algorithm->digest pairs into a
// digest-list string of dictionary shape.
//
// Format: algorithm=:base64digest:, algorithm2=:base64digest2:
// Algorithms are sorted alphabetically so the output is canonical.
//
// Example:
//
//	digests := map[string][]byte{
//	    "blake-256": digestBytes,
//	    "blake-512": digestBytes2,
//	}
//	list, err := FormatDigestList(digests)
//	// list: "blake-256=:base64...:, blake-512=:base64...:"
//
// Returns error if:
//   - digests map is nil or empty
//   - any algorithm name is empty
//   - any digest value is nil or empty
func FormatDigestList(digests map[string][]byte) (string, error) {
	if len(digests) == 0 {
		return "", fmt.Errorf("digests map cannot be nil or empty")
	}

	// Collect and sort algorithm names for canonical output
	algorithms := make([]string, 0, len(digests))
	for alg := range digests {
		if alg == "" {
			return "", fmt.Errorf("algorithm name cannot be empty")
		}
		algorithms = append(algorithms, alg)
	}
	sort.Strings(algorithms)

	var parts []string
	for _, alg := range algorithms {
		digest := digests[alg]
		if len(digest) == 0 {
			return "", fmt.Errorf("digest for algorithm %q cannot be nil or empty", alg)
		}

		// Byte sequence encoding: :base64:
		b64 := base64.StdEncoding.EncodeToString(digest)
		part := fmt.Sprintf("%s=:%s:", alg, b64)
		parts = append(parts, part)
	}

	return strings.Join(parts, ", "), nil
}
