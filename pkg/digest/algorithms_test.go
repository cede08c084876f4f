package digest

import (
	"strings"
	"testing"

	"github.com/forcebit/blake-hash-go/pkg/blake"
)

// getAllSupportedAlgorithms returns all supported algorithms as a slice for tests
func getAllSupportedAlgorithms() []string {
	algs := make([]string, 0, len(SupportedAlgorithms))
	for alg := range SupportedAlgorithms {
		algs = append(algs, alg)
	}
	return algs
}

func TestNewDigester_AllSupported(t *testing.T) {
	for _, alg := range getAllSupportedAlgorithms() {
		t.Run(alg, func(t *testing.T) {
			h, err := NewDigester(alg)
			if err != nil {
				t.Fatalf("NewDigester(%q) error: %v", alg, err)
			}
			wantSize, err := DigestSize(alg)
			if err != nil {
				t.Fatalf("DigestSize(%q) error: %v", alg, err)
			}
			if h.Size() != wantSize {
				t.Errorf("Size() = %d, want %d", h.Size(), wantSize)
			}
			if got := len(h.Sum(nil)); got != wantSize {
				t.Errorf("len(Sum(nil)) = %d, want %d", got, wantSize)
			}
		})
	}
}

func TestNewDigester_Unsupported(t *testing.T) {
	unsupported := []string{
		"", "md5", "sha-1", "crc32c", "blake-128", "blake-1024",
		"blake3-256", "BLAKE-256", "sha256",
	}
	for _, alg := range unsupported {
		if _, err := NewDigester(alg); err == nil {
			t.Errorf("NewDigester(%q) succeeded, want error", alg)
		}
		if _, ok := SupportedAlgorithms[alg]; ok {
			t.Errorf("SupportedAlgorithms contains %q", alg)
		}
	}
}

func TestDigestSize_Unsupported(t *testing.T) {
	if _, err := DigestSize("md5"); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("DigestSize(md5) error = %v, want unsupported-algorithm error", err)
	}
}

func TestNewSaltedDigester(t *testing.T) {
	tests := []struct {
		algorithm string
		saltLen   int
		wantErr   bool
	}{
		{AlgorithmBLAKE224, blake.SaltSize256, false},
		{AlgorithmBLAKE256, blake.SaltSize256, false},
		{AlgorithmBLAKE384, blake.SaltSize512, false},
		{AlgorithmBLAKE512, blake.SaltSize512, false},
		// Wrong family salt lengths are rejected.
		{AlgorithmBLAKE256, 32, true},
		{AlgorithmBLAKE512, 16, true},
		// Only the BLAKE family has the construction's salt input;
		// blake2b keying is a different mechanism.
		{AlgorithmSHA256, 16, true},
		{AlgorithmBLAKE2b256, 16, true},
		{"blake-1024", 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			h, err := NewSaltedDigester(tt.algorithm, make([]byte, tt.saltLen))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewSaltedDigester(%q, %d bytes) succeeded, want error", tt.algorithm, tt.saltLen)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSaltedDigester(%q) error: %v", tt.algorithm, err)
			}
			if _, err := h.Write([]byte("payload")); err != nil {
				t.Fatalf("Write error: %v", err)
			}
			if got, want := len(h.Sum(nil)), h.Size(); got != want {
				t.Errorf("len(Sum(nil)) = %d, want %d", got, want)
			}
		})
	}
}
