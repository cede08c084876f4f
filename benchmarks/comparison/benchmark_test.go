// Package comparison benchmarks the BLAKE engine against the hash
// families most often considered alongside it: BLAKE2b and SHA-3 from
// golang.org/x/crypto and SHA-2 from the standard library.
//
// Run with: go test -bench=. -benchmem
package comparison

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"testing"

	"github.com/forcebit/blake-hash-go/pkg/blake"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

func benchmarkHasher(b *testing.B, newHash func() hash.Hash, data []byte) {
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h := newHash()
		h.Write(data)
		h.Sum(nil)
	}
}

func newBLAKE2b256() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

func newBLAKE2b512() hash.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	return h
}

func newSHA3_256() hash.Hash { return sha3.New256() }
func newSHA3_512() hash.Hash { return sha3.New512() }

// =============================================================================
// 256-bit class
// =============================================================================

func BenchmarkBLAKE256_1KB(b *testing.B)  { benchmarkHasher(b, func() hash.Hash { return blake.New256() }, data1KB) }
func BenchmarkBLAKE256_64KB(b *testing.B) { benchmarkHasher(b, func() hash.Hash { return blake.New256() }, data64KB) }
func BenchmarkBLAKE256_1MB(b *testing.B)  { benchmarkHasher(b, func() hash.Hash { return blake.New256() }, data1MB) }

func BenchmarkBLAKE2b256_1KB(b *testing.B)  { benchmarkHasher(b, newBLAKE2b256, data1KB) }
func BenchmarkBLAKE2b256_64KB(b *testing.B) { benchmarkHasher(b, newBLAKE2b256, data64KB) }
func BenchmarkBLAKE2b256_1MB(b *testing.B)  { benchmarkHasher(b, newBLAKE2b256, data1MB) }

func BenchmarkSHA3_256_1KB(b *testing.B)  { benchmarkHasher(b, newSHA3_256, data1KB) }
func BenchmarkSHA3_256_64KB(b *testing.B) { benchmarkHasher(b, newSHA3_256, data64KB) }
func BenchmarkSHA3_256_1MB(b *testing.B)  { benchmarkHasher(b, newSHA3_256, data1MB) }

func BenchmarkSHA256_1KB(b *testing.B)  { benchmarkHasher(b, sha256.New, data1KB) }
func BenchmarkSHA256_64KB(b *testing.B) { benchmarkHasher(b, sha256.New, data64KB) }
func BenchmarkSHA256_1MB(b *testing.B)  { benchmarkHasher(b, sha256.New, data1MB) }

// =============================================================================
// 512-bit class
// =============================================================================

func BenchmarkBLAKE512_1KB(b *testing.B)  { benchmarkHasher(b, func() hash.Hash { return blake.New512() }, data1KB) }
func BenchmarkBLAKE512_64KB(b *testing.B) { benchmarkHasher(b, func() hash.Hash { return blake.New512() }, data64KB) }
func BenchmarkBLAKE512_1MB(b *testing.B)  { benchmarkHasher(b, func() hash.Hash { return blake.New512() }, data1MB) }

func BenchmarkBLAKE2b512_1KB(b *testing.B)  { benchmarkHasher(b, newBLAKE2b512, data1KB) }
func BenchmarkBLAKE2b512_64KB(b *testing.B) { benchmarkHasher(b, newBLAKE2b512, data64KB) }
func BenchmarkBLAKE2b512_1MB(b *testing.B)  { benchmarkHasher(b, newBLAKE2b512, data1MB) }

func BenchmarkSHA3_512_1KB(b *testing.B)  { benchmarkHasher(b, newSHA3_512, data1KB) }
func BenchmarkSHA3_512_64KB(b *testing.B) { benchmarkHasher(b, newSHA3_512, data64KB) }
func BenchmarkSHA3_512_1MB(b *testing.B)  { benchmarkHasher(b, newSHA3_512, data1MB) }

func BenchmarkSHA512_1KB(b *testing.B)  { benchmarkHasher(b, sha512.New, data1KB) }
func BenchmarkSHA512_64KB(b *testing.B) { benchmarkHasher(b, sha512.New, data64KB) }
func BenchmarkSHA512_1MB(b *testing.B)  { benchmarkHasher(b, sha512.New, data1MB) }
