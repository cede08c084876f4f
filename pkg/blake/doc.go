// Package blake implements the BLAKE family of cryptographic hash
// functions (SHA-3 finalist) in the 224, 256, 384 and 512-bit output
// lengths, including the optional per-message salt defined by the
// construction.
//
// Two APIs are provided: a one-shot Hash function for whole buffers, and
// an incremental Hasher that accepts data in arbitrary-sized pieces and
// produces the same digest as the one-shot path for any chunking of the
// same input. Hasher also satisfies the standard hash.Hash interface, so
// it drops into any API that consumes a stock Go hasher.
//
// Note that BLAKE (the original SHA-3 submission) is distinct from the
// later BLAKE2 and BLAKE3 designs; for those, see golang.org/x/crypto
// and the respective third-party modules.
package blake
