// Package digest implements the MD5 (RFC 1321) and SHA-1 (FIPS 180-4)
// message digests as whole-input, value-in/value-out functions, together
// with the Merkle-Damgard length padding both algorithms share.
//
// The typed entry points SumMD5 and SumSHA1 cannot fail. Callers that pick
// the algorithm at runtime use the closed Algorithm enum with
// ComputeDigest; ParseAlgorithm converts a textual name into an Algorithm
// and rejects anything outside the supported set.
//
// Both algorithms are deprecated for security use (collisions are
// practical). They remain here for interoperability with legacy checksums,
// identifiers and HMAC-MD5 / HMAC-SHA1 peers.
//
// All functions are pure, allocate their own working buffers and are safe
// for concurrent use.
package digest

import (
	"errors"
	"fmt"
)

// ErrUnsupportedAlgorithm is returned when an algorithm name or value lies
// outside the supported set. Match it with errors.Is.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// Algorithm identifies one of the supported digest primitives.
// The zero value is not a valid algorithm.
type Algorithm uint8

// Supported algorithms. New primitives are added as new variants.
const (
	MD5 Algorithm = iota + 1
	SHA1
)

// SupportedAlgorithms returns every supported algorithm in declaration order.
func SupportedAlgorithms() []Algorithm {
	return []Algorithm{MD5, SHA1}
}

// ParseAlgorithm converts a textual algorithm name into an Algorithm.
//
// Accepted names:
//   - "MD5", "md5"
//   - "SHA1", "sha1", "sha-1"
//
// Returns an error wrapping ErrUnsupportedAlgorithm for any other name,
// including the empty string.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "MD5", "md5":
		return MD5, nil
	case "SHA1", "sha1", "sha-1":
		return SHA1, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnsupportedAlgorithm, name)
	}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a == MD5 || a == SHA1
}

// String returns the canonical algorithm name ("MD5" or "SHA1").
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "MD5"
	case SHA1:
		return "SHA1"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Size returns the digest size in bytes, or 0 for an invalid algorithm.
func (a Algorithm) Size() int {
	switch a {
	case MD5:
		return MD5Size
	case SHA1:
		return SHA1Size
	default:
		return 0
	}
}

// BlockSize returns the compression block size in bytes, or 0 for an
// invalid algorithm.
func (a Algorithm) BlockSize() int {
	if !a.Valid() {
		return 0
	}
	return BlockSize
}

// check returns an error wrapping ErrUnsupportedAlgorithm if a is invalid.
func (a Algorithm) check() error {
	if !a.Valid() {
		return fmt.Errorf("%w %s", ErrUnsupportedAlgorithm, a)
	}
	return nil
}
