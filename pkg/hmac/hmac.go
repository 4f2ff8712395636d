// Package hmac implements HMAC (RFC 2104) over the MD5 and SHA-1 digests
// of pkg/digest.
//
// The construction treats the digest functions as a black box: it never
// re-implements padding and works identically for every digest.Algorithm
// with a 64-byte block.
//
// # Basic Usage
//
// Compute a MAC with a fixed algorithm:
//
//	mac := hmac.SHA1(key, message)
//	fmt.Println(codec.ToHex(mac[:]))
//
// Compute a MAC with an algorithm chosen at runtime:
//
//	alg, err := digest.ParseAlgorithm(name)
//	if err != nil {
//	    return err
//	}
//	mac, err := hmac.Sum(alg, key, message)
//
// Verify a received MAC:
//
//	if err := hmac.Verify(digest.SHA1, key, message, received); err != nil {
//	    // MAC invalid
//	}
//
// # Security
//
//   - Verify uses constant-time comparison to prevent timing attacks
//   - HMAC-MD5 and HMAC-SHA1 are still unbroken as MACs, but new protocols
//     should prefer HMAC-SHA256
//   - Keys longer than 64 bytes are hashed first and gain no strength
package hmac

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/forcebit/legacy-digests-go/pkg/codec"
	"github.com/forcebit/legacy-digests-go/pkg/digest"
)

// Pad bytes (RFC 2104 Section 2).
const (
	ipadByte = 0x36
	opadByte = 0x5c
)

var (
	// ErrMACLength is returned by Verify when the MAC has the wrong size for
	// the algorithm.
	ErrMACLength = errors.New("invalid MAC length")

	// ErrVerificationFailed is returned by Verify when the MAC does not match.
	ErrVerificationFailed = errors.New("hmac verification failed")
)

// MD5 returns HMAC-MD5 of message under key.
func MD5(key, message []byte) [digest.MD5Size]byte {
	var out [digest.MD5Size]byte
	copy(out[:], compute(digest.MD5, key, message))
	return out
}

// SHA1 returns HMAC-SHA1 of message under key.
func SHA1(key, message []byte) [digest.SHA1Size]byte {
	var out [digest.SHA1Size]byte
	copy(out[:], compute(digest.SHA1, key, message))
	return out
}

// Sum computes the HMAC of message under key using alg as the underlying
// digest.
//
// Parameters:
//
//	alg - digest.MD5 or digest.SHA1
//	key - shared secret of any length (keys over 64 bytes are hashed first)
//	message - data to authenticate
//
// Returns:
//
//	alg.Size() bytes (16 for MD5, 20 for SHA-1)
//
// Error Conditions:
//   - alg is not a supported algorithm (wraps digest.ErrUnsupportedAlgorithm)
//
// Neither key nor message is modified.
func Sum(alg digest.Algorithm, key, message []byte) ([]byte, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("hmac: %w %s", digest.ErrUnsupportedAlgorithm, alg)
	}
	return compute(alg, key, message), nil
}

// Verify validates mac against the HMAC of message under key.
//
// Parameters:
//
//	alg - digest.MD5 or digest.SHA1
//	key - the same shared secret used to produce mac
//	message - the authenticated data
//	mac - raw MAC bytes (not hex-encoded)
//
// Returns:
//
//	nil if mac is valid
//	error if mac is invalid or verification cannot be performed
//
// Error Conditions:
//   - alg is not a supported algorithm (wraps digest.ErrUnsupportedAlgorithm)
//   - mac is not alg.Size() bytes (wraps ErrMACLength)
//   - mac does not match (wraps ErrVerificationFailed)
//
// Security:
//   - Uses crypto/subtle.ConstantTimeCompare to prevent timing attacks
func Verify(alg digest.Algorithm, key, message, mac []byte) error {
	expected, err := Sum(alg, key, message)
	if err != nil {
		return err
	}

	if len(mac) != len(expected) {
		return fmt.Errorf("%w: HMAC-%s MAC must be %d bytes, got %d bytes", ErrMACLength, alg, len(expected), len(mac))
	}

	if subtle.ConstantTimeCompare(mac, expected) != 1 {
		return fmt.Errorf("%w for HMAC-%s", ErrVerificationFailed, alg)
	}

	return nil
}

// compute runs the HMAC construction. alg must be valid.
func compute(alg digest.Algorithm, key, message []byte) []byte {
	sum := func(b []byte) []byte {
		switch alg {
		case digest.MD5:
			out := digest.SumMD5(b)
			return out[:]
		case digest.SHA1:
			out := digest.SumSHA1(b)
			return out[:]
		default:
			panic(fmt.Sprintf("hmac: no digest for %s", alg))
		}
	}

	blockSize := alg.BlockSize()
	if len(key) > blockSize {
		key = sum(key)
	}

	// len(key) <= blockSize here, so both pads are exactly one block.
	padSize := max(len(key), blockSize)
	ipad := make([]byte, padSize)
	opad := make([]byte, padSize)
	copy(ipad, key)
	copy(opad, key)
	for i := 0; i < blockSize; i++ {
		ipad[i] ^= ipadByte
		opad[i] ^= opadByte
	}

	inner := sum(codec.Concat(ipad, message))
	return sum(codec.Concat(opad, inner))
}
