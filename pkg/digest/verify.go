package digest

import (
	"crypto/subtle"
	"errors"
	"fmt"
)

// ErrDigestMismatch is returned by VerifyDigest when the recomputed digest
// differs from the expected one.
var ErrDigestMismatch = errors.New("digest mismatch")

// VerifyDigest verifies that body hashes to expected under alg. Uses
// constant-time comparison via crypto/subtle.ConstantTimeCompare.
//
// Parameters:
//   - body: The complete message as bytes
//   - alg: The digest algorithm expected was produced with
//   - expected: The raw (not hex-encoded) digest
//
// Returns error if:
//   - alg is not a supported algorithm (wraps ErrUnsupportedAlgorithm)
//   - expected is not alg.Size() bytes long
//   - the digests differ (wraps ErrDigestMismatch)
func VerifyDigest(body []byte, alg Algorithm, expected []byte) error {
	if err := alg.check(); err != nil {
		return err
	}

	if len(expected) != alg.Size() {
		return fmt.Errorf("%s digest must be %d bytes, got %d bytes", alg, alg.Size(), len(expected))
	}

	actual, err := ComputeDigest(body, alg)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(actual, expected) != 1 {
		return fmt.Errorf("%w for algorithm %s: verification failed", ErrDigestMismatch, alg)
	}

	return nil
}
