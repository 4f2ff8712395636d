package digest

import "fmt"

// ComputeDigest computes the digest of the entire body using the specified
// algorithm. It is the runtime-dispatched counterpart of SumMD5 and
// SumSHA1 and returns a freshly allocated slice of alg.Size() bytes.
//
// Returns error if the algorithm is not a supported variant; no digest
// work is done in that case.
func ComputeDigest(body []byte, alg Algorithm) ([]byte, error) {
	switch alg {
	case MD5:
		sum := SumMD5(body)
		return sum[:], nil
	case SHA1:
		sum := SumSHA1(body)
		return sum[:], nil
	default:
		return nil, fmt.Errorf("failed to compute digest: %w", alg.check())
	}
}
