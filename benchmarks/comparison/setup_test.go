package comparison

import "crypto/rand"

// Shared inputs - generated once at init
var (
	testHMACKey   []byte
	testInput64B  []byte
	testInput1KB  []byte
	testInput64KB []byte
)

func init() {
	// 32-byte key: below the 64-byte block size, so neither side hashes it
	testHMACKey = make([]byte, 32)
	if _, err := rand.Read(testHMACKey); err != nil {
		panic("failed to generate HMAC key: " + err.Error())
	}

	testInput64B = randomBytes(64)
	testInput1KB = randomBytes(1024)
	testInput64KB = randomBytes(64 * 1024)
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate input: " + err.Error())
	}
	return b
}
