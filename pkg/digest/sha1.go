package digest

import (
	"encoding/binary"
	"math/bits"
)

// SHA1Size is the size of a SHA-1 digest in bytes.
const SHA1Size = 20

// SHA-1 initialization vector (FIPS 180-4 Section 5.3.1).
const (
	sha1Init0 = 0x67452301
	sha1Init1 = 0xefcdab89
	sha1Init2 = 0x98badcfe
	sha1Init3 = 0x10325476
	sha1Init4 = 0xc3d2e1f0
)

// Round constants, one per 20-round group.
const (
	sha1K0 = 0x5a827999
	sha1K1 = 0x6ed9eba1
	sha1K2 = 0x8f1bbcdc
	sha1K3 = 0xca62c1d6
)

// SumSHA1 returns the SHA-1 digest (FIPS 180-4) of data.
//
// The whole input is framed with Pad using a big-endian length field and
// compressed block by block. data is not modified; a nil slice hashes as
// the empty message.
//
// SHA-1 is vulnerable to collision attacks and should not be used where
// collision resistance matters.
func SumSHA1(data []byte) [SHA1Size]byte {
	h := [5]uint32{sha1Init0, sha1Init1, sha1Init2, sha1Init3, sha1Init4}

	buf := Pad(data, binary.BigEndian)
	for len(buf) >= BlockSize {
		sha1Block(&h, buf[:BlockSize])
		buf = buf[BlockSize:]
	}

	var out [SHA1Size]byte
	for i, v := range h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// sha1Block expands one 64-byte block into the 80-word schedule, runs the
// 80 rounds and adds the result into h.
func sha1Block(h *[5]uint32, p []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for j := 16; j < 80; j++ {
		w[j] = bits.RotateLeft32(w[j-3]^w[j-8]^w[j-14]^w[j-16], 1)
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
	for j := 0; j < 80; j++ {
		var f, k uint32
		switch {
		case j < 20:
			f, k = (b&c)|(^b&d), sha1K0
		case j < 40:
			f, k = b^c^d, sha1K1
		case j < 60:
			f, k = (b&c)|(b&d)|(c&d), sha1K2
		default:
			f, k = b^c^d, sha1K3
		}
		t := bits.RotateLeft32(a, 5) + f + e + w[j] + k
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}
