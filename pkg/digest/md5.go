package digest

import (
	"encoding/binary"
	"math/bits"
)

// MD5Size is the size of an MD5 digest in bytes.
const MD5Size = 16

// MD5 initialization vector (RFC 1321 Section 3.3).
const (
	md5Init0 = 0x67452301
	md5Init1 = 0xefcdab89
	md5Init2 = 0x98badcfe
	md5Init3 = 0x10325476
)

// md5T holds the additive constants T[i] = floor(abs(sin(i+1)) * 2^32).
var md5T = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// md5S holds the left-rotation amount for each round.
var md5S = [64]uint8{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// md5X holds the message word index consumed by each round.
var md5X = [64]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	1, 6, 11, 0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12,
	5, 8, 11, 14, 1, 4, 7, 10, 13, 0, 3, 6, 9, 12, 15, 2,
	0, 7, 14, 5, 12, 3, 10, 1, 8, 15, 6, 13, 4, 11, 2, 9,
}

// SumMD5 returns the MD5 digest (RFC 1321) of data.
//
// The whole input is framed with Pad using a little-endian length field and
// compressed block by block. data is not modified; a nil slice hashes as
// the empty message.
//
// MD5 is cryptographically broken. It is provided for interoperability
// with legacy identifiers and checksums, not for security decisions.
func SumMD5(data []byte) [MD5Size]byte {
	s := [4]uint32{md5Init0, md5Init1, md5Init2, md5Init3}

	buf := Pad(data, binary.LittleEndian)
	for len(buf) >= BlockSize {
		md5Block(&s, buf[:BlockSize])
		buf = buf[BlockSize:]
	}

	var out [MD5Size]byte
	for i, v := range s {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// md5Block runs the 64 MD5 rounds over one 64-byte block and adds the
// result into s.
func md5Block(s *[4]uint32, p []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	a, b, c, d := s[0], s[1], s[2], s[3]
	for j := 0; j < 64; j++ {
		var f uint32
		switch {
		case j < 16:
			f = (b & c) | (^b & d)
		case j < 32:
			f = (b & d) | (c &^ d)
		case j < 48:
			f = b ^ c ^ d
		default:
			f = c ^ (b | ^d)
		}
		f += a + x[md5X[j]] + md5T[j]
		a, b, c, d = d, b+bits.RotateLeft32(f, int(md5S[j])), b, c
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
}
