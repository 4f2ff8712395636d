package digest

import "encoding/binary"

// BlockSize is the compression block size in bytes shared by MD5 and SHA-1.
const BlockSize = 64

// lengthFieldSize is the size of the trailing bit-length field.
const lengthFieldSize = 8

// PaddedLen returns the length of the framed buffer for an n-byte message:
// the smallest multiple of BlockSize that holds the message, the 0x80
// marker and the 8-byte length field.
//
// Messages whose length mod 64 lies in [56,63] spill into one extra block.
func PaddedLen(n int) int {
	return (n + 1 + lengthFieldSize + BlockSize - 1) / BlockSize * BlockSize
}

// Pad frames message into a sequence of 64-byte blocks suitable for the
// MD5 and SHA-1 compression functions.
//
// Layout of the returned buffer (length PaddedLen(len(message))):
//
//	message | 0x80 | 0x00 ... 0x00 | bit length (uint64, order)
//
// MD5 uses binary.LittleEndian for the length field, SHA-1 uses
// binary.BigEndian. The bit length is computed modulo 2^64.
//
// Pad never modifies message and always returns a freshly allocated buffer.
func Pad(message []byte, order binary.ByteOrder) []byte {
	n := len(message)
	buf := make([]byte, PaddedLen(n))
	copy(buf, message)
	buf[n] = 0x80
	order.PutUint64(buf[len(buf)-lengthFieldSize:], uint64(n)<<3)
	return buf
}
