// Package codec converts between raw byte buffers, fixed-width words and
// their lowercase hexadecimal text form. It is used to present digests
// (test vectors are usually written in hex) and to turn byte-oriented text
// into input for the digest functions.
package codec

import (
	"encoding/binary"
	"encoding/hex"
	"unicode/utf8"
)

// ToHex returns the lowercase hexadecimal encoding of b, two digits per
// byte, without prefix or separators. ToHex(nil) is "".
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// ToHex16 encodes each word as four hex digits, most significant first.
func ToHex16(words []uint16) string {
	buf := make([]byte, 0, len(words)*2)
	for _, w := range words {
		buf = binary.BigEndian.AppendUint16(buf, w)
	}
	return hex.EncodeToString(buf)
}

// ToHex32 encodes each word as eight hex digits, most significant first.
func ToHex32(words []uint32) string {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		buf = binary.BigEndian.AppendUint32(buf, w)
	}
	return hex.EncodeToString(buf)
}

// Uint32ToHex encodes a single word as eight hex digits.
func Uint32ToHex(v uint32) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint32(nil, v))
}

// BytesFromText returns one byte per character of text, keeping only the
// low 8 bits of each. It is meant for byte-oriented ("binary") strings.
//
// Text that is not valid UTF-8 is a raw byte string and is copied byte for
// byte, so BytesFromText(string(b)) returns b for such input. Valid UTF-8
// is read one code point at a time and wider code points are truncated
// rather than UTF-8 encoded.
func BytesFromText(text string) []byte {
	if !utf8.ValidString(text) {
		return []byte(text)
	}

	out := make([]byte, 0, len(text))
	for _, r := range text {
		out = append(out, byte(r))
	}
	return out
}

// Concat returns a new buffer holding a followed by b. Neither input is
// modified and the result never aliases them.
func Concat(a, b []byte) []byte {
	out := make([]byte, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}
