package digest

import (
	stdmd5 "crypto/md5"
	"encoding/hex"
	"strings"
	"testing"
)

// RFC 1321 Appendix A.5 test suite plus a few common vectors.
func TestSumMD5_Vectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"a", "a", "0cc175b9c0f1b6a831c399e269772661"},
		{"abc", "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"message digest", "message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
		{"alphabet", "abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
		{"alphanumeric", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "d174ab98d277d9f5a5611c2c9f419d9f"},
		{"digits x8", strings.Repeat("1234567890", 8), "57edf4a22be3c955ac49da2e2107b67a"},
		{"quick brown fox", "The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := SumMD5([]byte(tt.input))
			if got := hex.EncodeToString(sum[:]); got != tt.want {
				t.Errorf("SumMD5(%q) mismatch:\ngot:  %s\nwant: %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestSumMD5_MillionA(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1MB vector in short mode")
	}
	sum := SumMD5([]byte(strings.Repeat("a", 1000000)))
	if got, want := hex.EncodeToString(sum[:]), "7707d6ae4e027c70eea2a935c2296f21"; got != want {
		t.Errorf("SumMD5(1M x 'a') = %s, want %s", got, want)
	}
}

// Every length around the one- and two-block padding boundaries must agree
// with the standard library.
func TestSumMD5_MatchesStdlib(t *testing.T) {
	data := testPattern(300)
	for n := 0; n <= len(data); n++ {
		got := SumMD5(data[:n])
		want := stdmd5.Sum(data[:n])
		if got != want {
			t.Fatalf("length %d: got %x, want %x", n, got, want)
		}
	}
}

func TestSumMD5_Nil(t *testing.T) {
	if SumMD5(nil) != SumMD5([]byte{}) {
		t.Error("SumMD5(nil) differs from SumMD5(empty)")
	}
}

func TestSumMD5_Deterministic(t *testing.T) {
	data := testPattern(1000)
	first := SumMD5(data)
	for i := 0; i < 10; i++ {
		if got := SumMD5(data); got != first {
			t.Fatalf("call %d: got %x, want %x", i, got, first)
		}
	}
}

func TestSumMD5_DoesNotModifyInput(t *testing.T) {
	data := testPattern(200)
	orig := append([]byte(nil), data...)
	SumMD5(data)
	if string(data) != string(orig) {
		t.Error("SumMD5 modified its input")
	}
}

func TestSumMD5_Avalanche(t *testing.T) {
	data := testPattern(100)
	base := SumMD5(data)

	for _, bit := range []int{0, 7, 100, 799} {
		flipped := append([]byte(nil), data...)
		flipped[bit/8] ^= 1 << (bit % 8)
		sum := SumMD5(flipped)

		if d := bitDistance(base[:], sum[:]); d < len(base)*8/4 {
			t.Errorf("flipping bit %d changed only %d of %d output bits", bit, d, len(base)*8)
		}
	}
}
