package base1024

import (
	"strings"
)

// Encode maps src onto symbols of the Default alphabet. It is total: any
// finite input encodes, empty input yields an empty string.
func Encode(src []byte) string {
	return Default.Encode(src)
}

// Encode maps src onto symbols of this alphabet.
//
// Each full quantum of 5 bytes is read as a 40 bit big-endian value and
// split MSB-first into four 10 bit codes. A trailing group of r bytes, r in
// 1..4, is zero-extended to a full quantum, the first r codes of that
// quantum are emitted and the terminator glyph tagged r closes the stream.
func (a *Alphabet) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(symbolLen(len(src)) * 4) // glyphs are 3-4 bytes of UTF-8 each

	for len(src) >= quantumBytes {
		v := quantumValue(src[0], src[1], src[2], src[3], src[4])
		for i := 0; i < quantumSymbols; i++ {
			sb.WriteRune(a.symbol(v, i))
		}
		src = src[quantumBytes:]
	}

	if r := len(src); r > 0 {
		var q [quantumBytes]byte
		copy(q[:], src)
		v := quantumValue(q[0], q[1], q[2], q[3], q[4])
		for i := 0; i < r; i++ {
			sb.WriteRune(a.symbol(v, i))
		}
		sb.WriteRune(a.Padding(r))
	}

	return sb.String()
}

func (a *Alphabet) symbol(v uint64, i int) rune {
	return a.runes[v>>(codeBits*(quantumSymbols-1-i))&codeMask]
}

func quantumValue(b0, b1, b2, b3, b4 byte) uint64 {
	return uint64(b0)<<32 | uint64(b1)<<24 | uint64(b2)<<16 | uint64(b3)<<8 | uint64(b4)
}

// symbolLen is the number of symbols Encode produces for n input bytes:
// 4 per full quantum, the leftover byte count plus one terminator after.
func symbolLen(n int) int {
	q, r := n/quantumBytes, n%quantumBytes
	if r == 0 {
		return q * quantumSymbols
	}
	return q*quantumSymbols + r + 1
}
