package base1024

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// symbols builds the expected encoded form from alphabet codes, a negative
// value stands for the terminator glyph with the absolute value as its tag.
func symbols(codes ...int) string {
	out := make([]rune, len(codes))
	for i, c := range codes {
		if c < 0 {
			out[i] = Default.Padding(-c)
		} else {
			out[i] = Default.Rune(c)
		}
	}
	return string(out)
}

func TestEncodeEmpty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "", Encode([]byte{}))
}

func TestEncodeVectors(t *testing.T) {
	samples := []struct {
		name  string
		input []byte
		codes []int
	}{
		{"one byte zero", []byte{0x00}, []int{0, -1}},
		{"one byte", []byte("k"), []int{'k' << 2, -1}},
		{"two bytes", []byte{0, 1}, []int{0, 16, -2}},
		{"three bytes", []byte{0, 1, 2}, []int{0, 16, 128, -3}},
		{"four bytes", []byte{0, 1, 2, 3}, []int{0, 16, 128, 768, -4}},
		{"full quantum", []byte{0xAB, 0xCD, 0xEF, 0x01, 0x23}, []int{687, 222, 960, 291}},
		{"alternating quantum", []byte{0xFF, 0x00, 0xFF, 0x00, 0xFF}, []int{1020, 15, 960, 255}},
		{"ascii remainder", []byte("abc"), []int{389, 550, 192, -3}},
		{
			"quantum plus one",
			[]byte{0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x61},
			[]int{1020, 15, 960, 255, 0x61 << 2, -1},
		},
	}

	for _, sample := range samples {
		t.Run(sample.name, func(t *testing.T) {
			assert.Equal(t, symbols(sample.codes...), Encode(sample.input))
		})
	}
}

func TestEncodeFourthByteSelectsTerminatorTag(t *testing.T) {
	for low := 0; low < 4; low++ {
		got := Encode([]byte{0, 1, 2, byte(low)})
		assert.Equal(t, symbols(0, 16, 128, low<<8, -4), got)
	}
}

func TestEncodeSymbolCountLaw(t *testing.T) {
	perRemainder := []int{0, 2, 3, 4, 5}

	buf := make([]byte, 64)
	for n := 0; n <= len(buf); n++ {
		q, r := n/5, n%5
		want := q*4 + perRemainder[r]
		assert.Equal(t, want, utf8.RuneCountInString(Encode(buf[:n])), "input length %d", n)
		assert.Equal(t, want, symbolLen(n), "symbolLen for input length %d", n)
	}
}

func TestEncodeNoTerminatorOnExactQuanta(t *testing.T) {
	for _, n := range []int{5, 10, 25} {
		for _, r := range Encode(make([]byte, n)) {
			_, tag, ok := Default.Code(r)
			assert.True(t, ok)
			assert.Equal(t, 0, tag)
		}
	}
}
