package base1024

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetBijective(t *testing.T) {
	seen := map[rune]struct{}{}
	for c := 0; c < alphabetSize; c++ {
		r := Default.Rune(c)

		_, dup := seen[r]
		require.False(t, dup, "glyph %q carried by more than one code", r)
		seen[r] = struct{}{}

		code, tag, ok := Default.Code(r)
		require.True(t, ok)
		assert.Equal(t, 0, tag)
		assert.Equal(t, c, code)
	}
}

func TestAlphabetPaddingDisjoint(t *testing.T) {
	for tag := 1; tag <= paddingCount; tag++ {
		r := Default.Padding(tag)

		code, gotTag, ok := Default.Code(r)
		require.True(t, ok)
		assert.Equal(t, 0, code)
		assert.Equal(t, tag, gotTag)

		for c := 0; c < alphabetSize; c++ {
			require.NotEqual(t, Default.Rune(c), r)
		}
	}
}

func TestNewAlphabetRejectsShort(t *testing.T) {
	assert.Panics(t, func() {
		NewAlphabet("☕⚓⚜⚡")
	})
}

func TestNewAlphabetRejectsLong(t *testing.T) {
	assert.Panics(t, func() {
		NewAlphabet(defaultAlphabet + "☃")
	})
}

func TestNewAlphabetRejectsRepeats(t *testing.T) {
	glyphs := []rune(defaultAlphabet)
	glyphs[1] = glyphs[0]
	assert.Panics(t, func() {
		NewAlphabet(string(glyphs))
	})
}

func TestAlphabetUnknownRune(t *testing.T) {
	for _, r := range []rune{'A', ' ', '\n', '�', '☃'} {
		_, _, ok := Default.Code(r)
		assert.False(t, ok, "rune %q should not be part of the alphabet", r)
	}
}
