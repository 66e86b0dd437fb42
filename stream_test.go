package base1024

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/base1024/errors"
)

func wrapString(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	var (
		sb  strings.Builder
		col int
	)
	for _, r := range s {
		if col == width {
			sb.WriteRune('\n')
			col = 0
		}
		sb.WriteRune(r)
		col++
	}
	sb.WriteRune('\n')
	return sb.String()
}

func TestStreamEncoderMatchesEncode(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for n := 0; n <= 32; n++ {
		buf := make([]byte, n)
		rng.Read(buf)

		var out bytes.Buffer
		enc := NewStreamEncoder(&out)
		for _, b := range buf { // one byte per call, worst case chunking
			_, err := enc.Write([]byte{b})
			require.NoError(t, err)
		}
		require.NoError(t, enc.Close())

		assert.Equal(t, Encode(buf), out.String(), "input length %d", n)
	}
}

func TestStreamEncoderWrap(t *testing.T) {
	buf := []byte("wrap me around, ten symbols per line please")

	var out bytes.Buffer
	enc := NewStreamEncoder(&out, WithWrap(10))
	_, err := enc.Write(buf)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	assert.Equal(t, wrapString(Encode(buf), 10), out.String())

	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 10)
	}
}

func TestStreamEncoderEmpty(t *testing.T) {
	var out bytes.Buffer
	enc := NewStreamEncoder(&out, WithWrap(76))
	require.NoError(t, enc.Close())
	assert.Equal(t, "", out.String())
}

func TestStreamEncoderCloseIsTerminal(t *testing.T) {
	var out bytes.Buffer
	enc := NewStreamEncoder(&out)
	_, err := enc.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, enc.Close()) // idempotent

	_, err = enc.Write([]byte("more"))
	assert.Error(t, err)
}

func TestStreamDecoderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for n := 0; n <= 32; n++ {
		buf := make([]byte, n)
		rng.Read(buf)

		src := iotest.OneByteReader(strings.NewReader(Encode(buf)))
		out, err := io.ReadAll(NewStreamDecoder(src))
		require.NoError(t, err, "input length %d", n)
		assert.Equal(t, buf, out, "input length %d", n)
	}
}

func TestStreamDecoderSkipsNewlines(t *testing.T) {
	buf := []byte("newlines between symbols are transport framing, not data")

	var encoded bytes.Buffer
	enc := NewStreamEncoder(&encoded, WithWrap(7))
	_, err := enc.Write(buf)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	out, err := io.ReadAll(NewStreamDecoder(&encoded))
	require.NoError(t, err)
	assert.Equal(t, buf, out)
}

func TestStreamDecoderErrors(t *testing.T) {
	samples := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown glyph", "not symbols", ErrInvalidSymbol},
		{"truncated group", symbols(0, 16), ErrTruncatedInput},
		{"terminator mid-stream", symbols(0, -1, 0), ErrTrailingData},
		{"tag mismatch", symbols(0, 16, 128, -2), ErrUnexpectedPadding},
		{"non-zero fill", symbols(1, -1), ErrNonZeroPadBits},
	}

	for _, sample := range samples {
		t.Run(sample.name, func(t *testing.T) {
			_, err := io.ReadAll(NewStreamDecoder(strings.NewReader(sample.input)))
			require.Error(t, err)
			assert.True(t, errors.Is(err, sample.want), "want %v, got %v", sample.want, err)
		})
	}
}

func TestStreamDecoderEmpty(t *testing.T) {
	out, err := io.ReadAll(NewStreamDecoder(strings.NewReader("")))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStreamDecoderPropagatesSourceError(t *testing.T) {
	boom := errors.New("source failure")
	_, err := io.ReadAll(NewStreamDecoder(iotest.ErrReader(boom)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.False(t, IsDecodeError(err))
}
