package base1024

import (
	"github.com/corpix/base1024/errors"
)

// Decode reverses Encode over the Default alphabet.
func Decode(s string) ([]byte, error) {
	return Default.Decode(s)
}

// Decode reverses Encode. It is strict: the first violation aborts with one
// of the Err* conditions and no partial output. A terminator glyph must be
// the last symbol of the stream and must be preceded by exactly as many
// data symbols as its tag, the zero fill bits of the final data symbol must
// be zero on the wire. Invalid UTF-8 is rejected as an invalid symbol.
func (a *Alphabet) Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/8*quantumBytes+quantumBytes)

	var (
		group      [quantumSymbols]uint16
		n          int
		pos        int
		terminated bool
	)
	for _, r := range s {
		if terminated {
			return nil, errors.Wrapf(ErrTrailingData, "symbol %q at position %d", r, pos)
		}

		code, tag, ok := a.Code(r)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSymbol, "symbol %q at position %d", r, pos)
		}

		if tag != 0 {
			if n != tag {
				return nil, errors.Wrapf(ErrUnexpectedPadding,
					"terminator for %d bytes after %d data symbols at position %d", tag, n, pos)
			}
			var err error
			out, err = appendPartial(out, group[:n], tag)
			if err != nil {
				return nil, errors.Wrapf(err, "terminator at position %d", pos)
			}
			n = 0
			terminated = true
			pos++
			continue
		}

		if n == quantumSymbols {
			out = appendQuantum(out, &group)
			n = 0
		}
		group[n] = uint16(code)
		n++
		pos++
	}

	switch {
	case n == quantumSymbols:
		out = appendQuantum(out, &group)
	case n > 0:
		return nil, errors.Wrapf(ErrTruncatedInput, "%d dangling data symbols", n)
	}

	return out, nil
}

func appendQuantum(dst []byte, group *[quantumSymbols]uint16) []byte {
	var v uint64
	for _, c := range group {
		v = v<<codeBits | uint64(c)
	}
	return append(dst,
		byte(v>>32), byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// appendPartial reverses the trailing group: tag codes carry 8*tag payload
// bits left-justified in 10*tag bits, the low fill bits must be zero.
func appendPartial(dst []byte, codes []uint16, tag int) ([]byte, error) {
	var v uint64
	for _, c := range codes {
		v = v<<codeBits | uint64(c)
	}

	total := uint(codeBits * len(codes))
	fill := total - uint(8*tag)
	if v&(1<<fill-1) != 0 {
		return dst, ErrNonZeroPadBits
	}

	for i := 1; i <= tag; i++ {
		dst = append(dst, byte(v>>(total-uint(8*i))))
	}
	return dst, nil
}
