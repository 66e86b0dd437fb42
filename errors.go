package base1024

import (
	"github.com/corpix/base1024/errors"
)

// Decode failure conditions. Decode wraps these with the offending symbol
// position, match with errors.Is.
var (
	ErrInvalidSymbol     = errors.New("symbol is not part of the alphabet")
	ErrUnexpectedPadding = errors.New("terminator tag does not match its group")
	ErrTrailingData      = errors.New("data after terminator")
	ErrTruncatedInput    = errors.New("input ends inside a symbol group")
	ErrNonZeroPadBits    = errors.New("non-zero fill bits in final symbol")
)

// IsDecodeError reports whether err is one of the Decode failure conditions
// above, as opposed to an underlying source or sink error.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrInvalidSymbol) ||
		errors.Is(err, ErrUnexpectedPadding) ||
		errors.Is(err, ErrTrailingData) ||
		errors.Is(err, ErrTruncatedInput) ||
		errors.Is(err, ErrNonZeroPadBits)
}
