package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	As     = errors.As
	Cause  = errors.Cause
	Is     = errors.Is
	New    = errors.New
	Newf   = errors.Newf
	Unwrap = errors.Unwrap
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
)
