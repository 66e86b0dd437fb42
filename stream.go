package base1024

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/corpix/base1024/errors"
)

type StreamOption func(*streamEncoder)

// WithWrap makes the stream encoder break the output into lines of width
// symbols, terminated by a final newline. Zero width disables wrapping.
func WithWrap(width int) StreamOption {
	return func(e *streamEncoder) {
		e.wrap = width
	}
}

// NewStreamEncoder is Alphabet.NewStreamEncoder over the Default alphabet.
func NewStreamEncoder(w io.Writer, options ...StreamOption) io.WriteCloser {
	return Default.NewStreamEncoder(w, options...)
}

// NewStreamEncoder returns an incremental encoder writing symbols to w. It
// buffers at most one quantum between calls, so memory stays bounded for
// arbitrarily large inputs. The trailing group and its terminator are only
// written by Close, the returned writer produces a truncated stream unless
// closed.
func (a *Alphabet) NewStreamEncoder(w io.Writer, options ...StreamOption) io.WriteCloser {
	e := &streamEncoder{w: w, a: a}
	for _, option := range options {
		option(e)
	}
	return e
}

type streamEncoder struct {
	w      io.Writer
	a      *Alphabet
	buf    [quantumBytes]byte
	n      int
	wrap   int
	col    int
	closed bool
	err    error
}

func (e *streamEncoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		e.err = errors.New("base1024: write on closed encoder")
		return 0, e.err
	}

	written := 0
	for len(p) > 0 {
		m := copy(e.buf[e.n:], p)
		e.n += m
		p = p[m:]
		written += m

		if e.n < quantumBytes {
			break
		}
		v := quantumValue(e.buf[0], e.buf[1], e.buf[2], e.buf[3], e.buf[4])
		for i := 0; i < quantumSymbols; i++ {
			if e.err = e.writeSymbol(e.a.symbol(v, i)); e.err != nil {
				return written, e.err
			}
		}
		e.n = 0
	}

	return written, nil
}

// Close flushes the trailing group, if any, and the closing newline of
// wrapped output. It does not close the underlying writer.
func (e *streamEncoder) Close() error {
	if e.closed || e.err != nil {
		return e.err
	}
	e.closed = true

	if r := e.n; r > 0 {
		var q [quantumBytes]byte
		copy(q[:], e.buf[:r])
		v := quantumValue(q[0], q[1], q[2], q[3], q[4])
		for i := 0; i < r; i++ {
			if e.err = e.writeSymbol(e.a.symbol(v, i)); e.err != nil {
				return e.err
			}
		}
		if e.err = e.writeSymbol(e.a.Padding(r)); e.err != nil {
			return e.err
		}
	}

	if e.wrap > 0 && e.col > 0 {
		e.err = e.writeRune('\n')
	}
	return e.err
}

func (e *streamEncoder) writeSymbol(r rune) error {
	if e.wrap > 0 && e.col == e.wrap {
		if err := e.writeRune('\n'); err != nil {
			return err
		}
		e.col = 0
	}
	if err := e.writeRune(r); err != nil {
		return err
	}
	e.col++
	return nil
}

func (e *streamEncoder) writeRune(r rune) error {
	var buf [utf8.UTFMax]byte
	_, err := e.w.Write(buf[:utf8.EncodeRune(buf[:], r)])
	return err
}

// NewStreamDecoder is Alphabet.NewStreamDecoder over the Default alphabet.
func NewStreamDecoder(r io.Reader) io.Reader {
	return Default.NewStreamDecoder(r)
}

// NewStreamDecoder returns an incremental decoder reading symbols from r.
// Newlines between symbols are skipped so wrapped encoder output round
// trips, everything else is validated exactly like Decode and surfaces the
// same Err* conditions from Read.
func (a *Alphabet) NewStreamDecoder(r io.Reader) io.Reader {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &streamDecoder{r: rr, a: a}
}

type streamDecoder struct {
	r          io.RuneReader
	a          *Alphabet
	out        []byte
	group      [quantumSymbols]uint16
	n          int
	pos        int
	terminated bool
	err        error
}

func (d *streamDecoder) Read(p []byte) (int, error) {
	for len(d.out) == 0 && d.err == nil {
		d.fill()
	}
	if len(d.out) > 0 {
		n := copy(p, d.out)
		d.out = d.out[n:]
		return n, nil
	}
	return 0, d.err
}

// fill consumes a single symbol from the source, flushing decoded bytes
// into d.out. A full group is only flushed once the symbol after it shows
// up, because a terminator claims the group it follows.
func (d *streamDecoder) fill() {
	r, size, err := d.r.ReadRune()
	if err != nil {
		d.finish(err)
		return
	}
	if r == '\n' || r == '\r' {
		return
	}
	if r == utf8.RuneError && size == 1 {
		d.err = errors.Wrapf(ErrInvalidSymbol, "invalid UTF-8 at position %d", d.pos)
		return
	}

	if d.terminated {
		d.err = errors.Wrapf(ErrTrailingData, "symbol %q at position %d", r, d.pos)
		return
	}

	code, tag, ok := d.a.Code(r)
	if !ok {
		d.err = errors.Wrapf(ErrInvalidSymbol, "symbol %q at position %d", r, d.pos)
		return
	}

	if tag != 0 {
		if d.n != tag {
			d.err = errors.Wrapf(ErrUnexpectedPadding,
				"terminator for %d bytes after %d data symbols at position %d", tag, d.n, d.pos)
			return
		}
		d.out, err = appendPartial(d.out, d.group[:d.n], tag)
		if err != nil {
			d.err = errors.Wrapf(err, "terminator at position %d", d.pos)
			return
		}
		d.n = 0
		d.terminated = true
		d.pos++
		return
	}

	if d.n == quantumSymbols {
		d.out = appendQuantum(d.out, &d.group)
		d.n = 0
	}
	d.group[d.n] = uint16(code)
	d.n++
	d.pos++
}

func (d *streamDecoder) finish(err error) {
	if err != io.EOF {
		d.err = err
		return
	}
	switch {
	case d.n == quantumSymbols:
		d.out = appendQuantum(d.out, &d.group)
		d.n = 0
		d.err = io.EOF
	case d.n > 0:
		d.err = errors.Wrapf(ErrTruncatedInput, "%d dangling data symbols", d.n)
	default:
		d.err = io.EOF
	}
}
