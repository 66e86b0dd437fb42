package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/corpix/base1024"
	"github.com/corpix/base1024/config"
	"github.com/corpix/base1024/encoding"
	"github.com/corpix/base1024/errors"
	"github.com/corpix/base1024/log"
)

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open input %q", path)
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create output %q", path)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

//

func codecFlags(encode bool) Flags {
	flags := Flags{
		&PathFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "input file, - for standard input",
			Value:   "-",
		},
		&PathFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file, - for standard output",
			Value:   "-",
		},
		&BoolFlag{
			Name:    "compress",
			Aliases: []string{"z"},
			Usage:   "pass payload through zstd before the codec",
		},
	}
	if encode {
		flags = append(flags, &IntFlag{
			Name:    "wrap",
			Aliases: []string{"w"},
			Usage:   "encoded line width in symbols, 0 disables wrapping",
		})
	}
	return flags
}

func encodeAction(cfg func() *config.CodecConfig) Action {
	return func(ctx *Context) error {
		conf := cfg()

		in, err := openInput(ctx.Path("input"))
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := openOutput(ctx.Path("output"))
		if err != nil {
			return err
		}
		defer out.Close()

		if conf.Compress || ctx.Bool("compress") {
			buf, err := io.ReadAll(in)
			if err != nil {
				return errors.Wrap(err, "failed to read input")
			}
			enc, err := encoding.NewEncodeDecoderZstd().Encode(buf)
			if err != nil {
				return errors.Wrap(err, "failed to encode input")
			}
			enc = append(enc, '\n')
			_, err = out.Write(enc)
			if err != nil {
				return errors.Wrap(err, "failed to write output")
			}
			log.Debug().Int("bytes", len(buf)).Msg("encoded with compression")
			return nil
		}

		wrap := conf.Wrap
		if ctx.IsSet("wrap") {
			wrap = ctx.Int("wrap")
		}

		enc := base1024.NewStreamEncoder(out, base1024.WithWrap(wrap))
		n, err := io.Copy(enc, in)
		if err != nil {
			return errors.Wrap(err, "failed to encode input")
		}
		err = enc.Close()
		if err != nil {
			return errors.Wrap(err, "failed to flush encoder")
		}

		log.Debug().Int64("bytes", n).Msg("encoded")
		return nil
	}
}

func decodeAction(cfg func() *config.CodecConfig) Action {
	return func(ctx *Context) error {
		conf := cfg()

		in, err := openInput(ctx.Path("input"))
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := openOutput(ctx.Path("output"))
		if err != nil {
			return err
		}
		defer out.Close()

		if conf.Compress || ctx.Bool("compress") {
			buf, err := io.ReadAll(in)
			if err != nil {
				return errors.Wrap(err, "failed to read input")
			}
			dec, err := encoding.NewEncodeDecoderZstd().Decode(bytes.TrimSpace(buf))
			if err != nil {
				return errors.Wrap(err, "failed to decode input")
			}
			_, err = out.Write(dec)
			if err != nil {
				return errors.Wrap(err, "failed to write output")
			}
			log.Debug().Int("bytes", len(dec)).Msg("decoded with compression")
			return nil
		}

		n, err := io.Copy(out, base1024.NewStreamDecoder(in))
		if err != nil {
			return errors.Wrap(err, "failed to decode input")
		}

		log.Debug().Int64("bytes", n).Msg("decoded")
		return nil
	}
}

// WithCodecTools mounts the encode and decode commands. Decode failures
// propagate as errors and terminate the process with a non-zero exit code.
func WithCodecTools(cfg func() *config.CodecConfig) Option {
	return WithCommands(Commands{
		&Command{
			Name:    "encode",
			Aliases: []string{"e"},
			Usage:   "Encode a file or standard input into base1024 symbols",
			Flags:   codecFlags(true),
			Action:  encodeAction(cfg),
		},
		&Command{
			Name:    "decode",
			Aliases: []string{"d"},
			Usage:   "Decode base1024 symbols from a file or standard input",
			Flags:   codecFlags(false),
			Action:  decodeAction(cfg),
		},
	})
}
