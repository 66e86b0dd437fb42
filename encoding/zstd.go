package encoding

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

type EncodeDecoderZstd struct {
	*EncodeDecoderBase1024
}

var _ EncodeDecoder = &EncodeDecoderZstd{}

//

func (e *EncodeDecoderZstd) Encode(buf []byte) ([]byte, error) {
	w := bytes.NewBuffer(nil)
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, err
	}
	_, err = enc.Write(buf)
	if err != nil {
		enc.Close()
		return nil, err
	}
	// Close writes the frame epilogue, the buffer holds no complete
	// frame until then
	err = enc.Close()
	if err != nil {
		return nil, err
	}
	return e.EncodeDecoderBase1024.Encode(w.Bytes())
}

func (e *EncodeDecoderZstd) Decode(buf []byte) ([]byte, error) {
	raw, err := e.EncodeDecoderBase1024.Decode(buf)
	if err != nil {
		return nil, err
	}

	w := bytes.NewBuffer(nil)
	decoder, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	_, err = w.ReadFrom(decoder)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func NewEncodeDecoderZstd() *EncodeDecoderZstd {
	return &EncodeDecoderZstd{EncodeDecoderBase1024: NewEncodeDecoderBase1024()}
}
