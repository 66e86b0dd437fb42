package encoding

import (
	"github.com/corpix/base1024"
)

type EncodeDecoder interface {
	Encode([]byte) ([]byte, error)
	Decode([]byte) ([]byte, error)
}

//

type EncodeDecoderBase1024 struct {
	Alphabet *base1024.Alphabet
}

var _ EncodeDecoder = &EncodeDecoderBase1024{}

func (e *EncodeDecoderBase1024) Encode(buf []byte) ([]byte, error) {
	return []byte(e.Alphabet.Encode(buf)), nil
}

func (e *EncodeDecoderBase1024) Decode(buf []byte) ([]byte, error) {
	return e.Alphabet.Decode(string(buf))
}

func NewEncodeDecoderBase1024() *EncodeDecoderBase1024 {
	return &EncodeDecoderBase1024{Alphabet: base1024.Default}
}
