package config

import (
	"github.com/corpix/revip"

	"github.com/corpix/base1024/log"
)

type (
	Config              = revip.Config
	Defaultable         = revip.Defaultable
	ErrFileNotFound     = revip.ErrFileNotFound
	ErrMarshal          = revip.ErrMarshal
	ErrPathNotFound     = revip.ErrPathNotFound
	ErrPostprocess      = revip.ErrPostprocess
	ErrUnexpectedKind   = revip.ErrUnexpectedKind
	ErrUnexpectedScheme = revip.ErrUnexpectedScheme
	ErrUnmarshal        = revip.ErrUnmarshal
	Expandable          = revip.Expandable
	Marshaler           = revip.Marshaler
	Option              = revip.SourceOption
	Container           = revip.Container
	Unmarshaler         = revip.Unmarshaler
	Validatable         = revip.Validatable
)

//

type BaseConfig struct {
	Log   *log.Config  `yaml:"log"`
	Codec *CodecConfig `yaml:"codec"`
}

func (c *BaseConfig) Default() {
	if c.Log == nil {
		c.Log = &log.Config{}
	}
	if c.Codec == nil {
		c.Codec = &CodecConfig{}
	}
	c.Codec.Default()
}

//

type CodecConfig struct {
	// Wrap is the encoded line width in symbols, 0 keeps the default of
	// 76. Disabling wrapping entirely is a command line concern.
	Wrap int `yaml:"wrap"`
	// Compress pipes payloads through zstd before encoding.
	Compress bool `yaml:"compress"`
}

func (c *CodecConfig) Default() {
	if c.Wrap == 0 {
		c.Wrap = 76
	}
}

//

var (
	FromEnviron    = revip.FromEnviron
	FromFile       = revip.FromFile
	FromReader     = revip.FromReader
	FromURL        = revip.FromURL
	Load           = revip.Load
	New            = revip.New
	Postprocess    = revip.Postprocess
	ToFile         = revip.ToFile
	ToURL          = revip.ToURL
	ToWriter       = revip.ToWriter
	WithDefaults   = revip.WithDefaults
	WithExpansion  = revip.WithExpansion
	WithValidation = revip.WithValidation

	JsonMarshaler   = revip.JsonMarshaler
	JsonUnmarshaler = revip.JsonUnmarshaler
	YamlMarshaler   = revip.YamlMarshaler
	YamlUnmarshaler = revip.YamlUnmarshaler
	TomlMarshaler   = revip.TomlMarshaler
	TomlUnmarshaler = revip.TomlUnmarshaler
)
