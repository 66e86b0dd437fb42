package main

import (
	"github.com/corpix/base1024/cli"
	"github.com/corpix/base1024/config"
	"github.com/corpix/base1024/log"
)

type Config struct {
	*config.BaseConfig
}

func (c *Config) Default() {
	if c.BaseConfig == nil {
		c.BaseConfig = &config.BaseConfig{}
	}
	c.BaseConfig.Default()
}

var version = "development"

func main() {
	cfg := &Config{}
	cli.New(
		cli.WithName("base1024"),
		cli.WithUsage("Binary to base1024 symbol transcoder"),
		cli.WithDescription("Encode arbitrary bytes into a fixed 1024-glyph alphabet and back, 5 bytes per 4 symbols."),
		cli.WithVersion(version),
		cli.WithConfigTools(
			cfg,
			config.YamlUnmarshaler,
			config.YamlMarshaler,
		),
		cli.WithLogTools(
			func() *log.Config { return cfg.Log },
			log.WithName("base1024"),
		),
		cli.WithCodecTools(func() *config.CodecConfig { return cfg.Codec }),
	).RunAndExitOnError()
}
