package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/base1024/config"
)

func runCapturingStdout(t *testing.T, c *Cli, args ...string) (string, error) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	runErr := c.Run(append([]string{c.Name}, args...))

	require.NoError(t, w.Close())
	os.Stdout = stdout

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestConfigShowDefaultIgnoresLoadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("codec:\n  wrap: 7\n"), 0600))

	cfg := &config.BaseConfig{}
	c := New(
		WithName("base1024-test"),
		WithConfigTools(cfg, config.YamlUnmarshaler, config.YamlMarshaler),
	)

	out, err := runCapturingStdout(t, c, "--config", path, "config", "show-default")
	require.NoError(t, err)

	// the defaults, not the wrap width loaded from the file
	assert.Contains(t, out, "wrap: 76")
	assert.NotContains(t, out, "wrap: 7\n")
	assert.Equal(t, 7, cfg.Codec.Wrap, "loaded config should stay untouched")
}

func TestConfigShowPrintsLoadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("codec:\n  wrap: 7\n"), 0600))

	cfg := &config.BaseConfig{}
	c := New(
		WithName("base1024-test"),
		WithConfigTools(cfg, config.YamlUnmarshaler, config.YamlMarshaler),
	)

	out, err := runCapturingStdout(t, c, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "wrap: 7")
}
