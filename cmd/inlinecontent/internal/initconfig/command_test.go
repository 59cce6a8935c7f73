package initconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyland-inc/inlinecontent/pkg/config"
	"github.com/tinyland-inc/inlinecontent/pkg/logger"
)

// run executes init under a root that carries the persistent --config flag.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger.SetLevel(logger.WARN)
	t.Cleanup(func() { logger.SetLevel(logger.INFO) })

	root := &cobra.Command{Use: "inlinecontent", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", "", "")
	root.AddCommand(NewInitCommand())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewInitCommand(t *testing.T) {
	cmd := NewInitCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "init", cmd.Use)
	assert.True(t, cmd.HasExample())
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestInitCmd_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	out, err := run(t, "--config", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestInitCmd_DefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := run(t, "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, ".inlinecontent", "config.json"))
}

func TestInitCmd_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"answer":{"cache_time":1}}`), 0o600))

	_, err := run(t, "--config", path, "init")
	assert.ErrorIs(t, err, ErrConfigExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":{"cache_time":1}}`, string(data))

	_, err = run(t, "--config", path, "init", "--force")
	require.NoError(t, err)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Answer.CacheTime)
}
