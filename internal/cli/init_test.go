package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togglebit/togglebit/internal/config"
	"github.com/togglebit/togglebit/internal/errors"
)

func TestInit_NonInteractiveWritesLoadableConfig(t *testing.T) {
	dir := t.TempDir()
	base := config.DefaultConfig()
	base.Carnage = true
	base.Cooldown.Bypass = "keyboard"

	var out bytes.Buffer
	err := Init(InitOptions{
		Dir:            dir,
		NonInteractive: true,
		Base:           base,
		Out:            &out,
	})
	require.NoError(t, err)

	path := filepath.Join(dir, config.ConfigFileName)
	assert.Contains(t, out.String(), "Created "+path)
	assert.Contains(t, out.String(), "Next steps:")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# togglebit configuration")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Carnage)
	assert.Equal(t, "keyboard", cfg.Cooldown.Bypass)
	assert.Equal(t, config.DefaultCooldownTicks, cfg.Cooldown.Ticks)
	assert.Equal(t, config.DefaultTickInterval, cfg.TickInterval)
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)
}

func TestInit_ExistingFileNeedsForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("carnage: true\n"), 0644))

	err := Init(InitOptions{Dir: dir, NonInteractive: true, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--force")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "carnage: true\n", string(data), "existing file must be left alone")
}

func TestInit_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("carnage: true\n"), 0644))

	err := Init(InitOptions{Dir: dir, NonInteractive: true, Overwrite: true, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Carnage)
}

func TestInit_RejectsInvalidBase(t *testing.T) {
	dir := t.TempDir()
	base := config.DefaultConfig()
	base.Initial = "sideways"

	err := Init(InitOptions{Dir: dir, NonInteractive: true, Base: base, Out: &bytes.Buffer{}})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, config.ConfigFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInitCommand_FlagsBecomeValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldWd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"init", "--non-interactive", "--initial", "random", "--cooldown", "0"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.Initial)
	assert.Equal(t, 0, cfg.Cooldown.Ticks)
}
