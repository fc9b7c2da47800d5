package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togglebit/togglebit/internal/errors"
)

// isolate points HOME and the working directory at fresh temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldWd) })
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.False(t, cfg.Carnage)
	assert.Equal(t, "on", cfg.Initial)
	assert.Equal(t, "art", cfg.Display)
	assert.Equal(t, 50*time.Millisecond, cfg.Tick())
	assert.Equal(t, 100.0, cfg.DegradationThreshold)
	assert.Equal(t, 4096, cfg.MaxAttempts)
	assert.Equal(t, 15, cfg.Cooldown.Ticks)
	assert.Equal(t, "none", cfg.Cooldown.Bypass)
	assert.Empty(t, cfg.Assets.Off)
	assert.Empty(t, cfg.Assets.On)

	require.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
version: 1
carnage: true
initial: random
display: label
tick_interval: 100ms
degradation_threshold: 40
cooldown:
  ticks: 30
  bypass: mouse
assets:
  on: art/on.txt
  off: /abs/off.txt
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.True(t, cfg.Carnage)
	assert.Equal(t, "random", cfg.Initial)
	assert.Equal(t, "label", cfg.Display)
	assert.Equal(t, 100*time.Millisecond, cfg.Tick())
	assert.Equal(t, 40.0, cfg.DegradationThreshold)
	assert.Equal(t, 4096, cfg.MaxAttempts, "unset keys keep defaults")
	assert.Equal(t, 30, cfg.Cooldown.Ticks)
	assert.Equal(t, "mouse", cfg.Cooldown.Bypass)
	assert.Equal(t, filepath.Join(dir, "art", "on.txt"), cfg.Assets.On, "relative to the config file")
	assert.Equal(t, "/abs/off.txt", cfg.Assets.Off)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("carnage: true\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.True(t, cfg.Carnage)
	assert.Equal(t, 15, cfg.Cooldown.Ticks)
	assert.Equal(t, "none", cfg.Cooldown.Bypass)
	assert.Equal(t, "50ms", cfg.TickInterval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("carnage: false\n"), 0644))
	t.Setenv("TOGGLEBIT_CARNAGE", "true")
	t.Setenv("TOGGLEBIT_COOLDOWN_TICKS", "3")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.True(t, cfg.Carnage)
	assert.Equal(t, 3, cfg.Cooldown.Ticks)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/.togglebit.yaml")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "Config file not found")
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("carnage: [unterminated\n"), 0644))

	_, err := Load(configPath)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1"), 0644))

	got, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	_, err = Find("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestFind_CurrentDirectory(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("version: 1"), 0644))

	got, err := Find("")

	require.NoError(t, err)
	assert.Equal(t, ConfigFileName, filepath.Base(got))
}

func TestFind_ParentStopsAtGitRoot(t *testing.T) {
	dir := isolate(t)
	root := filepath.Join(dir, "repo")
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("version: 1"), 0644))
	require.NoError(t, os.Chdir(sub))

	got, err := Find("")

	require.NoError(t, err)
	assert.Equal(t, ConfigFileName, filepath.Base(got))
	assert.Equal(t, "repo", filepath.Base(filepath.Dir(got)))
}

func TestFind_Global(t *testing.T) {
	isolate(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	globalDir := filepath.Join(home, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	globalPath := filepath.Join(globalDir, GlobalConfigFile)
	require.NoError(t, os.WriteFile(globalPath, []byte("display: label\n"), 0644))

	got, err := Find("")

	require.NoError(t, err)
	assert.Equal(t, globalPath, got)
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	isolate(t)

	cfg, path, err := LoadOrDefault("")

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOrDefault_NoFileWithEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TOGGLEBIT_DISPLAY", "label")

	cfg, _, err := LoadOrDefault("")

	require.NoError(t, err)
	assert.Equal(t, "label", cfg.Display)
}

func TestLoadOrDefault_Found(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("initial: off\n"), 0644))

	cfg, path, err := LoadOrDefault("")

	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.Equal(t, "off", cfg.Initial)
}

func TestTick_FallsBackOnGarbage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickInterval = "soon"
	assert.Equal(t, 50*time.Millisecond, cfg.Tick())
}

func TestResolveAssetPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name       string
		configPath string
		in         string
		want       string
	}{
		{"empty stays empty", "/etc/x/.togglebit.yaml", "", ""},
		{"absolute", "/etc/x/.togglebit.yaml", "/art/on.txt", "/art/on.txt"},
		{"relative", "/etc/x/.togglebit.yaml", "on.txt", "/etc/x/on.txt"},
		{"home", "/etc/x/.togglebit.yaml", "~/on.txt", filepath.Join(home, "on.txt")},
		{"no config file", "environment", "on.txt", "on.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveAssetPath(tt.configPath, tt.in))
		})
	}
}
