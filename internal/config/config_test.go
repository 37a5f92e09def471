package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from the caller's environment and any .env file.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{EnvOutDir, EnvMetadataDir, EnvFontsDir, EnvChartWidth, EnvChartHeight} {
		t.Setenv(env, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "fontreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
out_dir: /srv/android_fonts
metadata:
  dir: /data/meta
  fonts_dir: /data/fonts
chart:
  width: 800
size_csv:
  parser: ximage
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/android_fonts", cfg.OutDir)
	assert.Equal(t, "/data/meta", cfg.Metadata.Dir)
	assert.Equal(t, "/data/fonts", cfg.Metadata.FontsDir)
	assert.Equal(t, "fonts.csv", cfg.Metadata.Fonts, "unset keys keep defaults")
	assert.Equal(t, 800, cfg.Chart.Width)
	assert.Equal(t, 480, cfg.Chart.Height)
	assert.Equal(t, "ximage", cfg.SizeCSV.Parser)
}

func TestLoadEmptyValuesKeepDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "fontreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
out_dir: ""
metadata:
  fonts:
size_csv:
  output: ""
  parser:
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart: [not, a, map"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOutDir, "/tmp/out")
	t.Setenv(EnvMetadataDir, "/tmp/meta")
	t.Setenv(EnvChartHeight, "300")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.OutDir)
	assert.Equal(t, "/tmp/meta", cfg.Metadata.Dir)
	assert.Equal(t, 300, cfg.Chart.Height)
}

func TestDotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvOutDir)
	require.NoError(t, os.WriteFile(".env", []byte(EnvOutDir+"=/from/dotenv\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", cfg.OutDir)
}

func TestEnvOverrideInvalidNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvChartWidth, "wide")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Chart.Width = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.OutDir = ""
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Default().Validate())
}

func TestPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := Default()
	p, err := cfg.MetadataPath("fonts.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("metadata", "fonts.csv"), p)

	p, err = cfg.MetadataPath("~/emoji-test.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "emoji-test.txt"), p)

	cfg.Metadata.Dir = "/data/meta"
	p, err = cfg.MetadataPath("fonts.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/meta", "fonts.csv"), p)

	p, err = cfg.MetadataPath("/abs/emoji-test.txt")
	require.NoError(t, err)
	assert.Equal(t, "/abs/emoji-test.txt", p)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := map[string]string{
		"~":          home,
		"~/fonts":    filepath.Join(home, "fonts"),
		"/abs/fonts": "/abs/fonts",
		"rel/~fonts": "rel/~fonts",
	}
	for in, want := range tests {
		got, err := ExpandHome(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}
