package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fontreport/internal/fontinfo"
	"github.com/gogpu/fontreport/internal/fonttest"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	fonts := filepath.Join(dir, "fonts")
	require.NoError(t, os.MkdirAll(filepath.Join(fonts, "sub"), 0o755))
	b := fonttest.Version("Version 2.001, beta")
	a := fonttest.Collection(fonttest.Version("Version 1.000"), fonttest.Version("Version 9.000"))
	require.NoError(t, os.WriteFile(filepath.Join(fonts, "b.ttf"), b, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(fonts, "sub", "a.ttc"), a, 0o600))
	out := filepath.Join(dir, "fontsize.csv")

	var stdout bytes.Buffer
	err := run(&stdout, flags{config: filepath.Join(dir, "absent.yaml"), out: out}, []string{filepath.Join(fonts, "**", "*.tt?")})
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Font,Size (B),Version\r\n"+
		"a.ttc,"+strconv.Itoa(len(a))+",Version 1.000\r\n"+
		"b.ttf,"+strconv.Itoa(len(b))+",Version 2.001  beta\r\n", string(got))
	assert.Contains(t, stdout.String(), "Total fonts: 2\n")
	assert.Contains(t, stdout.String(), "Total size: "+strconv.Itoa(len(a)+len(b))+"\n")
}

func TestRunXimageParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o600))
	out := filepath.Join(dir, "out.csv")

	err := run(&bytes.Buffer{}, flags{config: filepath.Join(dir, "absent.yaml"), out: out, parser: "ximage"}, []string{path})
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestRunEmptyConfigValuesUseDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("fontreport.yaml", []byte("size_csv:\n  output: \"\"\n  parser:\n"), 0o600))
	require.NoError(t, os.WriteFile("a.ttf", fonttest.Version("Version 1.000"), 0o600))

	err := run(&bytes.Buffer{}, flags{config: "fontreport.yaml"}, []string{"a.ttf"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "fontsize.csv"))
}

func TestRunUnknownParser(t *testing.T) {
	dir := t.TempDir()
	err := run(&bytes.Buffer{}, flags{config: filepath.Join(dir, "absent.yaml"), out: filepath.Join(dir, "out.csv"), parser: "freetype"}, []string{"x.ttf"})
	assert.True(t, errors.Is(err, fontinfo.ErrUnknownParser), "err = %v", err)
}

func TestRunNoMatches(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")
	err := run(&bytes.Buffer{}, flags{config: filepath.Join(dir, "absent.yaml"), out: out}, []string{filepath.Join(dir, "*.ttf")})
	assert.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestRootCmdRequiresArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs(nil)
	cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
