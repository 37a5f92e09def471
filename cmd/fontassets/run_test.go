package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fontreport/internal/config"
	"github.com/gogpu/fontreport/internal/metadata"
)

const (
	fontsCSV = "font_file,api_level,file_size\n" +
		"Roboto-Regular.ttf,30,1048576\n" +
		"NotoColorEmoji.ttf,30,1048576\n" +
		"NotoColorEmoji.ttf,31,3145728\n"

	supportCSV = "font_file,codepoints,supported,emoji_level\n" +
		"api_level/30/NotoColorEmoji.ttf,1F600,true,1.0\n" +
		"api_level/30/NotoColorEmoji.ttf,1F970,false,11.0\n" +
		"api_level/31/NotoColorEmoji.ttf,1F600,true,1.0\n" +
		"api_level/31/NotoColorEmoji.ttf,1F970,true,11.0\n"

	emojiTest = "# group: Smileys & Emotion\n" +
		"1F600 ; fully-qualified # 😀 E1.0 grinning face\n" +
		"1F970 ; fully-qualified # 🥰 E11.0 smiling face with hearts\n" +
		"263A  ; unqualified     # ☺ E0.6 smiling face\n"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{config.EnvOutDir, config.EnvMetadataDir, config.EnvFontsDir, config.EnvChartWidth, config.EnvChartHeight} {
		t.Setenv(env, "")
	}
}

func TestRun(t *testing.T) {
	isolateEnv(t)
	meta := t.TempDir()
	out := filepath.Join(t.TempDir(), "android_fonts")
	writeFiles(t, meta, map[string]string{
		"fonts.csv":         fontsCSV,
		"emoji_support.csv": supportCSV,
		"emoji-test.txt":    emojiTest,
	})

	var stdout bytes.Buffer
	err := run(&stdout, flags{
		config:   filepath.Join(meta, "absent.yaml"),
		out:      out,
		metadata: meta,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 5)
	for i, name := range []string{summaryFile, detailFile, sizeTotalFile, sizeChangeFile} {
		assert.Equal(t, "Wrote "+filepath.Join(out, name), lines[i])
		assert.FileExists(t, filepath.Join(out, name))
	}
	assert.Equal(t, "3 fonts (5.0 MB) and 4 emoji support rows across 14 API levels", lines[4])

	var summary map[string]struct {
		Name  string `json:"name"`
		Fonts *struct {
			NumFiles    int     `json:"num_files"`
			SizeMB      float64 `json:"size_MB"`
			DeltaSizeMB float64 `json:"delta_size_MB"`
		} `json:"fonts"`
		Emoji struct {
			Delta     int `json:"delta"`
			Supported int `json:"supported"`
		} `json:"emoji"`
	}
	data, err := os.ReadFile(filepath.Join(out, summaryFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Len(t, summary, len(metadata.APILevels()))

	require.NotNil(t, summary["31"].Fonts)
	assert.Equal(t, 1, summary["31"].Fonts.NumFiles)
	assert.InDelta(t, 1.0, summary["31"].Fonts.DeltaSizeMB, 1e-9)
	assert.Equal(t, 2, summary["31"].Emoji.Supported)
	assert.Equal(t, 1, summary["31"].Emoji.Delta)
	assert.Nil(t, summary["21"].Fonts)

	var detail []struct {
		Codepoints string `json:"codepoints"`
		APISupport []int  `json:"api_support"`
	}
	data, err = os.ReadFile(filepath.Join(out, detailFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &detail))
	require.Len(t, detail, 2)
	assert.Equal(t, "1F600", detail[0].Codepoints)
	assert.Equal(t, []int{30, 31}, detail[0].APISupport)
	assert.Equal(t, []int{31}, detail[1].APISupport)
}

func TestRunScansFontsDir(t *testing.T) {
	isolateEnv(t)
	meta := t.TempDir()
	fonts := t.TempDir()
	out := t.TempDir()
	writeFiles(t, meta, map[string]string{
		"emoji_support.csv": supportCSV,
		"emoji-test.txt":    emojiTest,
	})
	writeFiles(t, fonts, map[string]string{
		"api_level/30/Roboto-Regular.ttf": strings.Repeat("x", 1024),
		"api_level/31/Roboto-Regular.ttf": strings.Repeat("x", 2048),
	})
	t.Setenv(config.EnvFontsDir, fonts)

	var stdout bytes.Buffer
	err := run(&stdout, flags{config: filepath.Join(meta, "absent.yaml"), out: out, metadata: meta})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "2 fonts")
	assert.FileExists(t, filepath.Join(out, sizeTotalFile))
}

func TestRunMissingMetadata(t *testing.T) {
	isolateEnv(t)
	err := run(&bytes.Buffer{}, flags{
		config:   filepath.Join(t.TempDir(), "absent.yaml"),
		out:      t.TempDir(),
		metadata: t.TempDir(),
	})
	assert.Error(t, err)
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
