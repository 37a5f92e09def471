// Package config loads fontreport settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file settings.
const (
	EnvOutDir      = "FONTREPORT_OUT_DIR"
	EnvMetadataDir = "FONTREPORT_METADATA_DIR"
	EnvFontsDir    = "FONTREPORT_FONTS_DIR"
	EnvChartWidth  = "FONTREPORT_CHART_WIDTH"
	EnvChartHeight = "FONTREPORT_CHART_HEIGHT"
)

// Config holds the settings of both pipelines.
type Config struct {
	// OutDir receives the report artifacts.
	OutDir string `yaml:"out_dir"`

	Metadata MetadataConfig `yaml:"metadata"`
	Chart    ChartConfig    `yaml:"chart"`
	SizeCSV  SizeCSVConfig  `yaml:"size_csv"`
}

// MetadataConfig locates the metadata tables.
type MetadataConfig struct {
	// Dir is the directory the relative file names below resolve against.
	Dir string `yaml:"dir"`

	Fonts     string `yaml:"fonts"`
	Support   string `yaml:"emoji_support"`
	EmojiTest string `yaml:"emoji_test"`

	// FontsDir, when set and the fonts table is missing, is scanned for
	// api_level/<level>/<font> files instead.
	FontsDir string `yaml:"fonts_dir"`
}

// ChartConfig sizes the bar chart images in pixels.
type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SizeCSVConfig configures the CSV pipeline.
type SizeCSVConfig struct {
	Output string `yaml:"output"`
	Parser string `yaml:"parser"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutDir: "~/oss/rsheeter.github.io/android_fonts",
		Metadata: MetadataConfig{
			Dir:       "metadata",
			Fonts:     "fonts.csv",
			Support:   "emoji_support.csv",
			EmojiTest: "emoji-test.txt",
		},
		Chart: ChartConfig{
			Width:  640,
			Height: 480,
		},
		SizeCSV: SizeCSVConfig{
			Output: "fontsize.csv",
			Parser: "gotext",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides, including those from a .env file in the working
// directory. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- config path is provided by the user
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
			}
			cfg.fillDefaults()
		}
	}

	_ = godotenv.Load()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillDefaults restores the default of every setting a config file left
// empty, e.g. "parser:" with no value.
func (c *Config) fillDefaults() {
	def := Default()
	type field struct {
		dst *string
		def string
	}
	for _, f := range []field{
		{&c.OutDir, def.OutDir},
		{&c.Metadata.Dir, def.Metadata.Dir},
		{&c.Metadata.Fonts, def.Metadata.Fonts},
		{&c.Metadata.Support, def.Metadata.Support},
		{&c.Metadata.EmojiTest, def.Metadata.EmojiTest},
		{&c.SizeCSV.Output, def.SizeCSV.Output},
		{&c.SizeCSV.Parser, def.SizeCSV.Parser},
	} {
		if strings.TrimSpace(*f.dst) == "" {
			*f.dst = f.def
		}
	}
}

func (c *Config) applyEnvOverrides() error {
	if v := strings.TrimSpace(os.Getenv(EnvOutDir)); v != "" {
		c.OutDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMetadataDir)); v != "" {
		c.Metadata.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFontsDir)); v != "" {
		c.Metadata.FontsDir = v
	}
	for env, dst := range map[string]*int{EnvChartWidth: &c.Chart.Width, EnvChartHeight: &c.Chart.Height} {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s: %w", env, err)
		}
		*dst = n
	}
	return nil
}

// Validate reports settings no pipeline can run with.
func (c *Config) Validate() error {
	if c.OutDir == "" {
		return errors.New("config: out_dir is empty")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("config: chart size %dx%d must be positive", c.Chart.Width, c.Chart.Height)
	}
	return nil
}

// MetadataPath resolves a metadata file name against Metadata.Dir.
// Absolute names are returned unchanged.
func (c *Config) MetadataPath(name string) (string, error) {
	name, err := ExpandHome(name)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir, err := ExpandHome(c.Metadata.Dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
