package fontinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/fontreport"
)

// Option configures ReadName.
type Option func(*readConfig)

type readConfig struct {
	parserName string
	index      int
}

func defaultReadConfig() readConfig {
	return readConfig{parserName: DefaultParser}
}

// WithParser selects a registered parser by name.
func WithParser(name string) Option {
	return func(c *readConfig) {
		c.parserName = name
	}
}

// WithCollectionIndex selects the font of a collection. Defaults to 0.
func WithCollectionIndex(index int) Option {
	return func(c *readConfig) {
		c.index = index
	}
}

// IsCollection reports whether path names a font collection by extension.
func IsCollection(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		return true
	}
	return false
}

// ReadName reads a name record from the font file at path. Collections
// (.ttc, .otc) are opened as such and the font at the configured index is
// used; other files are parsed as a single font.
func ReadName(path string, id NameID, opts ...Option) (string, error) {
	cfg := defaultReadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	parser, err := LookupParser(cfg.parserName)
	if err != nil {
		return "", err
	}

	// #nosec G304 -- font path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("fontinfo: failed to read font file: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyFontData, path)
	}

	var names NameTable
	if IsCollection(path) {
		names, err = parser.ParseCollection(data, cfg.index)
	} else {
		names, err = parser.Parse(data)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	s := names.Name(id)
	if s == "" {
		return "", fmt.Errorf("%w: name ID %d in %s", ErrNameNotFound, id, path)
	}
	fontreport.Logger().Debug("read name record", "path", path, "name_id", id, "value", s, "parser", cfg.parserName)
	return s, nil
}

// ReadVersion reads the version string (name ID 5) of the font at path.
func ReadVersion(path string, opts ...Option) (string, error) {
	return ReadName(path, NameVersion, opts...)
}
