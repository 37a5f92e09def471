package metadata

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/fontreport"
)

// Support records whether a font renders an emoji sequence.
type Support struct {
	// File is an encoded path "api_level/<level>/<font file>".
	File       string
	Codepoints string
	Supported  bool
	Level      float64
}

// Column names of the emoji support table. font_file is shared with the font table.
const (
	ColumnCodepoints = "codepoints"
	ColumnSupported  = "supported"
	ColumnEmojiLevel = "emoji_level"
)

// LoadSupport reads emoji support rows from a CSV file with the columns
// font_file, codepoints, supported and emoji_level.
func LoadSupport(name string) ([]Support, error) {
	// #nosec G304 -- metadata path is provided by the user
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("metadata: failed to open emoji support table: %w", err)
	}
	defer f.Close()
	return ReadSupport(f, name)
}

// ReadSupport reads emoji support rows from r. source names r in errors.
func ReadSupport(r io.Reader, source string) ([]Support, error) {
	var out []Support
	columns := []string{ColumnFontFile, ColumnCodepoints, ColumnSupported, ColumnEmojiLevel}
	err := readTable(r, source, columns, func(rw row) error {
		cps, err := NormalizeCodepoints(rw.get(ColumnCodepoints))
		if err != nil {
			return err
		}
		supported, err := parseBool(rw.get(ColumnSupported))
		if err != nil {
			return err
		}
		level, err := strconv.ParseFloat(rw.get(ColumnEmojiLevel), 64)
		if err != nil {
			return fmt.Errorf("emoji_level: %w", err)
		}
		out = append(out, Support{
			File:       rw.get(ColumnFontFile),
			Codepoints: cps,
			Supported:  supported,
			Level:      level,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	fontreport.Logger().Info("loaded emoji support", "source", source, "rows", len(out))
	return out, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "t", "yes", "y":
		return true, nil
	case "0", "false", "f", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("supported: invalid boolean %q", s)
}
