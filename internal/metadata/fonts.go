package metadata

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gogpu/fontreport"
)

// Font is one font file shipped with an API level.
type Font struct {
	// File is the path of the font relative to the fonts root,
	// e.g. "api_level/31/Roboto-Regular.ttf".
	File     string
	APILevel int
	Size     int64
}

// Column names of the font metadata table.
const (
	ColumnFontFile = "font_file"
	ColumnAPILevel = "api_level"
	ColumnFileSize = "file_size"
)

// fontPattern matches the font files below a fonts root.
const fontPattern = "api_level/*/*.{ttf,otf,ttc}"

// LoadFonts reads font metadata from a CSV file with the columns
// font_file, api_level and file_size.
func LoadFonts(name string) ([]Font, error) {
	// #nosec G304 -- metadata path is provided by the user
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("metadata: failed to open font table: %w", err)
	}
	defer f.Close()
	return ReadFonts(f, name)
}

// ReadFonts reads font metadata rows from r. source names r in errors.
func ReadFonts(r io.Reader, source string) ([]Font, error) {
	var fonts []Font
	err := readTable(r, source, []string{ColumnFontFile, ColumnAPILevel, ColumnFileSize}, func(rw row) error {
		level, err := strconv.Atoi(rw.get(ColumnAPILevel))
		if err != nil {
			return fmt.Errorf("api_level: %w", err)
		}
		size, err := strconv.ParseInt(rw.get(ColumnFileSize), 10, 64)
		if err != nil {
			return fmt.Errorf("file_size: %w", err)
		}
		if size < 0 {
			return fmt.Errorf("file_size: negative size %d", size)
		}
		fonts = append(fonts, Font{File: rw.get(ColumnFontFile), APILevel: level, Size: size})
		return nil
	})
	if err != nil {
		return nil, err
	}
	fontreport.Logger().Info("loaded font metadata", "source", source, "fonts", len(fonts))
	return fonts, nil
}

// ScanFonts builds font metadata from a directory tree laid out as
// api_level/<level>/<font file>. Sizes come from the file system; the fonts
// are not opened.
func ScanFonts(fsys fs.FS) ([]Font, error) {
	matches, err := doublestar.Glob(fsys, fontPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("metadata: failed to scan fonts: %w", err)
	}
	sort.Strings(matches)

	fonts := make([]Font, 0, len(matches))
	for _, m := range matches {
		level, err := strconv.Atoi(path.Base(path.Dir(m)))
		if err != nil {
			fontreport.Logger().Debug("skipping font outside a numeric api_level directory", "path", m)
			continue
		}
		info, err := fs.Stat(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("metadata: failed to stat %s: %w", m, err)
		}
		fonts = append(fonts, Font{File: m, APILevel: level, Size: info.Size()})
	}
	fontreport.Logger().Info("scanned font files", "fonts", len(fonts))
	return fonts, nil
}
