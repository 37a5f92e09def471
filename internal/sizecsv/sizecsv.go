// Package sizecsv lists font files with their size and version string.
package sizecsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gogpu/fontreport"
	"github.com/gogpu/fontreport/internal/fontinfo"
)

// Header is the CSV header row.
var Header = []string{"Font", "Size (B)", "Version"}

// Row describes one font file.
type Row struct {
	Font    string
	Size    int64
	Version string
}

// Result holds the rows sorted by font file name and the totals over every
// input path.
type Result struct {
	Rows       []Row
	TotalSize  int64
	TotalFonts int
}

// SanitizeVersion replaces commas so the version fits an unquoted CSV field.
func SanitizeVersion(v string) string {
	return strings.ReplaceAll(v, ",", " ")
}

// ExpandPaths expands glob patterns (including **) among args. Arguments
// naming an existing file or without glob syntax are kept as given, so file
// names such as "RobotoFlex[wdth,wght].ttf" are not read as patterns. A
// pattern matching nothing is an error.
func ExpandPaths(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			out = append(out, arg)
			continue
		}
		if _, err := os.Stat(arg); err == nil {
			out = append(out, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("sizecsv: %s is not a valid glob pattern: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("sizecsv: %s matches no files", arg)
		}
		out = append(out, matches...)
	}
	return out, nil
}

// Collect stats every path and reads the version string of each font.
// Rows are keyed by base name, so of two paths sharing a base name the later
// one provides the row while both count towards the totals.
func Collect(paths []string, opts ...fontinfo.Option) (*Result, error) {
	type entry struct {
		path string
		size int64
	}
	log := fontreport.Logger()

	res := &Result{}
	byName := make(map[string]entry, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("sizecsv: %w", err)
		}
		name := filepath.Base(p)
		if prev, dup := byName[name]; dup {
			log.Warn("duplicate font file name", "name", name, "replaced", prev.path, "by", p)
		}
		byName[name] = entry{path: p, size: info.Size()}
		res.TotalSize += info.Size()
		res.TotalFonts++
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	res.Rows = make([]Row, 0, len(names))
	for _, name := range names {
		e := byName[name]
		version, err := fontinfo.ReadVersion(e.path, opts...)
		if err != nil {
			return nil, fmt.Errorf("sizecsv: %w", err)
		}
		res.Rows = append(res.Rows, Row{Font: name, Size: e.size, Version: SanitizeVersion(version)})
		log.Debug("font", "name", name, "size", e.size, "version", version)
	}
	return res, nil
}

// Print writes one line per row followed by the totals.
func (r *Result) Print(w io.Writer) error {
	for _, row := range r.Rows {
		if _, err := fmt.Fprintf(w, "%s : %d, %s\n", row.Font, row.Size, row.Version); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal size: %d\nTotal fonts: %d\n", r.TotalSize, r.TotalFonts)
	return err
}

// WriteCSV writes the header and rows to w with CRLF line endings.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Font, strconv.FormatInt(row.Size, 10), row.Version}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the CSV to path, replacing any existing file.
func WriteFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sizecsv: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("sizecsv: failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("sizecsv: %w", err)
	}
	fontreport.Logger().Info("wrote csv", "path", path, "rows", len(rows))
	return nil
}
