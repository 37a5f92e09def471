package metadata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/fontreport"
)

// Qualification status values used by emoji-test.txt.
const (
	StatusComponent          = "component"
	StatusFullyQualified     = "fully-qualified"
	StatusMinimallyQualified = "minimally-qualified"
	StatusUnqualified        = "unqualified"
)

// Emoji is one entry of the Unicode emoji registry.
type Emoji struct {
	Codepoints string
	// Level is the Unicode emoji version that introduced the sequence,
	// zero when the source predates per-line versions.
	Level  float64
	Status string
	Notes  string
}

// LoadEmojiTest reads the Unicode emoji-test.txt file.
func LoadEmojiTest(name string) ([]Emoji, error) {
	// #nosec G304 -- metadata path is provided by the user
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("metadata: failed to open emoji registry: %w", err)
	}
	defer f.Close()
	return ParseEmojiTest(f, name)
}

// ParseEmojiTest parses lines of the form
//
//	1F468 200D 1F469 ; fully-qualified # 👨‍👩 E2.0 man, woman
//
// Comment and blank lines are skipped.
func ParseEmojiTest(r io.Reader, source string) ([]Emoji, error) {
	var out []Emoji
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		e, err := parseEmojiLine(text)
		if err != nil {
			return nil, &RecordError{Source: source, Line: line, Err: err}
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("metadata: %s: %w", source, err)
	}
	fontreport.Logger().Info("loaded emoji registry", "source", source, "sequences", len(out))
	return out, nil
}

func parseEmojiLine(text string) (Emoji, error) {
	data, comment, _ := strings.Cut(text, "#")
	cpField, status, ok := strings.Cut(data, ";")
	if !ok {
		return Emoji{}, errors.New("missing ';' separator")
	}
	cps, err := NormalizeCodepoints(cpField)
	if err != nil {
		return Emoji{}, err
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return Emoji{}, errors.New("missing status")
	}

	e := Emoji{Codepoints: cps, Status: status}

	// comment: "<emoji> E<version> <name>"; the version is absent in old files.
	fields := strings.Fields(comment)
	if len(fields) > 0 {
		fields = fields[1:]
	}
	if len(fields) > 0 && strings.HasPrefix(fields[0], "E") {
		if v, err := strconv.ParseFloat(fields[0][1:], 64); err == nil {
			e.Level = v
			fields = fields[1:]
		}
	}
	e.Notes = strings.Join(fields, " ")
	return e, nil
}
