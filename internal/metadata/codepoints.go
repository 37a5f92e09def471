package metadata

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseCodepoints decodes a codepoint sequence such as "1F468 200D 1F469".
// Values may carry a "U+" prefix and be separated by spaces, commas,
// underscores or hyphens.
func ParseCodepoints(s string) ([]rune, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '_' || r == '-'
	})
	if len(fields) == 0 {
		return nil, ErrEmptyCodepoints
	}

	runes := make([]rune, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "U+"), "u+")
		v, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("codepoint %q: %w", f, err)
		}
		r := rune(v)
		if !utf8.ValidRune(r) {
			return nil, fmt.Errorf("codepoint %q: not a Unicode scalar value", f)
		}
		runes = append(runes, r)
	}
	return runes, nil
}

// FormatCodepoints renders runes in the canonical form used as join key:
// uppercase hex, at least four digits, single spaces.
func FormatCodepoints(runes []rune) string {
	var b strings.Builder
	for i, r := range runes {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%04X", r)
	}
	return b.String()
}

// NormalizeCodepoints parses s and formats it canonically.
func NormalizeCodepoints(s string) (string, error) {
	runes, err := ParseCodepoints(s)
	if err != nil {
		return "", err
	}
	return FormatCodepoints(runes), nil
}
