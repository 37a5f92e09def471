package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gogpu/fontreport"
)

// WriteJSON writes v to path as JSON indented by two spaces.
func WriteJSON(path string, v any) error {
	data, err := MarshalIndent(v)
	if err != nil {
		return fmt.Errorf("report: failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("report: failed to write %s: %w", path, err)
	}
	fontreport.Logger().Info("wrote json", "path", path, "bytes", len(data))
	return nil
}

// MarshalIndent encodes v indented by two spaces, without HTML escaping,
// followed by a newline.
func MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
