package fontinfo

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// ximageParser implements Parser using golang.org/x/image/font/sfnt.
// sfnt validates the whole font, so truncated or name-only files fail here.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (p *ximageParser) Parse(data []byte) (NameTable, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontinfo: failed to parse font: %w", err)
	}
	return &ximageNames{font: f}, nil
}

// ParseCollection implements Parser.ParseCollection.
func (p *ximageParser) ParseCollection(data []byte, index int) (NameTable, error) {
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("fontinfo: failed to parse font collection: %w", err)
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, fmt.Errorf("%w: %d of %d", ErrFontIndex, index, c.NumFonts())
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, fmt.Errorf("fontinfo: failed to parse font %d of collection: %w", index, err)
	}
	return &ximageNames{font: f}, nil
}

// ximageNames implements NameTable using sfnt.Font.
type ximageNames struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// Name implements NameTable.Name.
func (n *ximageNames) Name(id NameID) string {
	s, err := n.font.Name(&n.buf, sfnt.NameID(id))
	if err != nil {
		return ""
	}
	return s
}
