package fontinfo

import (
	"bytes"
	"fmt"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
)

var nameTag = ot.MustNewTag("name")

// gotextParser implements Parser using go-text/typesetting's lazy loader.
// Only the name table is decoded.
type gotextParser struct{}

// Parse implements Parser.Parse.
func (p *gotextParser) Parse(data []byte) (NameTable, error) {
	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontinfo: failed to parse font: %w", err)
	}
	return loadNames(ld)
}

// ParseCollection implements Parser.ParseCollection.
func (p *gotextParser) ParseCollection(data []byte, index int) (NameTable, error) {
	lds, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontinfo: failed to parse font collection: %w", err)
	}
	if index < 0 || index >= len(lds) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFontIndex, index, len(lds))
	}
	return loadNames(lds[index])
}

func loadNames(ld *ot.Loader) (NameTable, error) {
	if !ld.HasTable(nameTag) {
		return nil, ErrNoNameTable
	}
	raw, err := ld.RawTable(nameTag)
	if err != nil {
		return nil, fmt.Errorf("fontinfo: failed to read name table: %w", err)
	}
	names, _, err := tables.ParseName(raw)
	if err != nil {
		return nil, fmt.Errorf("fontinfo: failed to parse name table: %w", err)
	}
	return gotextNames{names: names}, nil
}

// gotextNames implements NameTable using tables.Name.
type gotextNames struct {
	names tables.Name
}

// Name implements NameTable.Name.
func (n gotextNames) Name(id NameID) string {
	return n.names.Name(tables.NameID(id))
}
