package fontinfo

import (
	"fmt"
	"sort"
)

// NameID identifies a record of the OpenType name table.
type NameID uint16

// Name IDs read by the reports.
const (
	NameFamily    NameID = 1
	NameSubfamily NameID = 2
	NameFull      NameID = 4
	NameVersion   NameID = 5
)

// Parser is an interface for name table backends.
// This abstraction allows swapping the font parsing library
// (go-text/typesetting or golang.org/x/image/font/sfnt).
type Parser interface {
	// Parse parses a single font (TTF or OTF).
	Parse(data []byte) (NameTable, error)

	// ParseCollection parses the font at index of a font collection (TTC).
	ParseCollection(data []byte, index int) (NameTable, error)
}

// NameTable gives access to the decoded records of a name table.
type NameTable interface {
	// Name returns the record for id decoded to UTF-8.
	// Returns empty string if the font has no such record.
	Name(id NameID) string
}

// parserRegistry holds registered parsers.
var parserRegistry = map[string]Parser{
	"gotext": &gotextParser{},
	"ximage": &ximageParser{},
}

// DefaultParser is the name of the parser used when none is requested.
// It only needs the name table, so it also reads fonts whose other tables
// the ximage parser would reject.
const DefaultParser = "gotext"

// RegisterParser registers a custom parser under name.
func RegisterParser(name string, parser Parser) {
	parserRegistry[name] = parser
}

// LookupParser returns the parser registered under name.
func LookupParser(name string) (Parser, error) {
	if p, ok := parserRegistry[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownParser, name, ParserNames())
}

// ParserNames returns the registered parser names, sorted.
func ParserNames() []string {
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
