// Package fonttest builds minimal sfnt files for tests.
//
// The fonts carry a single name table and nothing else: enough for name
// lookups through a lazy table loader, not for rendering.
package fonttest

import (
	"encoding/binary"
	"sort"
	"unicode/utf16"
)

// Record is one name table entry.
type Record struct {
	NameID uint16
	Value  string
}

const (
	sfntHeaderSize = 12
	tableEntrySize = 16
	nameHeaderSize = 6
	nameRecordSize = 12

	platformMicrosoft  = 3
	encodingUnicodeBMP = 1
	languageEnglishUS  = 0x0409
)

// Version returns a font whose name ID 5 is version.
func Version(version string) []byte {
	return Font(Record{NameID: 1, Value: "Test"}, Record{NameID: 5, Value: version})
}

// Collection returns a TTC holding the given sfnt fonts. Table offsets of
// each font are rebased onto the collection file.
func Collection(fonts ...[]byte) []byte {
	out := make([]byte, 12+4*len(fonts))
	copy(out[0:4], "ttcf")
	binary.BigEndian.PutUint32(out[4:], 0x00010000)
	binary.BigEndian.PutUint32(out[8:], uint32(len(fonts)))

	for i, font := range fonts {
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
		base := uint32(len(out))
		binary.BigEndian.PutUint32(out[12+4*i:], base)
		out = append(out, rebase(font, base)...)
	}
	return out
}

// rebase copies an sfnt font and shifts its table offsets by base.
func rebase(font []byte, base uint32) []byte {
	out := append([]byte(nil), font...)
	numTables := int(binary.BigEndian.Uint16(out[4:]))
	for i := range numTables {
		entry := out[sfntHeaderSize+tableEntrySize*i:]
		offset := binary.BigEndian.Uint32(entry[8:])
		binary.BigEndian.PutUint32(entry[8:], offset+base)
	}
	return out
}

// Font returns a TrueType-flavoured sfnt with a name table holding records.
func Font(records ...Record) []byte {
	name := nameTable(records)

	tableOffset := uint32(sfntHeaderSize + tableEntrySize)
	out := make([]byte, tableOffset, int(tableOffset)+len(name)+3)
	binary.BigEndian.PutUint32(out[0:], 0x00010000)
	binary.BigEndian.PutUint16(out[4:], 1)  // numTables
	binary.BigEndian.PutUint16(out[6:], 16) // searchRange
	binary.BigEndian.PutUint16(out[8:], 0)  // entrySelector
	binary.BigEndian.PutUint16(out[10:], 0) // rangeShift

	entry := out[sfntHeaderSize:]
	copy(entry[0:4], "name")
	binary.BigEndian.PutUint32(entry[4:], checksum(name))
	binary.BigEndian.PutUint32(entry[8:], tableOffset)
	binary.BigEndian.PutUint32(entry[12:], uint32(len(name)))

	out = append(out, name...)
	for len(out)%4 != 0 {
		out = append(out, 0)
	}
	return out
}

func nameTable(records []Record) []byte {
	sorted := append([]Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].NameID < sorted[j].NameID })

	var strs []byte
	head := make([]byte, nameHeaderSize+nameRecordSize*len(sorted))
	binary.BigEndian.PutUint16(head[0:], 0)
	binary.BigEndian.PutUint16(head[2:], uint16(len(sorted)))
	binary.BigEndian.PutUint16(head[4:], uint16(len(head)))

	for i, r := range sorted {
		encoded := encodeUTF16BE(r.Value)
		rec := head[nameHeaderSize+nameRecordSize*i:]
		binary.BigEndian.PutUint16(rec[0:], platformMicrosoft)
		binary.BigEndian.PutUint16(rec[2:], encodingUnicodeBMP)
		binary.BigEndian.PutUint16(rec[4:], languageEnglishUS)
		binary.BigEndian.PutUint16(rec[6:], r.NameID)
		binary.BigEndian.PutUint16(rec[8:], uint16(len(encoded)))
		binary.BigEndian.PutUint16(rec[10:], uint16(len(strs)))
		strs = append(strs, encoded...)
	}
	return append(head, strs...)
}

func encodeUTF16BE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(out[2*i:], u)
	}
	return out
}

func checksum(b []byte) uint32 {
	var sum uint32
	for i := 0; i < len(b); i += 4 {
		var word [4]byte
		copy(word[:], b[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}
