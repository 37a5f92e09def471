package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gogpu/fontreport"
	"github.com/gogpu/fontreport/internal/metadata"
)

// SummaryEntry is the emoji_summary.json value for one API level.
type SummaryEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	// Fonts is nil when the level has no font metadata.
	Fonts *FontStats `json:"fonts"`
	Emoji EmojiStats `json:"emoji"`
}

// EmojiStats is the emoji part of a SummaryEntry.
type EmojiStats struct {
	Delta     int       `json:"delta"`
	Supported int       `json:"supported"`
	ByLevel   []ByLevel `json:"by_level"`
}

// ByLevel is one font's support for one emoji level.
type ByLevel struct {
	Level     float64 `json:"emoji_level"`
	Supported int     `json:"supported"`
	Total     int     `json:"total"`
}

// Summary maps every descriptor API level to its entry. It marshals to a
// JSON object whose keys keep the descriptor order.
type Summary struct {
	levels  []int
	entries map[int]*SummaryEntry
}

// NewSummary creates a summary with an empty entry for every level.
func NewSummary(levels []metadata.APILevel) *Summary {
	s := &Summary{
		levels:  make([]int, 0, len(levels)),
		entries: make(map[int]*SummaryEntry, len(levels)),
	}
	for _, l := range levels {
		if _, dup := s.entries[l.Level]; dup {
			continue
		}
		s.levels = append(s.levels, l.Level)
		s.entries[l.Level] = &SummaryEntry{
			Name:    l.Name,
			Version: l.Version,
			Emoji:   EmojiStats{ByLevel: []ByLevel{}},
		}
	}
	return s
}

// Levels returns the API levels in descriptor order.
func (s *Summary) Levels() []int {
	return append([]int(nil), s.levels...)
}

// Entry returns the entry of an API level.
func (s *Summary) Entry(level int) (*SummaryEntry, bool) {
	e, ok := s.entries[level]
	return e, ok
}

func (s *Summary) entry(level int) (*SummaryEntry, error) {
	e, ok := s.entries[level]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAPILevel, level)
	}
	return e, nil
}

// AddFonts stores the per-level font statistics.
func (s *Summary) AddFonts(stats []FontStats) error {
	for i := range stats {
		e, err := s.entry(stats[i].APILevel)
		if err != nil {
			return err
		}
		fs := stats[i]
		e.Fonts = &fs
	}
	return nil
}

// AddEmoji appends the per-font emoji level rows and sets the per-level
// supported count and delta.
func (s *Summary) AddEmoji(byLevel []LevelStats, byAPI []APIEmojiStats) error {
	for _, ls := range byLevel {
		e, err := s.entry(ls.APILevel)
		if err != nil {
			return err
		}
		e.Emoji.ByLevel = append(e.Emoji.ByLevel, ByLevel{
			Level:     ls.Level,
			Supported: ls.Supported,
			Total:     ls.Total,
		})
	}
	for _, as := range byAPI {
		e, err := s.entry(as.APILevel)
		if err != nil {
			return err
		}
		e.Emoji.Delta = as.Delta
		e.Emoji.Supported = as.Supported
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, level := range s.levels {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(level)))
		buf.WriteByte(':')
		if err := enc.Encode(s.entries[level]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BuildSummary assembles emoji_summary.json: a skeleton from the descriptor
// table, filled with font statistics and emoji support aggregates.
func BuildSummary(levels []metadata.APILevel, fonts []metadata.Font, rows []EmojiRow) (*Summary, error) {
	s := NewSummary(levels)
	if err := s.AddFonts(FontSummary(fonts)); err != nil {
		return nil, err
	}
	if err := s.AddEmoji(EmojiSummary(rows)); err != nil {
		return nil, err
	}
	fontreport.Logger().Info("built summary", "levels", len(s.levels))
	return s, nil
}
