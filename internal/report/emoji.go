package report

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/fontreport"
	"github.com/gogpu/fontreport/internal/metadata"
)

// EmojiRow is an emoji support record joined with the emoji registry.
type EmojiRow struct {
	// File is the font file name without its api_level/<level>/ prefix.
	File       string
	APILevel   int
	Codepoints string
	Supported  bool
	Level      float64
	Notes      string
}

// JoinEmoji joins support rows with the registry on codepoints and keeps the
// fully-qualified sequences. The emoji level of the support row wins over
// the registry's. Support rows without a registry entry are dropped.
func JoinEmoji(support []metadata.Support, registry []metadata.Emoji) ([]EmojiRow, error) {
	byCodepoints := make(map[string][]metadata.Emoji, len(registry))
	for _, e := range registry {
		byCodepoints[e.Codepoints] = append(byCodepoints[e.Codepoints], e)
	}

	var (
		rows      []EmojiRow
		unmatched int
	)
	for _, s := range support {
		matches, ok := byCodepoints[s.Codepoints]
		if !ok {
			unmatched++
			continue
		}
		for _, e := range matches {
			if e.Status != metadata.StatusFullyQualified {
				continue
			}
			level, file, err := splitFontPath(s.File)
			if err != nil {
				return nil, err
			}
			rows = append(rows, EmojiRow{
				File:       file,
				APILevel:   level,
				Codepoints: s.Codepoints,
				Supported:  s.Supported,
				Level:      s.Level,
				Notes:      e.Notes,
			})
		}
	}

	fontreport.Logger().Debug("joined emoji support",
		"support_rows", len(support), "joined", len(rows), "unmatched", unmatched)
	return rows, nil
}

// splitFontPath decodes "api_level/<level>/<file>".
func splitFontPath(p string) (int, string, error) {
	parts := strings.Split(p, "/")
	if len(parts) < 3 {
		return 0, "", fmt.Errorf("%w: %q", ErrMalformedFontPath, p)
	}
	level, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q: %w", ErrMalformedFontPath, p, err)
	}
	return level, parts[2], nil
}

// LevelStats counts supported sequences of one emoji level in one font.
type LevelStats struct {
	File      string
	APILevel  int
	Level     float64
	Supported int
	Total     int
}

// APIEmojiStats rolls LevelStats up to an API level.
type APIEmojiStats struct {
	APILevel  int
	Supported int
	Total     int
	// Delta is Supported minus the previous level's Supported,
	// zero for the lowest level.
	Delta int
}

type levelKey struct {
	file     string
	apiLevel int
	level    float64
}

// EmojiSummary aggregates joined rows per (font file, API level, emoji
// level), sorted by those keys, and per API level, ascending.
func EmojiSummary(rows []EmojiRow) ([]LevelStats, []APIEmojiStats) {
	groups := make(map[levelKey]*LevelStats)
	for _, r := range rows {
		k := levelKey{r.File, r.APILevel, r.Level}
		g, ok := groups[k]
		if !ok {
			g = &LevelStats{File: r.File, APILevel: r.APILevel, Level: r.Level}
			groups[k] = g
		}
		g.Total++
		if r.Supported {
			g.Supported++
		}
	}

	byLevel := make([]LevelStats, 0, len(groups))
	for _, g := range groups {
		byLevel = append(byLevel, *g)
	}
	slices.SortFunc(byLevel, func(a, b LevelStats) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.APILevel, b.APILevel),
			cmp.Compare(a.Level, b.Level),
		)
	})

	var byAPI []APIEmojiStats
	index := make(map[int]int)
	for _, ls := range byLevel {
		i, ok := index[ls.APILevel]
		if !ok {
			i = len(byAPI)
			index[ls.APILevel] = i
			byAPI = append(byAPI, APIEmojiStats{APILevel: ls.APILevel})
		}
		byAPI[i].Supported += ls.Supported
		byAPI[i].Total += ls.Total
	}
	slices.SortFunc(byAPI, func(a, b APIEmojiStats) int {
		return cmp.Compare(a.APILevel, b.APILevel)
	})
	for i := 1; i < len(byAPI); i++ {
		byAPI[i].Delta = byAPI[i].Supported - byAPI[i-1].Supported
	}

	return byLevel, byAPI
}
