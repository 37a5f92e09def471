package report

import (
	"cmp"
	"slices"
)

// DetailRow is one emoji_detail.json record.
type DetailRow struct {
	Codepoints string  `json:"codepoints"`
	Level      float64 `json:"emoji_level"`
	// APISupport lists, ascending, the API levels supporting the sequence.
	APISupport []int `json:"api_support"`
	// Notes holds the distinct notes in first-seen order.
	Notes []string `json:"notes"`
}

type detailKey struct {
	codepoints string
	level      float64
}

// BuildDetail groups joined rows by (codepoints, emoji level), sorted by
// those keys, for searching emoji sequences.
func BuildDetail(rows []EmojiRow) []DetailRow {
	type acc struct {
		apis  map[int]struct{}
		notes []string
		seen  map[string]struct{}
	}
	groups := make(map[detailKey]*acc)
	for _, r := range rows {
		k := detailKey{r.Codepoints, r.Level}
		a, ok := groups[k]
		if !ok {
			a = &acc{apis: make(map[int]struct{}), seen: make(map[string]struct{})}
			groups[k] = a
		}
		if r.Supported {
			a.apis[r.APILevel] = struct{}{}
		}
		if _, dup := a.seen[r.Notes]; !dup {
			a.seen[r.Notes] = struct{}{}
			a.notes = append(a.notes, r.Notes)
		}
	}

	out := make([]DetailRow, 0, len(groups))
	for k, a := range groups {
		apis := make([]int, 0, len(a.apis))
		for level := range a.apis {
			apis = append(apis, level)
		}
		slices.Sort(apis)
		out = append(out, DetailRow{
			Codepoints: k.codepoints,
			Level:      k.level,
			APISupport: apis,
			Notes:      a.notes,
		})
	}
	slices.SortFunc(out, func(a, b DetailRow) int {
		return cmp.Or(cmp.Compare(a.Codepoints, b.Codepoints), cmp.Compare(a.Level, b.Level))
	})
	return out
}
