package report

import (
	"sort"

	"github.com/gogpu/fontreport/internal/metadata"
)

// bytesPerMB converts byte counts to the MB figures used by the reports.
const bytesPerMB = 1 << 20

// FontStats aggregates the font files of one API level.
type FontStats struct {
	APILevel int `json:"-"`
	NumFiles int `json:"num_files"`
	// SizeMB is the total size of the level's font files in MiB.
	SizeMB float64 `json:"size_MB"`
	// DeltaSizeMB is SizeMB minus the previous level's SizeMB,
	// zero for the lowest level.
	DeltaSizeMB float64 `json:"delta_size_MB"`
}

// FontSummary groups fonts by API level, ascending. Only levels that have at
// least one font produce a row, so deltas are taken between consecutive
// levels present in the data.
func FontSummary(fonts []metadata.Font) []FontStats {
	type acc struct {
		count int
		size  int64
	}
	byLevel := make(map[int]*acc)
	for _, f := range fonts {
		a, ok := byLevel[f.APILevel]
		if !ok {
			a = &acc{}
			byLevel[f.APILevel] = a
		}
		a.count++
		a.size += f.Size
	}

	levels := make([]int, 0, len(byLevel))
	for level := range byLevel {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	out := make([]FontStats, len(levels))
	for i, level := range levels {
		a := byLevel[level]
		out[i] = FontStats{
			APILevel: level,
			NumFiles: a.count,
			SizeMB:   float64(a.size) / bytesPerMB,
		}
		if i > 0 {
			out[i].DeltaSizeMB = out[i].SizeMB - out[i-1].SizeMB
		}
	}
	return out
}
