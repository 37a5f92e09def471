package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fontreport"
	"github.com/gogpu/fontreport/internal/chart"
	"github.com/gogpu/fontreport/internal/config"
	"github.com/gogpu/fontreport/internal/metadata"
	"github.com/gogpu/fontreport/internal/report"
)

// Output file names.
const (
	summaryFile    = "emoji_summary.json"
	detailFile     = "emoji_detail.json"
	sizeTotalFile  = "size_total.png"
	sizeChangeFile = "size_change.png"
)

func run(w io.Writer, f flags) error {
	if f.verbose {
		fontreport.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer fontreport.SetLogger(nil)
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.out != "" {
		cfg.OutDir = f.out
	}
	if f.metadata != "" {
		cfg.Metadata.Dir = f.metadata
	}

	in, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	outDir, err := config.ExpandHome(cfg.OutDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("fontassets: %w", err)
	}

	rows, err := report.JoinEmoji(in.support, in.registry)
	if err != nil {
		return err
	}
	summary, err := report.BuildSummary(in.levels, in.fonts, rows)
	if err != nil {
		return err
	}

	out := func(name string) string { return filepath.Join(outDir, name) }

	if err := report.WriteJSON(out(summaryFile), summary); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", out(summaryFile))

	if err := report.WriteJSON(out(detailFile), report.BuildDetail(rows)); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", out(detailFile))

	stats := report.FontSummary(in.fonts)
	charts := []struct {
		file  string
		chart chart.BarChart
	}{
		{sizeTotalFile, sizeChart("Font size by API level", "size_MB", stats, func(s report.FontStats) float64 { return s.SizeMB })},
		{sizeChangeFile, sizeChart("Font size change by API level", "delta_size_MB", stats, func(s report.FontStats) float64 { return s.DeltaSizeMB })},
	}
	for _, c := range charts {
		if len(c.chart.Bars) == 0 {
			fontreport.Logger().Warn("no font data, skipping chart", "file", c.file)
			continue
		}
		if err := chart.SavePNG(out(c.file), c.chart, chart.WithSize(cfg.Chart.Width, cfg.Chart.Height)); err != nil {
			return err
		}
		fmt.Fprintf(w, "Wrote %s\n", out(c.file))
	}

	var totalMB float64
	for _, s := range stats {
		totalMB += s.SizeMB
	}
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%d fonts (%.1f MB) and %d emoji support rows across %d API levels\n",
		len(in.fonts), totalMB, len(rows), len(in.levels))
	return nil
}

type inputs struct {
	levels   []metadata.APILevel
	fonts    []metadata.Font
	support  []metadata.Support
	registry []metadata.Emoji
}

func loadInputs(cfg *config.Config) (*inputs, error) {
	in := &inputs{levels: metadata.APILevels()}

	fonts, err := loadFonts(cfg)
	if err != nil {
		return nil, err
	}
	in.fonts = fonts

	path, err := cfg.MetadataPath(cfg.Metadata.Support)
	if err != nil {
		return nil, err
	}
	if in.support, err = metadata.LoadSupport(path); err != nil {
		return nil, err
	}

	path, err = cfg.MetadataPath(cfg.Metadata.EmojiTest)
	if err != nil {
		return nil, err
	}
	if in.registry, err = metadata.LoadEmojiTest(path); err != nil {
		return nil, err
	}

	fontreport.Logger().Info("loaded metadata",
		"fonts", len(in.fonts), "support", len(in.support), "emoji", len(in.registry))
	return in, nil
}

// loadFonts reads the fonts table, falling back to scanning the fonts
// directory when the table is missing and a directory is configured.
func loadFonts(cfg *config.Config) ([]metadata.Font, error) {
	path, err := cfg.MetadataPath(cfg.Metadata.Fonts)
	if err != nil {
		return nil, err
	}
	fonts, err := metadata.LoadFonts(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) || cfg.Metadata.FontsDir == "" {
		return fonts, err
	}

	dir, err := config.ExpandHome(cfg.Metadata.FontsDir)
	if err != nil {
		return nil, err
	}
	fontreport.Logger().Info("fonts table missing, scanning", "table", path, "dir", dir)
	return metadata.ScanFonts(os.DirFS(dir))
}

func sizeChart(title, column string, stats []report.FontStats, value func(report.FontStats) float64) chart.BarChart {
	bc := chart.BarChart{Title: title, Column: column}
	for _, s := range stats {
		bc.Bars = append(bc.Bars, chart.Bar{Label: strconv.Itoa(s.APILevel), Value: value(s)})
	}
	return bc
}
