// Command fontsizecsv writes the size and version string of font files to a
// CSV file and prints the totals.
//
// Usage:
//
//	fontsizecsv [--out fontsize.csv] [--parser gotext|ximage] <font files...>
//
// Arguments may be glob patterns, including **, for shells that do not
// expand them.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/fontreport"
	"github.com/gogpu/fontreport/internal/config"
	"github.com/gogpu/fontreport/internal/fontinfo"
	"github.com/gogpu/fontreport/internal/sizecsv"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	config  string
	out     string
	parser  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "fontsizecsv <font files...>",
		Short:         "List font file sizes and versions as CSV",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), f, args)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", "fontreport.yaml", "configuration file")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "CSV output file (default from config, fontsize.csv)")
	cmd.Flags().StringVar(&f.parser, "parser", "",
		"name table parser: "+strings.Join(fontinfo.ParserNames(), ", "))
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	return cmd
}

func run(w io.Writer, f flags, args []string) error {
	if f.verbose {
		fontreport.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer fontreport.SetLogger(nil)
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	out := cfg.SizeCSV.Output
	if f.out != "" {
		out = f.out
	}
	parser := cfg.SizeCSV.Parser
	if f.parser != "" {
		parser = f.parser
	}
	if _, err := fontinfo.LookupParser(parser); err != nil {
		return err
	}

	paths, err := sizecsv.ExpandPaths(args)
	if err != nil {
		return err
	}
	res, err := sizecsv.Collect(paths, fontinfo.WithParser(parser))
	if err != nil {
		return err
	}
	if err := res.Print(w); err != nil {
		return err
	}
	return sizecsv.WriteFile(out, res.Rows)
}
