// Command fontassets builds the emoji summary and detail JSON documents and
// the font size charts from the metadata tables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	config   string
	out      string
	metadata string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "fontassets",
		Short: "Build font and emoji report assets",
		Long: `Reads font and emoji metadata, aggregates it per Android API level and
writes emoji_summary.json, emoji_detail.json, size_total.png and
size_change.png to the output directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", "fontreport.yaml", "configuration file")
	cmd.Flags().StringVar(&f.out, "out", "", "output directory (overrides config)")
	cmd.Flags().StringVar(&f.metadata, "metadata", "", "metadata directory (overrides config)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	return cmd
}
