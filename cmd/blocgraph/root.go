package main

import (
	"github.com/spf13/cobra"
)

// rootFlags are the persistent flags shared by every command. Parameter
// flags only override the config when set explicitly.
type rootFlags struct {
	config        string
	dataset       string
	source        string
	minFilms      int
	minCollab     int
	relevanceNB   int
	relevanceDiff int
	threshold     float64
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "blocgraph",
		Short:         "Cold War co-production graphs from a movie dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			if _, err := ctx.ensureConfig(cmd); err != nil {
				return err
			}
			ctx.bindRun(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.dataset, "dataset", "", "Preprocessed movie CSV (overrides paths.dataset)")
	pf.StringVar(&flags.source, "source", sourceCSV, "Dataset source: csv or sqlite")
	pf.IntVar(&flags.minFilms, "min-films", 0, "Keep countries with more than this many movies")
	pf.IntVar(&flags.minCollab, "min-collab", 0, "Keep pairs with more than this many co-productions")
	pf.IntVar(&flags.relevanceNB, "relevance-nb", 0, "Movies a country needs before a verdict is given")
	pf.IntVar(&flags.relevanceDiff, "relevance-diff", 0, "Western plus Eastern movies needed before a bloc is assigned")
	pf.Float64Var(&flags.threshold, "threshold", 0, "Percentage-point gap needed to assign a bloc")

	rootCmd.AddCommand(newGraphCommand(ctx))
	rootCmd.AddCommand(newMapCommand(ctx))
	rootCmd.AddCommand(newSidesCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newMetricsCommand(ctx))
	rootCmd.AddCommand(newSweepCommand(ctx))
	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
