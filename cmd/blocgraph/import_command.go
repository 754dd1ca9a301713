package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blocgraph/internal/datastore"
	"blocgraph/internal/logging"
	"blocgraph/internal/movies"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Load the dataset CSV into the SQLite cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.loggerFor(cmd.Context())
			if err != nil {
				return err
			}
			source := ctx.config.Paths.Dataset
			loaded, report, err := movies.LoadCSV(cmd.Context(), source, movies.LoadOptions{Logger: logger})
			if err != nil {
				return fmt.Errorf("load dataset %s: %w", source, err)
			}

			store, err := datastore.Open(cmd.Context(), ctx.config.Paths.DatasetCache)
			if err != nil {
				return fmt.Errorf("open dataset cache: %w", err)
			}
			defer store.Close()

			if err := store.Import(cmd.Context(), loaded.Records(), source, ctx.runID); err != nil {
				return fmt.Errorf("import dataset: %w", err)
			}
			logger.Info("dataset imported",
				logging.String("cache", store.Path()),
				logging.Int("records", loaded.Len()),
				logging.Int("skipped", report.SkippedTotal()),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d movies into %s\n", loaded.Len(), store.Path())
			if skipped := report.SkippedTotal(); skipped > 0 {
				fmt.Fprintf(out, "Skipped %d rows (%d read)\n", skipped, report.Rows)
			}
			fmt.Fprintf(out, "Run ID: %s\n", ctx.runID)
			return nil
		},
	}
}
