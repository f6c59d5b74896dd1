package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brewery/internal/config"
	"brewery/internal/importer"
	"brewery/pkg/logger"
)

// importCommand constructs the 'import' subcommand that loads breweries from
// a JSON file in a single transaction.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports breweries from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			file, _ := cmd.Flags().GetString("file")
			batchSize, _ := cmd.Flags().GetInt("batch-size")

			f, err := os.Open(file)
			if err != nil {
				logger.Fatal(ctx, "could not open import file", zap.Error(err))
			}
			defer func() { _ = f.Close() }()

			breweries, err := importer.Decode(f)
			if err != nil {
				logger.Fatal(ctx, "could not read import file", zap.String("file", file), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stored, err := importer.Import(ctx, strg, breweries, batchSize)
			if err != nil {
				logger.Fatal(ctx, "could not import breweries", zap.Error(err))
			}

			logger.Info(ctx, "imported breweries", zap.String("file", file), zap.Int("count", stored))
		},
	}

	cmd.Flags().String("file", "", "JSON file containing an array of breweries")
	cmd.Flags().Int("batch-size", importer.DefaultBatchSize, "Rows inserted per statement")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
