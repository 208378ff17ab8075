package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/foodyatra/foodyatra/internal/exporter"
	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/foodyatra/foodyatra/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Archive completed order history as parquet, locally or to S3",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runExport(cmd.Context(), cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("export-folder", "archive", "Local folder for parquet archives")
	exportCmd.Flags().String("export-since", "", "Only archive orders created at or after this RFC3339 time")
	exportCmd.Flags().String("s3-bucket", "", "Upload the archive to this S3 bucket (optional)")
	exportCmd.Flags().String("s3-region", "eu-west-1", "AWS region for the archive bucket")

	viper.BindPFlags(exportCmd.Flags())
}

func runExport(ctx context.Context, cfg *models.Config) error {
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	stored, err := postgres.NewOrderRepository(pool).GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	orders := make([]models.Order, 0, len(stored))
	for _, o := range stored {
		orders = append(orders, *o)
	}

	exp, err := exporter.New(cfg)
	if err != nil {
		return err
	}
	path, err := exp.Export(orders, cfg.ExportSince)
	if err != nil {
		return err
	}
	fmt.Println("archive written:", path)
	return nil
}
