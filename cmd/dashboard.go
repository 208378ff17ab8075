package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/foodyatra/foodyatra/internal/ops"
	"github.com/foodyatra/foodyatra/internal/order"
	"github.com/foodyatra/foodyatra/internal/repositories/postgres"
	"github.com/foodyatra/foodyatra/internal/repositories/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the operations summary and per-rider monthly commission",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runDashboard(cmd.Context(), cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Dashboard failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(ctx context.Context, cfg *models.Config) error {
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	seq := redis.NewSequenceRepository(cfg)
	defer seq.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	riderRepo := postgres.NewRiderRepository(pool)
	service := ops.NewService(cfg, orderRepo, riderRepo, order.NewFactory(seq), nil)

	summary, err := service.Dashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Revenue (paid): ₹%d\n", summary.TotalRevenue)
	fmt.Printf("Pending orders: %d\n", summary.PendingCount)
	fmt.Printf("Active orders:  %d\n", summary.ActiveCount)

	riders, err := riderRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, rider := range riders {
		stats, err := service.RiderStats(ctx, rider.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%-24s delivered %d, earned ₹%d this month\n", rider.Name, stats.Count, stats.Earnings)
	}
	return nil
}
