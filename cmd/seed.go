package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/foodyatra/foodyatra/internal/factories"
	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/foodyatra/foodyatra/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the catalog with demo restaurants, dishes, riders and zones",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runSeed(cmd.Context(), cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Int("seed-restaurants", 8, "Number of demo restaurants")
	seedCmd.Flags().Int("seed-dishes-per-restaurant", 4, "Dishes per demo restaurant")
	seedCmd.Flags().Int("seed-riders", 4, "Number of demo riders")
	seedCmd.Flags().Int("seed-zones", 50, "Number of delivery zones besides the city center")

	viper.BindPFlags(seedCmd.Flags())
}

func runSeed(ctx context.Context, cfg *models.Config) error {
	applySeedDefaults(cfg)

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	restaurantRepo := postgres.NewRestaurantRepository(pool)
	dishRepo := postgres.NewDishRepository(pool)
	riderRepo := postgres.NewRiderRepository(pool)
	zoneRepo := postgres.NewZoneRepository(pool)

	restaurantFactory := &factories.RestaurantFactory{}
	dishFactory := &factories.DishFactory{}
	riderFactory := &factories.RiderFactory{}
	zoneFactory := &factories.ZoneFactory{}

	bar := progressbar.Default(int64(cfg.SeedRestaurants+cfg.SeedRiders+1), "seeding")

	var restaurants []*models.Restaurant
	var dishes []*models.Dish
	for i := 0; i < cfg.SeedRestaurants; i++ {
		restaurant := restaurantFactory.CreateRestaurant()
		for j := 0; j < cfg.SeedDishesPerRest; j++ {
			dish := dishFactory.CreateDish(restaurant)
			restaurant.DishIDs = append(restaurant.DishIDs, dish.ID)
			dishes = append(dishes, &dish)
		}
		restaurants = append(restaurants, restaurant)
		bar.Add(1)
	}
	if err := restaurantRepo.BulkCreate(ctx, restaurants); err != nil {
		return fmt.Errorf("failed to seed restaurants: %w", err)
	}
	if err := dishRepo.BulkCreate(ctx, dishes); err != nil {
		return fmt.Errorf("failed to seed dishes: %w", err)
	}

	var riders []*models.Rider
	for i := 0; i < cfg.SeedRiders; i++ {
		riders = append(riders, riderFactory.CreateRider())
		bar.Add(1)
	}
	if err := riderRepo.BulkCreate(ctx, riders); err != nil {
		return fmt.Errorf("failed to seed riders: %w", err)
	}

	zones := zoneFactory.CreateZones(cfg.CityName, cfg.SeedZones)
	if err := zoneRepo.BulkCreate(ctx, zones); err != nil {
		return fmt.Errorf("failed to seed zones: %w", err)
	}
	bar.Add(1)

	log.Printf("seeded %d restaurants, %d dishes, %d riders, %d zones",
		len(restaurants), len(dishes), len(riders), len(zones))
	return nil
}

func applySeedDefaults(cfg *models.Config) {
	if cfg.SeedRestaurants == 0 {
		cfg.SeedRestaurants = 8
	}
	if cfg.SeedDishesPerRest == 0 {
		cfg.SeedDishesPerRest = 4
	}
	if cfg.SeedRiders == 0 {
		cfg.SeedRiders = 4
	}
	if cfg.SeedZones == 0 {
		cfg.SeedZones = 50
	}
}
