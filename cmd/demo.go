package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/foodyatra/foodyatra/internal/cart"
	"github.com/foodyatra/foodyatra/internal/coupon"
	"github.com/foodyatra/foodyatra/internal/factories"
	"github.com/foodyatra/foodyatra/internal/handoff"
	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/foodyatra/foodyatra/internal/ops"
	"github.com/foodyatra/foodyatra/internal/order"
	"github.com/foodyatra/foodyatra/internal/repositories/postgres"
	"github.com/foodyatra/foodyatra/internal/repositories/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run demo checkouts through the full order pipeline",
	Long: `demo places a batch of orders against the seeded catalog and walks
them through fulfillment: checkout with pricing and coupon rules, handoff
to the restaurant channel, rider assignment and status progression.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runDemo(cmd.Context(), cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Demo failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Int("demo-orders", 5, "Number of demo orders to place")

	viper.BindPFlags(demoCmd.Flags())
}

func runDemo(ctx context.Context, cfg *models.Config) error {
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	seq := redis.NewSequenceRepository(cfg)
	defer seq.Close()
	if err := seq.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	var channel handoff.Channel
	if cfg.KafkaEnabled {
		channel, err = handoff.NewSaramaChannel(cfg)
		if err != nil {
			return err
		}
	} else {
		channel = &handoff.ConsoleChannel{}
	}
	defer channel.Close()
	log.Printf("order handoff for restaurant line %s on topic %s", cfg.RestaurantPhone, cfg.HandoffTopic)

	orderRepo := postgres.NewOrderRepository(pool)
	riderRepo := postgres.NewRiderRepository(pool)
	service := ops.NewService(cfg, orderRepo, riderRepo,
		order.NewFactory(seq), handoff.NewSender(channel, cfg.HandoffTopic))

	byID, err := postgres.NewRestaurantRepository(pool).GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load restaurants: %w", err)
	}
	restaurants := make([]*models.Restaurant, 0, len(byID))
	for _, r := range byID {
		restaurants = append(restaurants, r)
	}
	zones, err := postgres.NewZoneRepository(pool).GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load zones: %w", err)
	}
	riders, err := riderRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load riders: %w", err)
	}
	if len(restaurants) == 0 || len(zones) == 0 || len(riders) == 0 {
		return fmt.Errorf("catalog is empty, run seed first")
	}
	dishRepo := postgres.NewDishRepository(pool)

	customerFactory := &factories.CustomerFactory{}
	count := viper.GetInt("demo-orders")
	if count == 0 {
		count = 5
	}
	bar := progressbar.Default(int64(count), "placing orders")

	for i := 0; i < count; i++ {
		restaurant := restaurants[rand.Intn(len(restaurants))]
		dishes, err := dishRepo.GetByRestaurantID(ctx, restaurant.ID)
		if err != nil {
			return fmt.Errorf("failed to load menu for %s: %w", restaurant.Name, err)
		}
		if len(dishes) == 0 {
			continue
		}

		basket := cart.New()
		for n := rand.Intn(3) + 1; n > 0; n-- {
			basket.Add(*dishes[rand.Intn(len(dishes))])
		}

		in := ops.CheckoutInput{
			Cart:       basket,
			Zone:       *zones[rand.Intn(len(zones))],
			Customer:   customerFactory.CreateCustomer(),
			Restaurant: *restaurant,
		}
		// New phone numbers every run, so the first-order coupon sticks
		// roughly half the time it is tried.
		if rand.Intn(2) == 0 {
			in.CouponCode = coupon.FirstOrderCode
		}

		o, err := service.Checkout(ctx, in)
		if err != nil {
			log.Printf("checkout rejected: %v", err)
			bar.Add(1)
			continue
		}

		if err := advanceDemo(ctx, service, o.ID, riders); err != nil {
			return err
		}
		bar.Add(1)
	}

	summary, err := service.Dashboard(ctx)
	if err != nil {
		return err
	}
	log.Printf("done: revenue ₹%d, %d pending, %d active",
		summary.TotalRevenue, summary.PendingCount, summary.ActiveCount)
	return nil
}

// advanceDemo walks a fresh order a random distance through its
// lifecycle so the dashboard has orders in every state to show.
func advanceDemo(ctx context.Context, service *ops.Service, orderID string, riders []*models.Rider) error {
	steps := []func() (*models.Order, error){
		func() (*models.Order, error) {
			return service.AssignRider(ctx, orderID, riders[rand.Intn(len(riders))].ID)
		},
		func() (*models.Order, error) { return service.StartCooking(ctx, orderID) },
		func() (*models.Order, error) { return service.Dispatch(ctx, orderID) },
		func() (*models.Order, error) { return service.MarkDelivered(ctx, orderID) },
		func() (*models.Order, error) { return service.MarkPaid(ctx, orderID) },
	}
	for _, step := range steps[:rand.Intn(len(steps)+1)] {
		if _, err := step(); err != nil {
			if errors.Is(err, order.ErrRiderInactive) {
				return nil
			}
			return err
		}
	}
	return nil
}
