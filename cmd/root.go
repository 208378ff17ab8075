package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "foodyatra",
	Short: "Order pricing and fulfillment engine for village food delivery",
	Long: `foodyatra is the order core of a local food-ordering storefront:
cart pricing, coupon validation, order creation with restaurant handoff,
and the fulfillment state machine behind the operations dashboard.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.PersistentFlags().String("postgres-dsn", "postgres://localhost:5432/foodyatra", "Postgres connection string")
	rootCmd.PersistentFlags().String("redis-addr", "localhost:6379", "Redis address for the order counter")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "Enable Kafka order handoff")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlags(rootCmd.PersistentFlags())
}

func initConfig() {
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
