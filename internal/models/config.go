package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	CityName        string `mapstructure:"city_name"`
	PostgresDSN     string `mapstructure:"postgres_dsn"`
	RedisAddr       string `mapstructure:"redis_addr"`
	RedisPassword   string `mapstructure:"redis_password"`
	RedisDB         int    `mapstructure:"redis_db"`
	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	HandoffTopic    string `mapstructure:"handoff_topic"`
	// RestaurantPhone is the number order confirmations are addressed to.
	RestaurantPhone string `mapstructure:"restaurant_phone"`

	// Seed command settings
	SeedRestaurants   int `mapstructure:"seed_restaurants"`
	SeedDishesPerRest int `mapstructure:"seed_dishes_per_restaurant"`
	SeedRiders        int `mapstructure:"seed_riders"`
	SeedZones         int `mapstructure:"seed_zones"`

	// Export command settings
	ExportFolder string    `mapstructure:"export_folder"`
	ExportSince  time.Time `mapstructure:"export_since"`
	S3Bucket     string    `mapstructure:"s3_bucket"`
	S3Region     string    `mapstructure:"s3_region"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("city_name", "Vadnagar")
	viper.SetDefault("handoff_topic", "order_handoff")
	viper.SetDefault("export_since", time.Time{}.Format(time.RFC3339))

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
