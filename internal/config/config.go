package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Band   BandConfig   `mapstructure:"band"`
	Market MarketConfig `mapstructure:"market"`
	Store  StoreConfig  `mapstructure:"store"`
	Report ReportConfig `mapstructure:"report"`
	Notify NotifyConfig `mapstructure:"notify"`
}

// BandConfig holds Band open-API configuration
type BandConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	AccessToken          string `mapstructure:"access_token"`
	BandKey              string `mapstructure:"band_key"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`

	// Post selection: content marker and vendor name the market post
	// must carry.
	PostMarker string `mapstructure:"post_marker"`
	VendorName string `mapstructure:"vendor_name"`
}

// MarketConfig holds the tracked category set and alerting policy
type MarketConfig struct {
	Categories     []string `mapstructure:"categories"`
	AlertThreshold float64  `mapstructure:"alert_threshold"`
}

// StoreConfig holds history store configuration
type StoreConfig struct {
	Backend   string `mapstructure:"backend"` // "csv" or "sqlite"
	Path      string `mapstructure:"path"`
	StatePath string `mapstructure:"state_path"`
	Upsert    bool   `mapstructure:"upsert"`
}

// ReportConfig holds report rendering configuration
type ReportConfig struct {
	OutputDir  string `mapstructure:"output_dir"`
	MaxWorkers int    `mapstructure:"max_workers"`
}

// NotifyConfig holds ntfy notification configuration
type NotifyConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Topic   string `mapstructure:"topic"`
	Timeout int    `mapstructure:"timeout"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config.yaml is fine, defaults plus env cover the daily run.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("band.base_url", "https://openapi.band.us")
	viper.SetDefault("band.access_token", "")
	viper.SetDefault("band.band_key", "")
	viper.SetDefault("band.timeout", 30)
	viper.SetDefault("band.max_retries", 3)
	viper.SetDefault("band.max_requests_per_second", 2)
	viper.SetDefault("band.post_marker", "시세표")
	viper.SetDefault("band.vendor_name", "줄포상회")

	viper.SetDefault("market.categories", []string{"대게", "킹크랩", "홍게", "꽃게", "털게"})
	viper.SetDefault("market.alert_threshold", 0.85)

	viper.SetDefault("store.backend", "csv")
	viper.SetDefault("store.path", "crustacean_prices.csv")
	viper.SetDefault("store.state_path", ".last_ingested")
	viper.SetDefault("store.upsert", false)

	viper.SetDefault("report.output_dir", "docs")
	viper.SetDefault("report.max_workers", 4)

	viper.SetDefault("notify.base_url", "https://ntfy.sh")
	viper.SetDefault("notify.topic", "")
	viper.SetDefault("notify.timeout", 10)
}
