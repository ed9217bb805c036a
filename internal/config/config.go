package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"http"`

	Database struct {
		// SQLitePath is the default single-file local store. When
		// PostgresURL is set it takes precedence.
		SQLitePath  string `mapstructure:"sqlite_path"`
		PostgresURL string `mapstructure:"postgres_url"`
	} `mapstructure:"database"`

	Ledger struct {
		// MaxAddUses caps a single "add uses" scaling operation.
		MaxAddUses int `mapstructure:"max_add_uses"`
	} `mapstructure:"ledger"`

	License struct {
		TokenSecret string        `mapstructure:"token_secret"`
		TokenTTL    time.Duration `mapstructure:"token_ttl"`
	} `mapstructure:"license"`

	Updater struct {
		ReleasesURL    string        `mapstructure:"releases_url"`
		CurrentVersion string        `mapstructure:"current_version"`
		CheckInterval  time.Duration `mapstructure:"check_interval"`
		InitialDelay   time.Duration `mapstructure:"initial_delay"`
	} `mapstructure:"updater"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("config")

	v.SetDefault("http.port", "8080")
	v.SetDefault("database.sqlite_path", "salon_sage.db")
	v.SetDefault("database.postgres_url", "")
	v.SetDefault("ledger.max_add_uses", 50)
	v.SetDefault("license.token_secret", "")
	v.SetDefault("license.token_ttl", 12*time.Hour)
	v.SetDefault("updater.releases_url", "")
	v.SetDefault("updater.current_version", "1.0.0")
	v.SetDefault("updater.check_interval", time.Hour)
	v.SetDefault("updater.initial_delay", 30*time.Second)

	v.SetEnvPrefix("SALON")
	v.AutomaticEnv()
	_ = v.BindEnv("http.port", "PORT")
	_ = v.BindEnv("database.sqlite_path", "SQLITE_PATH")
	_ = v.BindEnv("database.postgres_url", "POSTGRES_URL")
	_ = v.BindEnv("license.token_secret", "LICENSE_TOKEN_SECRET")
	_ = v.BindEnv("updater.releases_url", "AUTO_UPDATE_URL")
	_ = v.BindEnv("updater.current_version", "CURRENT_VERSION")

	// A config file is optional, env vars and defaults are enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
