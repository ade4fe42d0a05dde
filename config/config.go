// Package config loads runtime settings from the environment with sane
// defaults for local use.
package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr       string        `mapstructure:"addr"`
	DBPath     string        `mapstructure:"db_path"`
	RedisAddr  string        `mapstructure:"redis_addr"`
	JWTSecret  string        `mapstructure:"jwt_secret"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
	QuotaLimit int           `mapstructure:"quota_limit"`
}

// Load reads POPIN_* environment variables over the built-in defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("popin")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "popin.db")
	v.SetDefault("redis_addr", "127.0.0.1:6379")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("cache_ttl", 30*time.Second)
	v.SetDefault("quota_limit", 2000)

	// AutomaticEnv alone does not bind keys that are only ever read through
	// Unmarshal, so bind them explicitly.
	for _, key := range []string{"addr", "db_path", "redis_addr", "jwt_secret", "cache_ttl", "quota_limit"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
