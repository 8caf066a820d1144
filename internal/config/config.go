package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const devSecret = "supersecret-dev-key"

type Config struct {
	Env       string `mapstructure:"env"` // local|production
	HTTPAddr  string `mapstructure:"http_addr"`
	PublicURL string `mapstructure:"public_url"` // base URL the player uses to fetch /quiz/{id}

	DBDriver string `mapstructure:"db_driver"` // sqlite|postgres
	DBDSN    string `mapstructure:"db_dsn"`

	FlagsDir string `mapstructure:"flags_dir"`

	AuthSecret  string   `mapstructure:"auth_hmac_secret"`
	CORSOrigins []string `mapstructure:"-"`
}

func (c Config) Production() bool { return c.Env == "production" }

// Load reads an optional .env file, then environment variables, on top of
// defaults suitable for local development.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("env", "local")
	v.SetDefault("http_addr", "localhost:8000")
	v.SetDefault("public_url", "")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "")
	v.SetDefault("flags_dir", "./flags")
	v.SetDefault("auth_hmac_secret", devSecret)
	v.SetDefault("cors_origins", "http://localhost:8000")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range []string{"env", "http_addr", "public_url", "db_driver", "db_dsn", "flags_dir", "auth_hmac_secret", "cors_origins"} {
		_ = v.BindEnv(k, strings.ToUpper(k))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitCSV(v.GetString("cors_origins"))
	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://" + cfg.HTTPAddr
	}
	cfg.PublicURL = strings.TrimSuffix(cfg.PublicURL, "/")

	if cfg.Production() && cfg.AuthSecret == devSecret {
		return Config{}, errors.New("AUTH_HMAC_SECRET must be set in production")
	}
	return cfg, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
