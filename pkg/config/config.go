package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Development fallbacks mirror the legacy deployment; override both in any
// real environment.
const (
	devAPIToken      = "institute_api_token_2024_soran"
	devAdminPassword = "admin123"
)

type Config struct {
	Env  string
	Port int

	// APIToken is the static pre-shared bearer token granting full access.
	APIToken string
	// AdminPassword guards the destructive data-wipe endpoint. Accepts either
	// a cleartext value or a bcrypt hash of it.
	AdminPassword string

	DataDir string

	CORS      CORSConfig
	Log       LogConfig
	Exports   ExportsConfig
	RateLimit RateLimitConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportsConfig toggles report file exports (CSV/PDF).
type ExportsConfig struct {
	Enabled bool
}

// RateLimitConfig gates the per-IP limiter on the backup endpoint.
type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
	Burst     int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIToken = v.GetString("API_TOKEN")
	cfg.AdminPassword = v.GetString("ADMIN_PASSWORD")
	cfg.DataDir = v.GetString("DATA_DIR")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	cfg.RateLimit = RateLimitConfig{
		Enabled:   v.GetBool("ENABLE_RATE_LIMIT"),
		PerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		Burst:     v.GetInt("RATE_LIMIT_BURST"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 5000)

	v.SetDefault("API_TOKEN", devAPIToken)
	v.SetDefault("ADMIN_PASSWORD", devAdminPassword)
	v.SetDefault("DATA_DIR", "./data")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_EXPORTS", true)
	v.SetDefault("ENABLE_RATE_LIMIT", false)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("RATE_LIMIT_BURST", 10)
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
