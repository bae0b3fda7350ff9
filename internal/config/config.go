package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env      string
	Port     string
	LogLevel string
	// SiteURL prefixes validation links. Derived from the request when empty.
	SiteURL     string
	DatabaseURL string

	TemplatePath string
	// FontPath is empty when the bundled Go Regular font is used.
	FontPath     string
	QRForeground string
	QRBackground string

	AdminUser     string
	AdminPassword string
	TokenSecret   string
	TokenMaxAge   time.Duration

	CacheRedisURL string
	CacheTTL      time.Duration

	MetricsEnabled bool
	DonateURL      string
}

// LoadFile loads config from env and the given optional env file.
func LoadFile(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", "sqlite://certgen.db")
	v.SetDefault("ASSETS_DIR", "web/static")
	v.SetDefault("ADMIN_USER", "admin")
	v.SetDefault("TOKEN_MAX_AGE", "24h")
	v.SetDefault("CACHE_TTL", "24h")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("QR_FOREGROUND", "#000000")
	v.SetDefault("QR_BACKGROUND", "#ffffff")
	v.SetDefault("DONATE_URL", "https://paypal.me/srisubaram")

	assets := v.GetString("ASSETS_DIR")
	templatePath := v.GetString("TEMPLATE_PATH")
	if templatePath == "" {
		templatePath = filepath.Join(assets, "certificate-template.svg")
	}

	cfg := &Config{
		Env:            v.GetString("APP_ENV"),
		Port:           v.GetString("PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		SiteURL:        strings.TrimRight(strings.TrimSpace(v.GetString("SITE_URL")), "/"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		TemplatePath:   templatePath,
		FontPath:       v.GetString("FONT_PATH"),
		QRForeground:   v.GetString("QR_FOREGROUND"),
		QRBackground:   v.GetString("QR_BACKGROUND"),
		AdminUser:      v.GetString("ADMIN_USER"),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
		TokenSecret:    v.GetString("TOKEN_SECRET"),
		TokenMaxAge:    v.GetDuration("TOKEN_MAX_AGE"),
		CacheRedisURL:  v.GetString("CACHE_REDIS_URL"),
		CacheTTL:       v.GetDuration("CACHE_TTL"),
		MetricsEnabled: v.GetBool("METRICS_ENABLED"),
		DonateURL:      v.GetString("DONATE_URL"),
	}

	if cfg.TokenMaxAge <= 0 {
		return nil, errors.Errorf("TOKEN_MAX_AGE must be positive, got '%s'", v.GetString("TOKEN_MAX_AGE"))
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}
