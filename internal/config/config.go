package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string           `json:"env"`
	Http       HttpConfig       `json:"http"`
	Redis      RedisConfig      `json:"redis"`
	Webhook    WebhookConfig    `json:"webhook"`
	Features   FeatureConfig    `json:"features"`
	Admin      AdminConfig      `json:"admin"`
	Summarizer SummarizerConfig `json:"summarizer"`
	Route      RouteConfig      `json:"route"`
	Feed       FeedConfig       `json:"feed"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type RedisConfig struct {
	Enabled  bool          `json:"enabled"`
	Addr     string        `json:"addr"`
	Password string        `json:"password,omitempty"`
	DB       int           `json:"db"`
	CacheTTL time.Duration `json:"cache_ttl"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

// FeatureConfig selects which variant of the app is served.
type FeatureConfig struct {
	AdminGate   bool   `json:"admin_gate"`
	Summarizer  bool   `json:"summarizer"`
	MapProvider string `json:"map_provider"`
}

type AdminConfig struct {
	Secret     string        `json:"-"`
	SigningKey string        `json:"-"`
	TokenTTL   time.Duration `json:"token_ttl"`
}

type SummarizerConfig struct {
	APIKey  string        `json:"-"`
	Model   string        `json:"model"`
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

type RouteConfig struct {
	Origin         string        `json:"origin"`
	Destination    string        `json:"destination"`
	ExternalLink   string        `json:"external_link"`
	DefaultTramo   string        `json:"default_tramo"`
	StatusWindow   time.Duration `json:"status_window"`
	BaseTravelTime time.Duration `json:"base_travel_time"`
	CenterLat      float64       `json:"center_lat"`
	CenterLng      float64       `json:"center_lng"`
}

type FeedConfig struct {
	SeedDemo    bool          `json:"seed_demo"`
	DraftTTL    time.Duration `json:"draft_ttl"`
	GeoTimeout  time.Duration `json:"geo_timeout"`
	SubmitRPS   int           `json:"submit_rps"`
	SubmitBurst int           `json:"submit_burst"`
	LimiterTTL  time.Duration `json:"limiter_ttl"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: getEnvDuration("ADVISORY_CACHE_TTL", 5*time.Minute),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", true),
		},
		Features: FeatureConfig{
			AdminGate:   getEnvBool("FEATURE_ADMIN_GATE", true),
			Summarizer:  getEnvBool("FEATURE_SUMMARIZER", true),
			MapProvider: strings.ToLower(getEnv("MAP_PROVIDER", "google")),
		},
		Admin: AdminConfig{
			Secret:     getEnv("ADMIN_SECRET", ""),
			SigningKey: getEnv("ADMIN_SIGNING_KEY", ""),
			TokenTTL:   getEnvDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		},
		Summarizer: SummarizerConfig{
			APIKey:  getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Timeout: getEnvDuration("SUMMARIZER_TIMEOUT", 10*time.Second),
		},
		Route: RouteConfig{
			Origin:         getEnv("ROUTE_ORIGIN", "Manzanillo, Colima"),
			Destination:    getEnv("ROUTE_DESTINATION", "Guadalajara, Jalisco"),
			ExternalLink:   getEnv("ROUTE_EXTERNAL_LINK", "https://maps.app.goo.gl/jw6nA8CyWpJzD5mt5"),
			DefaultTramo:   getEnv("ROUTE_DEFAULT_TRAMO", "Tramo Sayula-Zapotal"),
			StatusWindow:   getEnvDuration("ROUTE_STATUS_WINDOW", 2*time.Hour),
			BaseTravelTime: getEnvDuration("ROUTE_BASE_TRAVEL_TIME", 3*time.Hour),
			CenterLat:      getEnvFloat("ROUTE_CENTER_LAT", 19.86),
			CenterLng:      getEnvFloat("ROUTE_CENTER_LNG", -103.83),
		},
		Feed: FeedConfig{
			SeedDemo:    getEnvBool("FEED_SEED_DEMO", false),
			DraftTTL:    getEnvDuration("DRAFT_TTL", 30*time.Minute),
			GeoTimeout:  getEnvDuration("GEO_TIMEOUT", 8*time.Second),
			SubmitRPS:   getEnvInt("SUBMIT_RPS", 2),
			SubmitBurst: getEnvInt("SUBMIT_BURST", 5),
			LimiterTTL:  getEnvDuration("SUBMIT_LIMITER_TTL", 10*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.Bool("redis_enabled", cfg.Redis.Enabled),
		slog.Bool("admin_gate", cfg.Features.AdminGate),
		slog.Bool("summarizer", cfg.Features.Summarizer),
		slog.String("map_provider", cfg.Features.MapProvider))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Features.AdminGate {
		if c.Admin.Secret == "" {
			return errors.New("ADMIN_SECRET required when FEATURE_ADMIN_GATE is on")
		}
		if c.Admin.SigningKey == "" {
			return errors.New("ADMIN_SIGNING_KEY required when FEATURE_ADMIN_GATE is on")
		}
	}

	switch c.Features.MapProvider {
	case "google", "waze":
	default:
		return errors.New("MAP_PROVIDER must be google or waze")
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("REDIS_ADDR required when REDIS_ENABLED is on")
	}

	if !c.Webhook.Disabled {
		if c.Webhook.URL == "" {
			return errors.New("WEBHOOK_URL required when webhooks are enabled")
		}
		if !c.Redis.Enabled {
			return errors.New("REDIS_ENABLED required when webhooks are enabled")
		}
	}

	if c.Feed.GeoTimeout <= 0 || c.Summarizer.Timeout <= 0 {
		return errors.New("GEO_TIMEOUT and SUMMARIZER_TIMEOUT must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
