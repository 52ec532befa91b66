package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Http:     HttpConfig{Port: ":8080"},
		Features: FeatureConfig{AdminGate: true, Summarizer: true, MapProvider: "google"},
		Admin:    AdminConfig{Secret: "s3cret", SigningKey: "k", TokenTTL: time.Hour},
		Webhook:  WebhookConfig{Disabled: true},
		Summarizer: SummarizerConfig{
			Timeout: 10 * time.Second,
		},
		Feed: FeedConfig{GeoTimeout: 8 * time.Second},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	cases := map[string]func(c *Config){
		"port without colon":    func(c *Config) { c.Http.Port = "8080" },
		"admin gate no secret":  func(c *Config) { c.Admin.Secret = "" },
		"admin gate no key":     func(c *Config) { c.Admin.SigningKey = "" },
		"unknown map":           func(c *Config) { c.Features.MapProvider = "osm" },
		"redis without addr":    func(c *Config) { c.Redis.Enabled = true; c.Redis.Addr = "" },
		"webhook without url":   func(c *Config) { c.Webhook.Disabled = false },
		"webhook without redis": func(c *Config) { c.Webhook = WebhookConfig{URL: "http://hook"} },
		"zero geo timeout":      func(c *Config) { c.Feed.GeoTimeout = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestValidate_AdminGateOffNeedsNoSecret(t *testing.T) {
	c := validConfig()
	c.Features.AdminGate = false
	c.Admin = AdminConfig{}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLoad_ReadsEnv(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "hay-paso")
	t.Setenv("ADMIN_SIGNING_KEY", "signing")
	t.Setenv("MAP_PROVIDER", "WAZE")
	t.Setenv("GEO_TIMEOUT", "3s")
	t.Setenv("FEATURE_SUMMARIZER", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Features.MapProvider != "waze" {
		t.Fatalf("map provider = %q", cfg.Features.MapProvider)
	}
	if cfg.Feed.GeoTimeout != 3*time.Second {
		t.Fatalf("geo timeout = %v", cfg.Feed.GeoTimeout)
	}
	if cfg.Features.Summarizer {
		t.Fatalf("summarizer should be off")
	}
	if cfg.Route.DefaultTramo != "Tramo Sayula-Zapotal" {
		t.Fatalf("default tramo = %q", cfg.Route.DefaultTramo)
	}
}
