package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultPath is the config file looked up when none is given explicitly.
const DefaultPath = "config.json"

// MinWebhookTimeout is the smallest accepted webhook_timeout.
const MinWebhookTimeout = 100 * time.Millisecond

// EnvPrefix prefixes environment overrides, e.g. RELAY_API_SECRET.
const EnvPrefix = "RELAY"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Relay
	Webhook   WebhookConfig
	API       APIConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type WebhookConfig struct {
	URL     string
	Timeout time.Duration
}

type APIConfig struct {
	Secret string
}

type RateLimitConfig struct {
	PerMinute int
}

// Load overlays the file at path (JSON unless the extension says otherwise)
// and RELAY_* environment variables onto the built-in defaults.
// A missing file is only an error when explicit is true.
func Load(path string, explicit bool) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = DefaultPath
	}
	if err := readFile(v, path, explicit); err != nil {
		return nil, err
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("api_port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Relay
	cfg.Webhook.URL = strings.TrimSpace(v.GetString("webhook_url"))
	timeout, err := durationOrSeconds(v, "webhook_timeout")
	if err != nil {
		return nil, err
	}
	cfg.Webhook.Timeout = timeout
	cfg.API.Secret = v.GetString("api_secret")
	cfg.RateLimit.PerMinute = v.GetInt("rate_limit")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(v *viper.Viper, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// durationOrSeconds reads key as a Go duration string ("10s", "500ms").
// A bare number, from JSON or the environment, counts as seconds.
func durationOrSeconds(v *viper.Viper, key string) (time.Duration, error) {
	switch raw := v.Get(key).(type) {
	case int:
		return time.Duration(raw) * time.Second, nil
	case int64:
		return time.Duration(raw) * time.Second, nil
	case float64:
		return time.Duration(raw * float64(time.Second)), nil
	case string:
		s := strings.TrimSpace(raw)
		if secs, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Duration(secs * float64(time.Second)), nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return d, nil
	default:
		return v.GetDuration(key), nil
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("webhook_url", "https://qyapi.weixin.qq.com/cgi-bin/webhook/send?key=YOUR_KEY")
	v.SetDefault("webhook_timeout", "10s")
	v.SetDefault("api_port", 8080)
	v.SetDefault("api_secret", "change-me")
	v.SetDefault("rate_limit", 20)
}

func (c *Config) validate() error {
	u, err := url.Parse(c.Webhook.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("webhook_url must be an absolute http(s) URL, got %q", c.Webhook.URL)
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("api_port must be between 1 and 65535, got %d", c.HTTPServer.Port)
	}
	switch c.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http_server.mode must be debug, release or test, got %q", c.HTTPServer.Mode)
	}
	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("rate_limit must not be negative, got %d", c.RateLimit.PerMinute)
	}
	if c.Webhook.Timeout < MinWebhookTimeout {
		return fmt.Errorf("webhook_timeout must be at least %s, got %s", MinWebhookTimeout, c.Webhook.Timeout)
	}
	return nil
}
