package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	// Upstream is the marketplace backend that owns all business data.
	Upstream struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"upstream"`

	// State is the embedded store holding browser-profile state
	// (credentials and carts) across restarts.
	State struct {
		Path           string `yaml:"path"`
		ProfileTTLDays int    `yaml:"profile_ttl_days"`
	} `yaml:"state"`

	Session struct {
		CookieName string `yaml:"cookie_name"`
		Secure     bool   `yaml:"secure"`
	} `yaml:"session"`

	// Cache is the optional Redis read cache for the job catalogue.
	// Left unconfigured, the gateway always hits the upstream directly.
	Cache struct {
		Addr       string `yaml:"addr"`
		Password   string `yaml:"password"`
		DB         int    `yaml:"db"`
		TTLSeconds int    `yaml:"ttl_seconds"`
	} `yaml:"cache"`
}

func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.TimeoutSeconds) * time.Second
}

func (c *Config) ProfileTTL() time.Duration {
	return time.Duration(c.State.ProfileTTLDays) * 24 * time.Hour
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

var AppConfig *Config

// LoadConfig reads config.yaml unless UPSTREAM_BASE_URL is set, in which case
// the whole config comes from environment variables (test mode).
func LoadConfig() {
	var cfg Config

	upstreamURL := os.Getenv("UPSTREAM_BASE_URL")

	if upstreamURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Upstream.BaseURL = upstreamURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.State.Path = os.Getenv("STATE_PATH")
	cfg.Cache.Addr = os.Getenv("CACHE_ADDR")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Upstream.TimeoutSeconds == 0 {
		cfg.Upstream.TimeoutSeconds = 15
	}
	if cfg.State.Path == "" {
		cfg.State.Path = "jobdeck_state.db"
	}
	if cfg.State.ProfileTTLDays == 0 {
		cfg.State.ProfileTTLDays = 90
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "jd_profile"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
