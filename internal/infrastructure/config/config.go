package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Content   ContentConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Workers   WorkerConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8600"`
	Host string `envconfig:"HOST" default:"127.0.0.1"`
}

// ContentConfig holds paths and identifiers for page content.
type ContentConfig struct {
	// Locale is the application UI locale used for localized pages.
	Locale string `envconfig:"UI_LOCALE" default:"en-US"`
	// OSCreditsPath is the on-disk OS credits document.
	OSCreditsPath string `envconfig:"OS_CREDITS_PATH" default:"/opt/lumen/os_credits.html"`
	// OEMEulaDir holds per-locale OEM EULA documents (<locale>.html).
	OEMEulaDir string `envconfig:"OEM_EULA_DIR" default:"/opt/lumen/oem_eula"`
	// DemoResourcesDir is the preinstalled demo resources root that carries
	// per-locale store terms and privacy documents.
	DemoResourcesDir string `envconfig:"DEMO_RESOURCES_DIR" default:"/opt/lumen/demo-resources"`
	// StatisticsPath is the machine statistics key/value file.
	StatisticsPath string `envconfig:"STATISTICS_PATH" default:"/var/lib/lumen/machine-info"`
	// ComponentsDir is the root under which dynamic components are mounted.
	ComponentsDir string `envconfig:"COMPONENTS_DIR" default:"/run/lumen/components"`
	// ContainerComponent names the container runtime component whose
	// credits are served on lumen://container-credits.
	ContainerComponent string `envconfig:"CONTAINER_COMPONENT" default:"container-runtime"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// WorkerConfig holds blocking-IO worker pool configuration.
type WorkerConfig struct {
	Count int `envconfig:"WORKER_COUNT" default:"4"`
	Queue int `envconfig:"WORKER_QUEUE" default:"64"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8600",
			Host: "127.0.0.1",
		},
		Content: ContentConfig{
			Locale:             "en-US",
			OSCreditsPath:      "/opt/lumen/os_credits.html",
			OEMEulaDir:         "/opt/lumen/oem_eula",
			DemoResourcesDir:   "/opt/lumen/demo-resources",
			StatisticsPath:     "/var/lib/lumen/machine-info",
			ComponentsDir:      "/run/lumen/components",
			ContainerComponent: "container-runtime",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Workers: WorkerConfig{
			Count: 4,
			Queue: 64,
		},
	}
}
