// Package config loads floodmst service configuration.
//
// Sources, lowest to highest priority:
//  1. Defaults (Default)
//  2. A YAML file, when a path is given
//  3. FLOODMST_* environment variables
//
// The merged result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/floodmst/nodesource"
	"github.com/katalvlaran/floodmst/pipeline"
)

// ErrInvalidConfig indicates that the merged configuration failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full service configuration.
type Config struct {
	Server     Server            `yaml:"server"`
	Logging    Logging           `yaml:"logging"`
	Grid       nodesource.Config `yaml:"grid"`
	Defaults   pipeline.Params   `yaml:"defaults"`
	Clustering Clustering        `yaml:"clustering"`
	Metrics    Metrics           `yaml:"metrics"`
	CORS       CORS              `yaml:"cors"`
}

// Server holds HTTP listener settings.
type Server struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" validate:"gt=0"`
}

// Logging selects the zap logger preset and level.
type Logging struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Clustering holds pipeline policy.
type Clustering struct {
	// RequireConnected rejects k > 1 on a disconnected grid graph instead of
	// returning more than k clusters.
	RequireConnected bool `yaml:"require_connected"`
	// CrossCheck names a second MST engine whose total weight must match
	// Kruskal's on every compute. Empty disables the check.
	CrossCheck string `yaml:"cross_check" validate:"omitempty,oneof=prim kruskal"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path" validate:"omitempty,startswith=/"`
}

// CORS lists allowed browser origins.
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the built-in configuration: a 20×20 grid served on :5000.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            ":5000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Logging: Logging{
			Level: "info",
		},
		Grid:     nodesource.DefaultConfig(),
		Defaults: pipeline.DefaultParams(),
		Clustering: Clustering{
			RequireConnected: true,
		},
		Metrics: Metrics{
			Enabled: true,
			Path:    "/metrics",
		},
		CORS: CORS{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct constraints and cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics: path is required when enabled: %w", ErrInvalidConfig)
	}
	if err := c.Defaults.Validate(c.Grid.Width * c.Grid.Height); err != nil {
		return fmt.Errorf("defaults: %v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// applyEnv overlays FLOODMST_* variables read through getenv.
func (c *Config) applyEnv(getenv func(string) string) error {
	var errs []error
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v := getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v := getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
				return
			}
			*dst = b
		}
	}

	str("FLOODMST_ADDR", &c.Server.Addr)
	str("FLOODMST_CROSS_CHECK", &c.Clustering.CrossCheck)
	str("FLOODMST_LOG_LEVEL", &c.Logging.Level)
	flag("FLOODMST_LOG_DEVELOPMENT", &c.Logging.Development)
	num("FLOODMST_GRID_WIDTH", &c.Grid.Width)
	num("FLOODMST_GRID_HEIGHT", &c.Grid.Height)
	num("FLOODMST_DEFAULT_K", &c.Defaults.K)
	flag("FLOODMST_REQUIRE_CONNECTED", &c.Clustering.RequireConnected)
	flag("FLOODMST_METRICS_ENABLED", &c.Metrics.Enabled)

	if v := getenv("FLOODMST_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("FLOODMST_SEED=%q: %w", v, err))
		} else {
			c.Grid.Seed = seed
		}
	}
	if v := getenv("FLOODMST_CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		c.CORS.AllowedOrigins = origins
	}

	if len(errs) > 0 {
		return fmt.Errorf("environment: %w", errors.Join(errs...))
	}

	return nil
}
