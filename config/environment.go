package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port     int            `yaml:"port"`
	LogMode  string         `yaml:"log_mode"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	CORS     CORSConfig     `yaml:"cors"`
	// BcryptCost of 0 means bcrypt.DefaultCost.
	BcryptCost int `yaml:"bcrypt_cost"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads .env (outside Railway), then the optional YAML file named by
// CONFIG_FILE, then environment overrides, then defaults.
func Load() (*Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		// a missing .env is fine, the environment may already be set
		_ = godotenv.Load()
	}

	cfg := &Config{}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "configs/config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := cfg.overrideFromEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) overrideFromEnv() error {
	if val := os.Getenv("PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return errors.New("invalid PORT env variable")
		}
		c.Port = port
	}
	if val := os.Getenv("LOG_MODE"); val != "" {
		c.LogMode = val
	}
	if val := os.Getenv("DB_DRIVER"); val != "" {
		c.Database.Driver = val
	}
	if val := os.Getenv("DB_URL"); val != "" {
		c.Database.URL = val
	}
	if val := os.Getenv("JWT_SECRET_KEY"); val != "" {
		c.JWT.Secret = val
	}
	if val := os.Getenv("JWT_ISSUER"); val != "" {
		c.JWT.Issuer = val
	}
	if val := os.Getenv("JWT_AUDIENCE"); val != "" {
		c.JWT.Audience = val
	}
	if val := os.Getenv("CORS_ALLOWED_ORIGINS"); val != "" {
		var origins []string
		for _, origin := range strings.Split(val, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
	if val := os.Getenv("BCRYPT_COST"); val != "" {
		cost, err := strconv.Atoi(val)
		if err != nil {
			return errors.New("invalid BCRYPT_COST env variable")
		}
		c.BcryptCost = cost
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.LogMode == "" {
		c.LogMode = "development"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.Driver == "sqlite" && c.Database.URL == "" {
		c.Database.URL = "revision.db"
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "revision-api"
	}
	if c.JWT.Audience == "" {
		c.JWT.Audience = "revision-clients"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET_KEY required")
	}
	switch c.Database.Driver {
	case "postgres":
		if c.Database.URL == "" {
			return errors.New("database URL required (DB_URL)")
		}
	case "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (postgres or sqlite)", c.Database.Driver)
	}
	return nil
}

func (c *Config) Addr() string {
	return "0.0.0.0:" + strconv.Itoa(c.Port)
}
