package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"videoname/internal/form"
)

// Config defines runtime settings loaded from YAML and overlaid by
// environment variables.
type Config struct {
	// Inputs are the parameter objects the generate command names.
	Inputs []form.RawInput `yaml:"inputs"`
	// Jobs controls how many inputs are generated in parallel.
	Jobs int `yaml:"jobs" env:"VIDEONAME_JOBS" validate:"gte=1,lte=256"`
	// Timezone is the IANA zone used for "today" and date stamps; empty
	// means the host's local zone.
	Timezone string `yaml:"timezone" env:"VIDEONAME_TIMEZONE" validate:"omitempty,timezone"`
	// Listen is the serve command's listen address.
	Listen string `yaml:"listen" env:"VIDEONAME_LISTEN" validate:"required"`
	// MaxBodyBytes caps request bodies in serve mode.
	MaxBodyBytes int64 `yaml:"maxBodyBytes" env:"VIDEONAME_MAX_BODY_BYTES" validate:"gte=1"`
	Log          Log   `yaml:"log" envPrefix:"VIDEONAME_LOG_"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"oneof=trace debug info warn warning error"`
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=text json"`
	File   string `yaml:"file" env:"FILE"`
}

var validate = validator.New()

// Load reads a YAML file path, applies a sibling .env file and environment
// overrides, fills defaults and validates the result.
func Load(path string) (Config, error) {
	errb := oops.In("config").With("path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errb.Wrapf(err, "read config")
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, errb.Wrapf(err, "parse config")
	}

	dotenv := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, errb.With("dotenv", dotenv).Wrapf(err, "load .env")
	}
	if err := env.Parse(&c); err != nil {
		return Config{}, errb.Wrapf(err, "parse environment")
	}

	// Keep defaults centralized so callers can rely on normalized values.
	if c.Jobs <= 0 {
		c.Jobs = 2
	}
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 64 << 10
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if err := validate.Struct(c); err != nil {
		return Config{}, errb.Wrapf(err, "invalid config")
	}
	return c, nil
}

// Location resolves Timezone, defaulting to time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, oops.In("config").With("timezone", c.Timezone).Wrapf(err, "load timezone")
	}
	return loc, nil
}
