package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/san-kum/tensile/internal/tensile"
	"gopkg.in/yaml.v3"
)

const (
	DefaultArea        = 0.003
	DefaultGaugeLength = 1.0
	DefaultAddr        = ":5000"
	DefaultRateLimit   = 5.0
	DefaultRateBurst   = 10
	DefaultMaxUpload   = 32 << 20
)

type Config struct {
	Specimen tensile.Specimen `yaml:"specimen"`
	Units    tensile.Units    `yaml:"units"`
	Columns  ColumnsConfig    `yaml:"columns"`
	Server   ServerConfig     `yaml:"server"`
}

// ColumnsConfig lists the header substrings that identify each input column.
type ColumnsConfig struct {
	Displacement []string `yaml:"displacement"`
	Load         []string `yaml:"load"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	AllowOrigin     string        `yaml:"allow_origin"`
	RateLimit       float64       `yaml:"rate_limit"`
	RateBurst       int           `yaml:"rate_burst"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Specimen: tensile.Specimen{
			Area:        DefaultArea,
			GaugeLength: DefaultGaugeLength,
		},
		Units: tensile.DefaultUnits(),
		Columns: ColumnsConfig{
			Displacement: []string{"disp", "extension", "delta"},
			Load:         []string{"load", "force"},
		},
		Server: ServerConfig{
			Addr:            DefaultAddr,
			AllowOrigin:     "*",
			RateLimit:       DefaultRateLimit,
			RateBurst:       DefaultRateBurst,
			MaxUploadBytes:  DefaultMaxUpload,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the analysis would refuse anyway.
func (c *Config) Validate() error {
	if c.Specimen.Area <= 0 {
		return fmt.Errorf("config: specimen.area must be positive, got %g", c.Specimen.Area)
	}
	if c.Specimen.GaugeLength <= 0 {
		return fmt.Errorf("config: specimen.gauge_length must be positive, got %g", c.Specimen.GaugeLength)
	}
	if c.Units.StressScale <= 0 || c.Units.DisplacementPerLength <= 0 {
		return fmt.Errorf("config: unit factors must be positive")
	}
	if len(c.Columns.Displacement) == 0 || len(c.Columns.Load) == 0 {
		return fmt.Errorf("config: column keys must not be empty")
	}
	return nil
}

// Environment variables consulted by ApplyEnv.
const (
	EnvAddr        = "TENSILE_ADDR"
	EnvArea        = "TENSILE_AREA"
	EnvGaugeLength = "TENSILE_GAUGE_LENGTH"
	EnvConfig      = "TENSILE_CONFIG"
)

// LoadEnv reads .env files into the process environment. Missing files are
// not an error; variables already set are left untouched.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides configuration values from TENSILE_* variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvArea); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvArea, err)
		}
		c.Specimen.Area = f
	}
	if v := os.Getenv(EnvGaugeLength); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvGaugeLength, err)
		}
		c.Specimen.GaugeLength = f
	}
	return nil
}
