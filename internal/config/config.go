// Package config loads command-line configuration for kmeanspp.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. Default()
//  2. a YAML file (Load)
//  3. KMEANSPP_* environment variables (ApplyEnv)
//  4. command-line flags and positional arguments, applied by the caller
//
// Example YAML:
//
//	k: 3
//	max_iter: 200
//	epsilon: 0.001
//	init: kmeans++
//	random_seed: 42
//	inputs: [s3://datasets/points.txt.zst]
//	output: results/centroids.txt
//	log:
//	  level: debug
//	  format: json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/kmeanspp"
	"github.com/hupe1980/kmeanspp/seed"
	"gopkg.in/yaml.v3"
)

// Iteration bounds accepted on the command line, both exclusive.
const (
	MinIterExclusive = 1
	MaxIterExclusive = 1000
)

// Config is the complete command-line configuration.
type Config struct {
	// K is the number of clusters. It must satisfy 1 < K < N; the upper bound is
	// checked once the points are read.
	K int `yaml:"k"`

	// MaxIter is the round budget, in (1, 1000).
	MaxIter int `yaml:"max_iter"`

	// Epsilon is the convergence tolerance.
	Epsilon float64 `yaml:"epsilon"`

	// Init selects the seeding policy: "first" or "kmeans++".
	Init string `yaml:"init"`

	// RandomSeed seeds kmeans++ initialization.
	RandomSeed uint64 `yaml:"random_seed"`

	// Inputs are dataset URIs. Empty means standard input.
	Inputs []string `yaml:"inputs"`

	// Output is the result URI. Empty means standard output.
	Output string `yaml:"output"`

	// Format is the result format: "text" or "json".
	Format string `yaml:"format"`

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	S3      S3Config      `yaml:"s3"`
	MinIO   MinIOConfig   `yaml:"minio"`
}

// LogConfig configures diagnostic logging on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is written on exit when set.
	Textfile string `yaml:"textfile"`
}

// S3Config configures s3:// inputs and outputs.
type S3Config struct {
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Prefix   string `yaml:"prefix"`
}

// MinIOConfig configures minio:// inputs and outputs.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
	Prefix    string `yaml:"prefix"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxIter: 200,
		Epsilon: 0.001,
		Init:    seed.PolicyFirst.String(),
		Format:  "text",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		MinIO: MinIOConfig{
			Endpoint: "localhost:9000",
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns Default.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from KMEANSPP_* environment variables.
// Unparsable numeric values are ignored.
func (c *Config) ApplyEnv() {
	c.K = getEnvInt("KMEANSPP_K", c.K)
	c.MaxIter = getEnvInt("KMEANSPP_MAX_ITER", c.MaxIter)
	c.Epsilon = getEnvFloat("KMEANSPP_EPSILON", c.Epsilon)
	c.Init = getEnv("KMEANSPP_INIT", c.Init)
	c.RandomSeed = getEnvUint("KMEANSPP_SEED", c.RandomSeed)
	c.Inputs = getEnvStringSlice("KMEANSPP_INPUTS", c.Inputs)
	c.Output = getEnv("KMEANSPP_OUTPUT", c.Output)
	c.Format = getEnv("KMEANSPP_FORMAT", c.Format)

	c.Log.Level = getEnv("KMEANSPP_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("KMEANSPP_LOG_FORMAT", c.Log.Format)
	c.Metrics.Textfile = getEnv("KMEANSPP_METRICS_FILE", c.Metrics.Textfile)

	c.S3.Region = getEnv("KMEANSPP_S3_REGION", c.S3.Region)
	c.S3.Endpoint = getEnv("KMEANSPP_S3_ENDPOINT", c.S3.Endpoint)
	c.S3.Prefix = getEnv("KMEANSPP_S3_PREFIX", c.S3.Prefix)

	c.MinIO.Endpoint = getEnv("KMEANSPP_MINIO_ENDPOINT", c.MinIO.Endpoint)
	c.MinIO.AccessKey = getEnv("KMEANSPP_MINIO_ACCESS_KEY", c.MinIO.AccessKey)
	c.MinIO.SecretKey = getEnv("KMEANSPP_MINIO_SECRET_KEY", c.MinIO.SecretKey)
	c.MinIO.Secure = getEnvBool("KMEANSPP_MINIO_SECURE", c.MinIO.Secure)
	c.MinIO.Prefix = getEnv("KMEANSPP_MINIO_PREFIX", c.MinIO.Prefix)
}

// ValidateIterations checks the round budget. It wraps kmeanspp.ErrInvalidIterations.
func (c *Config) ValidateIterations() error {
	if c.MaxIter <= MinIterExclusive || c.MaxIter >= MaxIterExclusive {
		return fmt.Errorf("%w: %d not in (%d, %d)", kmeanspp.ErrInvalidIterations, c.MaxIter, MinIterExclusive, MaxIterExclusive)
	}
	return nil
}

// ValidateK checks 1 < K < n. Pass n < 0 when the point count is not known
// yet. It wraps kmeanspp.ErrInvalidK.
func (c *Config) ValidateK(n int) error {
	if c.K <= 1 {
		return fmt.Errorf("%w: %d", kmeanspp.ErrInvalidK, c.K)
	}
	if n >= 0 && c.K >= n {
		return fmt.Errorf("%w: %d not below the number of points %d", kmeanspp.ErrInvalidK, c.K, n)
	}
	return nil
}

// Validate checks everything that does not depend on the dataset.
// Cluster count errors are reported before iteration errors.
func (c *Config) Validate() error {
	if err := c.ValidateK(-1); err != nil {
		return err
	}
	if err := c.ValidateIterations(); err != nil {
		return err
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: %v", kmeanspp.ErrInvalidEpsilon, c.Epsilon)
	}
	if _, err := seed.ParsePolicy(c.Init); err != nil {
		return err
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid format %q", c.Format)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid log format %q", c.Log.Format)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("config: invalid log level %q", c.Log.Level)
	}
	return lvl, nil
}

// String returns a representation safe for logging; secrets are masked.
func (c *Config) String() string {
	secret := ""
	if c.MinIO.SecretKey != "" {
		secret = "****"
	}
	return fmt.Sprintf("Config{K: %d, MaxIter: %d, Epsilon: %g, Init: %s, Inputs: %v, Output: %q, Format: %s, MinIO: %s (secret %s)}",
		c.K, c.MaxIter, c.Epsilon, c.Init, c.Inputs, c.Output, c.Format, c.MinIO.Endpoint, secret)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}

func getEnvStringSlice(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, s := range strings.Split(val, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
