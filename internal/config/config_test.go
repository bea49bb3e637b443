package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/kmeanspp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kmeanspp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 200, cfg.MaxIter)
	assert.Equal(t, 0.001, cfg.Epsilon)
	assert.Equal(t, "first", cfg.Init)
	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, cfg.Inputs)

	// K has no default.
	assert.ErrorIs(t, cfg.Validate(), kmeanspp.ErrInvalidK)
	cfg.K = 3
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
k: 4
max_iter: 50
epsilon: 0.5
init: kmeans++
random_seed: 7
inputs:
  - a.txt
  - s3://bucket/b.txt.zst
output: out.txt
log:
  level: debug
  format: json
minio:
  endpoint: minio:9000
  secure: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.K)
	assert.Equal(t, 50, cfg.MaxIter)
	assert.Equal(t, 0.5, cfg.Epsilon)
	assert.Equal(t, "kmeans++", cfg.Init)
	assert.Equal(t, uint64(7), cfg.RandomSeed)
	assert.Equal(t, []string{"a.txt", "s3://bucket/b.txt.zst"}, cfg.Inputs)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "minio:9000", cfg.MinIO.Endpoint)
	assert.True(t, cfg.MinIO.Secure)
	// untouched defaults survive
	assert.Equal(t, "text", cfg.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "clusters: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("KMEANSPP_K", "5")
	t.Setenv("KMEANSPP_MAX_ITER", "not-a-number")
	t.Setenv("KMEANSPP_EPSILON", "0.01")
	t.Setenv("KMEANSPP_INPUTS", "a.txt, b.txt,,")
	t.Setenv("KMEANSPP_LOG_LEVEL", "DEBUG")
	t.Setenv("KMEANSPP_MINIO_SECURE", "yes")
	t.Setenv("KMEANSPP_SEED", "99")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, 5, cfg.K)
	assert.Equal(t, 200, cfg.MaxIter, "invalid values keep the previous setting")
	assert.Equal(t, 0.01, cfg.Epsilon)
	assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.Inputs)
	assert.True(t, cfg.MinIO.Secure)
	assert.Equal(t, uint64(99), cfg.RandomSeed)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", lvl.String())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.K = 2
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"k one", func(c *Config) { c.K = 1 }, kmeanspp.ErrInvalidK},
		{"k negative", func(c *Config) { c.K = -3 }, kmeanspp.ErrInvalidK},
		{"iter one", func(c *Config) { c.MaxIter = 1 }, kmeanspp.ErrInvalidIterations},
		{"iter thousand", func(c *Config) { c.MaxIter = 1000 }, kmeanspp.ErrInvalidIterations},
		{"k before iter", func(c *Config) { c.K = 0; c.MaxIter = 0 }, kmeanspp.ErrInvalidK},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1 }, kmeanspp.ErrInvalidEpsilon},
		{"bad init", func(c *Config) { c.Init = "random" }, nil},
		{"bad format", func(c *Config) { c.Format = "xml" }, nil},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, nil},
		{"bad log format", func(c *Config) { c.Log.Format = "logfmt" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}

	cfg := valid()
	cfg.MaxIter = 999
	assert.NoError(t, cfg.Validate())
	cfg.MaxIter = 2
	assert.NoError(t, cfg.Validate())
}

func TestValidateK_AgainstPoints(t *testing.T) {
	cfg := Default()
	cfg.K = 3
	assert.NoError(t, cfg.ValidateK(4))
	assert.ErrorIs(t, cfg.ValidateK(3), kmeanspp.ErrInvalidK)
	assert.ErrorIs(t, cfg.ValidateK(0), kmeanspp.ErrInvalidK)
}

func TestString_MasksSecret(t *testing.T) {
	cfg := Default()
	cfg.MinIO.SecretKey = "hunter2"
	assert.NotContains(t, cfg.String(), "hunter2")
	assert.Contains(t, cfg.String(), "****")
}
