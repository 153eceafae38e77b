package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/assignment"
	"github.com/katalvlaran/hungarian/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		MaxSize:     config.DefaultMaxSize,
		Objective:   "min",
		Format:      "text",
		InputFormat: "auto",
		Lang:        "en",
		LogLevel:    "warn",
		LogEncoding: "console",
		Workers:     4,
	}, cfg)

	obj, err := cfg.SolveObjective()
	require.NoError(t, err)
	assert.Equal(t, assignment.Minimize, obj)
	assert.Len(t, cfg.SolveOptions(), 1)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objective: max\nlang: ru\nworkers: 2\n"), 0o644))
	t.Setenv("HUNGARIAN_WORKERS", "8")
	t.Setenv("HUNGARIAN_MAX_SIZE", "0")

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "max", cfg.Objective)
	assert.Equal(t, "ru", cfg.Lang)
	assert.Equal(t, 8, cfg.Workers, "env overrides file")
	assert.Equal(t, 0, cfg.MaxSize)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hungarian.yaml"), []byte("format: json\n"), 0o644))
	t.Chdir(dir)

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())
	v := viper.New()
	v.Set(config.KeyFormat, "xml")
	v.Set(config.KeyWorkers, 0)

	_, err := config.Load(v, "")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "format must be one of [text json yaml]")
	assert.Contains(t, err.Error(), "workers must be 1 or greater")
}
