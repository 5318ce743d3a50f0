package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupDefaultsOnMissingFile(t *testing.T) {
	Reset()
	ConfFile = filepath.Join(t.TempDir(), "does-not-exist.toml")
	Setup()
	assert.EqualValues(t, ".", Settings.Engine.CacheDir)
	assert.EqualValues(t, "variants.ini", Settings.Engine.VariantsFile)
	assert.EqualValues(t, "info", Settings.Log.Level)
}

func TestSetupReadsFile(t *testing.T) {
	Reset()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[Engine]\nCacheDir = \"/tmp/magics\"\nVariantsFile = \"custom.ini\"\n\n[Log]\nLevel = \"debug\"\n"
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)

	ConfFile = path
	Setup()
	assert.EqualValues(t, "/tmp/magics", Settings.Engine.CacheDir)
	assert.EqualValues(t, "custom.ini", Settings.Engine.VariantsFile)
	assert.EqualValues(t, "debug", Settings.Log.Level)
}

func TestSetupIsIdempotent(t *testing.T) {
	Reset()
	ConfFile = filepath.Join(t.TempDir(), "does-not-exist.toml")
	Setup()
	Settings.Engine.CacheDir = "mutated"
	Setup()
	assert.EqualValues(t, "mutated", Settings.Engine.CacheDir, "second Setup call must be a no-op")
}
