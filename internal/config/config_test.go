package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLayers(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json",
		`{"datamodelDir": "models", "dialect": "mysql", "apply": true}`)

	cfg := load(path, nil)
	assert.Equal(t, "models", cfg.DatamodelDir)
	assert.Equal(t, "mysql", cfg.Dialect)
	assert.True(t, cfg.Apply)
	// незатронутые поля — из дефолтов
	assert.Equal(t, "", cfg.DBURL)
}

func TestLoadEnvOverridesJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{"dialect": "mysql"}`)

	t.Setenv("KOLONNA_DIALECT", "sqlite")
	t.Setenv("KOLONNA_DB_URL", "postgres://env")

	cfg := load(path, nil)
	assert.Equal(t, "sqlite", cfg.Dialect)
	assert.Equal(t, "postgres://env", cfg.DBURL)
}

func TestLoadFlagsOverrideAll(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{"dialect": "mysql"}`)
	t.Setenv("KOLONNA_DIALECT", "sqlite")

	cfg := load(path, []string{"-dialect", "postgres", "-apply", "true"})
	assert.Equal(t, "postgres", cfg.Dialect)
	assert.True(t, cfg.Apply)
}

// -config на другой путь: перечитывается JSON-слой, явные флаги
// выживают, и повторный разбор не падает на переопределении флагов
func TestLoadConfigFlagRedirect(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, dir, "first.json", `{"dialect": "mysql", "datamodelDir": "a"}`)
	second := writeConfig(t, dir, "second.json", `{"dialect": "sqlite", "datamodelDir": "b"}`)

	cfg := load(first, []string{"-config", second, "-dialect", "postgres"})
	// datamodelDir — из второго конфига, dialect — из явного флага
	assert.Equal(t, "b", cfg.DatamodelDir)
	assert.Equal(t, "postgres", cfg.Dialect)
}

func TestLoadConfigFlagRedirectRepeated(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, dir, "first.json", `{}`)
	second := writeConfig(t, dir, "second.json", `{"dialect": "sqlite"}`)

	// два вызова подряд — у каждого свой FlagSet, паники "flag redefined" нет
	for i := 0; i < 2; i++ {
		cfg := load(first, []string{"-config", second})
		assert.Equal(t, "sqlite", cfg.Dialect)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg := load(filepath.Join(t.TempDir(), "nope.json"), nil)
	assert.Equal(t, def(), cfg)
}
