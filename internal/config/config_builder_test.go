package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and no layers.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one, while unset fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder().
		push("first", &StructuredConfig{Storage: Storage{Driver: DriverFile}}).
		push("second", &StructuredConfig{Storage: Storage{Driver: DriverSQLite, DB: DB{DSN: "j.db"}}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "j.db", cfg.Storage.DB.DSN)
}

// TestBuild_ValidationError verifies that an invalid merged config is
// reported.
func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder().push("flags", &StructuredConfig{Crypto: Crypto{KDFIterations: 1000}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidCryptoConfigs)
}

// ── withFlags / withJSON / withDefaults ───────────────────────────────────────

func TestWithFlags_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.layers)
}

func TestWithJSON_NoPathSkipsFile(t *testing.T) {
	b := newConfigBuilder().push("flags", &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.layers, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"driver": "file", "file": map[string]any{"path": "/tmp/j.json"}},
		"workers": map[string]any{"save_debounce": "1s"},
	})

	b := newConfigBuilder().push("env", &StructuredConfig{JSONFilePath: path})
	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/j.json", cfg.Storage.File.Path)
	assert.Equal(t, time.Second, cfg.Workers.SaveDebounce)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder().push("flags", &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json: error reading a json file")
}

func TestWithDefaults_FillsEverything(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
	assert.NotEmpty(t, cfg.Storage.File.Path)
	assert.Equal(t, 120_000, cfg.Crypto.KDFIterations)
	assert.Equal(t, 400*time.Millisecond, cfg.Workers.SaveDebounce)
	assert.Equal(t, "info", cfg.Log.Level)
}
