package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_NotFound(t *testing.T) {
	_, err := LoadFrom("/nonexistent/path/config.json")
	require.Error(t, err)

	var notFound *ConfigNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "config file not found")
	assert.Contains(t, err.Error(), "toolbox-search config init")
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{invalid json"), 0644))

	_, err := LoadFrom(path)
	var invalid *InvalidConfigError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "JSON parse error")
	assert.Contains(t, err.Error(), path+".bak")

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr), "parse failure should unwrap to the decoder error")
}

func TestLoadFrom_OutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"scoring": {"matchThreshold": 1.5}, "settings": {"maxResults": -1}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := LoadFrom(path)
	var invalid *InvalidConfigError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "scoring.matchThreshold")
	assert.Contains(t, err.Error(), "settings.maxResults")
}

func TestLoadFrom_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"catalogPath": "/srv/catalog.yaml", "settings": {"suggestionLimit": 3, "disableHistory": true}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, 3, cfg.Settings.SuggestionLimit)
	assert.Equal(t, 20, cfg.Settings.MaxResults)
	assert.True(t, cfg.Settings.DisableHistory)
	require.NotNil(t, cfg.Scoring)
	assert.Equal(t, 0.6, cfg.Scoring.MatchThreshold)
}

func TestLoadFrom_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Permission test not applicable on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0000))

	_, err := LoadFrom(path)
	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, AccessRead, permErr.Access)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Contains(t, err.Error(), "chmod 644")
}
