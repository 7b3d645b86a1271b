// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:8000", cfg.Server.URL)
	assert.Equal(t, 30, cfg.Server.TimeoutSecs)
	assert.True(t, cfg.UI.Markdown)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
url = "http://chat.example.com:9000"
timeout_secs = 5

[ui]
markdown = false
`), 0644))

	cfg := Default()
	require.NoError(t, LoadFrom(cfg, path))
	assert.Equal(t, "http://chat.example.com:9000", cfg.Server.URL)
	assert.Equal(t, 5, cfg.Server.TimeoutSecs)
	assert.False(t, cfg.UI.Markdown)
}

// A partial file keeps defaults for the keys it omits.
func TestLoadFrom_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
url = "http://other:8000"
`), 0644))

	cfg := Default()
	require.NoError(t, LoadFrom(cfg, path))
	assert.Equal(t, "http://other:8000", cfg.Server.URL)
	assert.Equal(t, 30, cfg.Server.TimeoutSecs)
	assert.True(t, cfg.UI.Markdown)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg := Default()
	err := LoadFrom(cfg, filepath.Join(t.TempDir(), "absent.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("AICHAT_SERVER_URL", "http://env:7000")
	t.Setenv("AICHAT_TIMEOUT_SECS", "12")
	t.Setenv("AICHAT_MARKDOWN", "false")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, "http://env:7000", cfg.Server.URL)
	assert.Equal(t, 12, cfg.Server.TimeoutSecs)
	assert.False(t, cfg.UI.Markdown)
}

func TestApplyEnvOverrides_BadTimeoutIgnored(t *testing.T) {
	t.Setenv("AICHAT_TIMEOUT_SECS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 30, cfg.Server.TimeoutSecs)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.URL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.URL = "/relative/path"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.TimeoutSecs = 0
	assert.Error(t, cfg.Validate())
}
