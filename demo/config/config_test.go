package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, HostFyne, cfg.WindowConfig.Host)
	assert.Equal(t, ThemeDark, cfg.WindowConfig.Theme)
	assert.Equal(t, float32(ColumnWidth), cfg.SidebarConfig.ColumnWidth)
	assert.Equal(t, float32(RowHeight), cfg.SidebarConfig.RowHeight)
	assert.Equal(t, 250*time.Millisecond, cfg.SidebarConfig.PreviewInterval)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeSettings(t, `
window:
  host: imgui
  theme: light
  width: 800
log:
  file: /tmp/terrain.log
  debug: true
sidebar:
  column_width: 180
  preview_interval: 1s
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, HostImgui, cfg.WindowConfig.Host)
	assert.Equal(t, ThemeLight, cfg.WindowConfig.Theme)
	assert.Equal(t, 800, cfg.WindowConfig.Width)
	assert.Equal(t, 900, cfg.WindowConfig.Height)
	assert.Equal(t, "/tmp/terrain.log", cfg.LogConfig.File)
	assert.True(t, cfg.LogConfig.Debug)
	assert.Equal(t, 10, cfg.LogConfig.MaxSizeMB)
	assert.Equal(t, float32(180), cfg.SidebarConfig.ColumnWidth)
	assert.Equal(t, float32(RowHeight), cfg.SidebarConfig.RowHeight)
	assert.Equal(t, time.Second, cfg.SidebarConfig.PreviewInterval)
}

func TestLoadRejectsBadSettings(t *testing.T) {
	for name, body := range map[string]string{
		"host":     "window:\n  host: qt\n",
		"theme":    "window:\n  theme: pink\n",
		"size":     "window:\n  width: 0\n",
		"cell":     "sidebar:\n  row_height: -1\n",
		"interval": "sidebar:\n  preview_interval: 0s\n",
		"yaml":     "window: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeSettings(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadEmptySections(t *testing.T) {
	for name, body := range map[string]string{
		"sidebar": "sidebar:\n",
		"window":  "window: ~\n",
		"log":     "log:\n",
		"all":     "window:\nlog:\nsidebar:\n",
	} {
		t.Run(name, func(t *testing.T) {
			var cfg *Config
			var err error
			require.NotPanics(t, func() { cfg, err = Load(writeSettings(t, body)) })
			require.NoError(t, err)
			assert.Equal(t, NewConfig(), cfg)
		})
	}
}

func TestValidateMissingSection(t *testing.T) {
	cfg := NewConfig()
	cfg.SidebarConfig = nil
	assert.Error(t, cfg.Validate())
}
