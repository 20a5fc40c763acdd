package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

type Config struct {
	WindowConfig  *WindowConfig  `yaml:"window"`
	LogConfig     *LogConfig     `yaml:"log"`
	SidebarConfig *SidebarConfig `yaml:"sidebar"`
}

func (cfg *Config) Reset() {
	cfg.WindowConfig.Reset()
	cfg.LogConfig.Reset()
	cfg.SidebarConfig.Reset()
}

func NewConfig() *Config {
	c := &Config{
		WindowConfig:  &WindowConfig{},
		LogConfig:     &LogConfig{},
		SidebarConfig: &SidebarConfig{},
	}
	c.Reset()
	return c
}

// Load reads a yaml settings file over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	cfg.fillSections()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return cfg, nil
}

// fillSections restores defaults for sections the file left empty; yaml sets those to nil.
func (cfg *Config) fillSections() {
	if cfg.WindowConfig == nil {
		cfg.WindowConfig = &WindowConfig{}
		cfg.WindowConfig.Reset()
	}
	if cfg.LogConfig == nil {
		cfg.LogConfig = &LogConfig{}
		cfg.LogConfig.Reset()
	}
	if cfg.SidebarConfig == nil {
		cfg.SidebarConfig = &SidebarConfig{}
		cfg.SidebarConfig.Reset()
	}
}

func (cfg *Config) Validate() error {
	if cfg.WindowConfig == nil || cfg.LogConfig == nil || cfg.SidebarConfig == nil {
		return errors.New("missing settings section")
	}
	switch cfg.WindowConfig.Host {
	case HostFyne, HostImgui:
	default:
		return fmt.Errorf("unknown host %q", cfg.WindowConfig.Host)
	}
	switch cfg.WindowConfig.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown theme %q", cfg.WindowConfig.Theme)
	}
	if cfg.WindowConfig.Width <= 0 || cfg.WindowConfig.Height <= 0 {
		return fmt.Errorf("window size %dx%d", cfg.WindowConfig.Width, cfg.WindowConfig.Height)
	}
	if cfg.SidebarConfig.ColumnWidth <= 0 || cfg.SidebarConfig.RowHeight <= 0 {
		return fmt.Errorf("sidebar cell %vx%v", cfg.SidebarConfig.ColumnWidth, cfg.SidebarConfig.RowHeight)
	}
	if cfg.SidebarConfig.PreviewInterval <= 0 {
		return fmt.Errorf("preview interval %v", cfg.SidebarConfig.PreviewInterval)
	}
	return nil
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
	Host   string `yaml:"host"`
}

func (cfg *WindowConfig) Reset() {
	cfg.Title = "terrain"
	cfg.Width = 1200
	cfg.Height = 900
	cfg.Theme = ThemeDark
	cfg.Host = HostFyne
}

type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Debug      bool   `yaml:"debug"`
}

func (cfg *LogConfig) Reset() {
	cfg.File = ""
	cfg.MaxSizeMB = 10
	cfg.MaxBackups = 3
	cfg.MaxAgeDays = 7
	cfg.Debug = false
}

type SidebarConfig struct {
	ColumnWidth     float32       `yaml:"column_width"`
	RowHeight       float32       `yaml:"row_height"`
	PreviewInterval time.Duration `yaml:"preview_interval"`
}

func (cfg *SidebarConfig) Reset() {
	cfg.ColumnWidth = ColumnWidth
	cfg.RowHeight = RowHeight
	cfg.PreviewInterval = 250 * time.Millisecond
}
