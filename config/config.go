package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Whisper struct {
		Binary string `yaml:"binary"`
		Model  string `yaml:"model"`
	} `yaml:"whisper"`
	Tools struct {
		FFmpeg  string `yaml:"ffmpeg"`
		FFprobe string `yaml:"ffprobe"`
	} `yaml:"tools"`
	Frames struct {
		IntervalSeconds      int `yaml:"interval_seconds"`
		RapidIntervalSeconds int `yaml:"rapid_interval_seconds"`
		MaxFrames            int `yaml:"max_frames"`
	} `yaml:"frames"`
	Paths struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"paths"`
}

// Load loads configuration from file or returns defaults
func Load() (*Config, error) {
	cfg := Default()

	configPath := filepath.Join(os.Getenv("HOME"), ".exec-review", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to file
func (c *Config) Save() error {
	configDir := filepath.Join(os.Getenv("HOME"), ".exec-review")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// Default returns default configuration
func Default() *Config {
	cfg := &Config{}

	cfg.Whisper.Binary = "whisper"
	cfg.Whisper.Model = "base"
	cfg.Tools.FFmpeg = "ffmpeg"
	cfg.Tools.FFprobe = "ffprobe"
	cfg.Frames.IntervalSeconds = 15
	cfg.Frames.RapidIntervalSeconds = 10
	cfg.Frames.MaxFrames = 100
	cfg.Paths.OutputDir = "output"

	return cfg
}
