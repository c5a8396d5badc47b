package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Whisper.Binary != "whisper" || cfg.Whisper.Model != "base" {
		t.Errorf("whisper defaults = %q/%q", cfg.Whisper.Binary, cfg.Whisper.Model)
	}
	if cfg.Frames.IntervalSeconds != 15 || cfg.Frames.RapidIntervalSeconds != 10 {
		t.Errorf("frame interval defaults = %d/%d", cfg.Frames.IntervalSeconds, cfg.Frames.RapidIntervalSeconds)
	}
	if cfg.Frames.MaxFrames != 100 {
		t.Errorf("MaxFrames default = %d", cfg.Frames.MaxFrames)
	}
	if cfg.Paths.OutputDir != "output" {
		t.Errorf("OutputDir default = %q", cfg.Paths.OutputDir)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Whisper.Model != "base" {
		t.Errorf("Model = %q, want default", cfg.Whisper.Model)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.Whisper.Model = "small"
	cfg.Frames.IntervalSeconds = 20
	cfg.Paths.OutputDir = "reviews"

	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Whisper.Model != "small" {
		t.Errorf("Model = %q, want small", loaded.Whisper.Model)
	}
	if loaded.Frames.IntervalSeconds != 20 {
		t.Errorf("IntervalSeconds = %d, want 20", loaded.Frames.IntervalSeconds)
	}
	if loaded.Paths.OutputDir != "reviews" {
		t.Errorf("OutputDir = %q, want reviews", loaded.Paths.OutputDir)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".exec-review")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	partial := "whisper:\n  model: medium\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Whisper.Model != "medium" {
		t.Errorf("Model = %q, want medium", cfg.Whisper.Model)
	}
	// Unspecified sections keep their defaults.
	if cfg.Tools.FFmpeg != "ffmpeg" {
		t.Errorf("FFmpeg = %q, want default", cfg.Tools.FFmpeg)
	}
	if cfg.Frames.MaxFrames != 100 {
		t.Errorf("MaxFrames = %d, want default", cfg.Frames.MaxFrames)
	}
}
