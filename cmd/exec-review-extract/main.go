// Command exec-review-extract runs content extraction on a single file and
// emits the result as JSON, without any persona analysis or report.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/exec-review/cli/config"
	"github.com/exec-review/cli/internal/detect"
	"github.com/exec-review/cli/internal/extract"
	"github.com/exec-review/cli/internal/ui"
)

// output is the JSON shape written to stdout or the -output file.
type output struct {
	FileName        string            `json:"file_name"`
	FilePath        string            `json:"file_path"`
	ContentType     string            `json:"content_type"`
	ExtractedAt     string            `json:"extracted_at"`
	Text            string            `json:"text"`
	DurationSeconds *float64          `json:"duration_seconds,omitempty"`
	PageCount       int               `json:"page_count,omitempty"`
	SlideCount      int               `json:"slide_count,omitempty"`
	Language        string            `json:"language,omitempty"`
	Segments        []extract.Segment `json:"segments,omitempty"`
	Slides          []extract.Slide   `json:"slides,omitempty"`
	ImagePaths      []string          `json:"image_paths,omitempty"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		outputPath    string
		frames        bool
		rapid         bool
		frameInterval int
		whisperModel  string
		outputDir     string
		verbose       bool
	)

	flag.StringVar(&outputPath, "output", "", "write JSON to this file instead of stdout")
	flag.StringVar(&outputPath, "o", "", "shorthand for -output")
	flag.BoolVar(&frames, "frames", false, "enable video frame extraction")
	flag.BoolVar(&frames, "f", false, "shorthand for -frames")
	flag.BoolVar(&rapid, "rapid", false, "sample frames more frequently for fast-changing videos")
	flag.BoolVar(&rapid, "r", false, "shorthand for -rapid")
	flag.IntVar(&frameInterval, "frame-interval", 0, "seconds between sampled frames (overrides -rapid)")
	flag.StringVar(&whisperModel, "whisper-model", "", "whisper model size: "+strings.Join(extract.WhisperModels, "|"))
	flag.StringVar(&whisperModel, "m", "", "shorthand for -whisper-model")
	flag.StringVar(&outputDir, "output-dir", "", "directory for extracted frames and images (default <file>_extracted)")
	flag.BoolVar(&verbose, "verbose", false, "verbose output")
	flag.BoolVar(&verbose, "v", false, "shorthand for -verbose")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	status := ui.NewPrinter(os.Stderr)

	if flag.NArg() != 1 {
		flag.Usage()
		return 1
	}
	filePath := flag.Arg(0)

	if whisperModel != "" && !slices.Contains(extract.WhisperModels, whisperModel) {
		status.Error("Invalid whisper model: %s. Valid models: %s", whisperModel, strings.Join(extract.WhisperModels, ", "))
		return 1
	}

	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := config.Load()
	if err != nil {
		status.Warning("Could not load config, using defaults: %v", err)
		cfg = config.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if ok, message := detect.Validate(filePath); !ok {
		status.Error("%s", message)
		return 1
	}
	contentType, ok := detect.Detect(filePath)
	if !ok {
		status.Error("Could not detect content type for: %s", filePath)
		return 1
	}

	if outputDir == "" {
		stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		outputDir = filepath.Join(filepath.Dir(filePath), stem+"_extracted")
	}

	interval := cfg.Frames.IntervalSeconds
	if rapid {
		interval = cfg.Frames.RapidIntervalSeconds
	}
	if frameInterval > 0 {
		interval = frameInterval
	}
	if whisperModel == "" {
		whisperModel = cfg.Whisper.Model
	}

	extractor := extract.New(extract.Config{
		Logger:       logger,
		WhisperBin:   cfg.Whisper.Binary,
		WhisperModel: whisperModel,
		FFmpegBin:    cfg.Tools.FFmpeg,
		FFprobeBin:   cfg.Tools.FFprobe,
		MaxFrames:    cfg.Frames.MaxFrames,
	})

	result, err := extractor.Extract(ctx, filePath, contentType, extract.Options{
		OutputDir:     outputDir,
		EnableFrames:  frames || rapid || frameInterval > 0,
		FrameInterval: interval,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			status.Warning("Extraction cancelled by user")
			return 130
		}
		status.Error("%v", err)
		return 1
	}

	meta := result.Metadata
	data, err := json.MarshalIndent(output{
		FileName:        meta.FileName,
		FilePath:        meta.FilePath,
		ContentType:     string(meta.ContentType),
		ExtractedAt:     meta.ExtractedAt.Format(time.RFC3339),
		Text:            result.Text,
		DurationSeconds: meta.DurationSeconds,
		PageCount:       meta.PageCount,
		SlideCount:      meta.SlideCount,
		Language:        meta.Language,
		Segments:        result.Segments,
		Slides:          result.Slides,
		ImagePaths:      result.ImagePaths,
	}, "", "  ")
	if err != nil {
		status.Error("failed to encode result: %v", err)
		return 1
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			status.Error("failed to write output: %v", err)
			return 1
		}
		status.Success("Extraction saved: %s", outputPath)
		return 0
	}

	fmt.Println(string(data))
	return 0
}
