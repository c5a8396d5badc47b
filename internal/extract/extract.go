// Package extract turns source files into normalized text plus optional
// structured sidebands: timestamped transcript segments, slide records, and
// extracted image files.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/exec-review/cli/internal/detect"
)

// DefaultWhisperModel is used when no model is configured.
const DefaultWhisperModel = "base"

// WhisperModels lists the accepted whisper model sizes.
var WhisperModels = []string{"tiny", "base", "small", "medium", "large"}

// DefaultFrameInterval is the default spacing between sampled video frames.
const DefaultFrameInterval = 15

// RapidFrameInterval is the spacing used for fast-changing demo videos.
const RapidFrameInterval = 10

// MaxFrames caps how many frames are sampled from a single video.
const MaxFrames = 100

// Config configures an Extractor.
type Config struct {
	Logger       *slog.Logger
	WhisperBin   string // default "whisper"
	WhisperModel string // default "base"
	FFmpegBin    string // default "ffmpeg"
	FFprobeBin   string // default "ffprobe"
	MaxFrames    int    // default 100
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.WhisperBin == "" {
		c.WhisperBin = "whisper"
	}
	if c.WhisperModel == "" {
		c.WhisperModel = DefaultWhisperModel
	}
	if c.FFmpegBin == "" {
		c.FFmpegBin = "ffmpeg"
	}
	if c.FFprobeBin == "" {
		c.FFprobeBin = "ffprobe"
	}
	if c.MaxFrames <= 0 {
		c.MaxFrames = MaxFrames
	}
}

// Extractor dispatches extraction by content type.
type Extractor struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an Extractor with the given configuration.
func New(cfg Config) *Extractor {
	cfg.defaults()
	return &Extractor{cfg: cfg, logger: cfg.Logger}
}

// Options control a single extraction run.
type Options struct {
	// OutputDir receives extracted frames and images. Empty disables the
	// image sidebands.
	OutputDir string
	// EnableFrames turns on video frame sampling.
	EnableFrames bool
	// FrameInterval is the spacing in seconds between sampled frames;
	// 0 means DefaultFrameInterval.
	FrameInterval int
}

// Extract routes a file to the extractor for its content type.
func (e *Extractor) Extract(ctx context.Context, path string, ct detect.ContentType, opts Options) (*Result, error) {
	e.logger.Debug("extracting content", "path", path, "content_type", ct)

	switch ct {
	case detect.Video:
		result, err := e.extractTranscript(ctx, path, ct)
		if err != nil {
			return nil, err
		}
		if opts.EnableFrames && opts.OutputDir != "" {
			interval := opts.FrameInterval
			if interval <= 0 {
				interval = DefaultFrameInterval
			}
			// Frame sampling is best-effort enrichment: a video that
			// transcribes but cannot be decoded for frames still
			// produces a usable result.
			frames, err := e.extractFrames(ctx, path, opts.OutputDir, interval)
			if err != nil {
				e.logger.Warn("frame extraction failed", "path", path, "error", err)
			} else {
				result.ImagePaths = frames
			}
		}
		return result, nil

	case detect.Audio:
		return e.extractTranscript(ctx, path, ct)

	case detect.Document:
		return e.extractDocument(path, opts.OutputDir)

	case detect.Presentation:
		return e.extractPresentation(path, opts.OutputDir)
	}

	return nil, fmt.Errorf("unknown content type: %s", ct)
}

// extractDocument handles the per-extension document formats.
func (e *Extractor) extractDocument(path, outputDir string) (*Result, error) {
	switch detect.Ext(path) {
	case ".pdf":
		return e.extractPDF(path, outputDir, detect.Document)
	case ".docx":
		return e.extractDocx(path)
	case ".md", ".txt":
		return e.extractTextFile(path)
	}
	return nil, fmt.Errorf("unsupported document format: %s", detect.Ext(path))
}

// extractPresentation handles presentation formats. A PDF requested as a
// presentation degrades to document-style extraction; no per-slide structure
// is invented for it.
func (e *Extractor) extractPresentation(path, outputDir string) (*Result, error) {
	switch detect.Ext(path) {
	case ".pptx":
		return e.extractPptx(path)
	case ".pdf":
		return e.extractPDF(path, outputDir, detect.Presentation)
	}
	return nil, fmt.Errorf("unsupported presentation format: %s", detect.Ext(path))
}

// extractTextFile reads markdown and plain-text files as-is, preserving the
// raw formatting.
func (e *Extractor) extractTextFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	meta, err := e.metadata(path, detect.Document)
	if err != nil {
		return nil, err
	}

	return &Result{Metadata: meta, Text: string(data)}, nil
}

// metadata builds the common metadata record for a source file.
func (e *Extractor) metadata(path string, ct detect.ContentType) (Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to stat file: %w", err)
	}
	return Metadata{
		FilePath:      path,
		FileName:      filepath.Base(path),
		FileSizeBytes: info.Size(),
		ContentType:   ct,
		ExtractedAt:   time.Now(),
	}, nil
}
