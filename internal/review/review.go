// Package review sequences the full pipeline: validate, detect, extract,
// analyze, render, persist.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/exec-review/cli/config"
	"github.com/exec-review/cli/internal/analyze"
	"github.com/exec-review/cli/internal/detect"
	"github.com/exec-review/cli/internal/extract"
	"github.com/exec-review/cli/internal/persona"
	"github.com/exec-review/cli/internal/report"
	"github.com/exec-review/cli/internal/textutil"
	"github.com/exec-review/cli/internal/ui"
)

// Options describe one review run.
type Options struct {
	FilePath        string
	Personas        []persona.Type
	EnableFrames    bool
	FrameInterval   int    // seconds; 0 uses the configured default
	WhisperModel    string // "" uses the configured default
	OutputPath      string // "" resolves under the configured output root
	IncludeAppendix bool
	Verbose         bool
}

// Runner executes review runs against a fixed configuration.
type Runner struct {
	cfg    *config.Config
	status *ui.Printer
	logger *slog.Logger
}

// New creates a Runner.
func New(cfg *config.Config, status *ui.Printer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, status: status, logger: logger}
}

func (r *Runner) extractor(whisperModel string, logger *slog.Logger) *extract.Extractor {
	if whisperModel == "" {
		whisperModel = r.cfg.Whisper.Model
	}
	return extract.New(extract.Config{
		Logger:       logger,
		WhisperBin:   r.cfg.Whisper.Binary,
		WhisperModel: whisperModel,
		FFmpegBin:    r.cfg.Tools.FFmpeg,
		FFprobeBin:   r.cfg.Tools.FFprobe,
		MaxFrames:    r.cfg.Frames.MaxFrames,
	})
}

// Run executes the complete review workflow and returns the report path.
func (r *Runner) Run(ctx context.Context, opts Options) (string, error) {
	runID := uuid.NewString()[:8]
	logger := r.logger.With("run", runID)

	r.status.Header("Executive Review")

	r.status.Progress("Step 1: Validating file...")
	if ok, message := detect.Validate(opts.FilePath); !ok {
		return "", fmt.Errorf("%s", message)
	}
	contentType, ok := detect.Detect(opts.FilePath)
	if !ok {
		return "", fmt.Errorf("Could not detect content type for: %s", opts.FilePath)
	}
	r.status.Success("Detected: %s", detect.DisplayName(contentType))

	var outputDir, reportPath string
	if opts.OutputPath != "" {
		outputDir = filepath.Dir(opts.OutputPath)
		reportPath = opts.OutputPath
	} else {
		ts := textutil.Timestamp(time.Now())
		outputDir = filepath.Join(r.cfg.Paths.OutputDir, ts)
		reportPath = filepath.Join(outputDir, fmt.Sprintf("executive-review-%s.md", ts))
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	r.status.Progress("Step 2: Extracting content...")
	extractor := r.extractor(opts.WhisperModel, logger)
	content, err := extractor.Extract(ctx, opts.FilePath, contentType, extract.Options{
		OutputDir:     outputDir,
		EnableFrames:  opts.EnableFrames,
		FrameInterval: opts.FrameInterval,
	})
	if err != nil {
		return "", err
	}
	if opts.Verbose {
		r.status.Info("Extracted %d characters of text", len(content.Text))
		if len(content.ImagePaths) > 0 {
			r.status.Info("Extracted %d images/frames", len(content.ImagePaths))
		}
	}

	r.status.Progress("Step 3: Analyzing through executive personas...")
	analyses := analyze.AnalyzeAll(content, opts.Personas)

	r.status.Progress("Step 4: Generating report...")
	rendered := report.Generate(content, analyses, report.Options{
		FrameAnalysis:   opts.EnableFrames,
		IncludeAppendix: opts.IncludeAppendix,
	})
	if err := report.Save(rendered, reportPath); err != nil {
		return "", err
	}

	r.status.Header("Review Complete")
	r.status.Success("Report saved: %s", reportPath)
	names := make([]string, 0, len(opts.Personas))
	for _, p := range opts.Personas {
		names = append(names, string(p))
	}
	r.status.Info("Analyzed as: %s", strings.Join(names, ", "))

	logger.Debug("review complete", "report", reportPath, "personas", len(analyses))
	return reportPath, nil
}

// CheckDependencies probes the external tools and reports each one. Returns
// true when everything is available. No extraction is performed.
func (r *Runner) CheckDependencies(ctx context.Context) bool {
	r.status.Header("Dependency Check")

	deps := r.extractor("", r.logger).CheckDependencies(ctx)
	for _, dep := range deps {
		if dep.Available {
			r.status.Success("%s: Available", dep.Name)
		} else {
			r.status.Error("%s: Not found", dep.Name)
		}
	}
	return extract.AllAvailable(deps)
}
