// Command exec-review analyzes a video, audio, document, or presentation
// file through the eyes of selected executive personas and writes a Markdown
// preparation report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/exec-review/cli/config"
	"github.com/exec-review/cli/internal/extract"
	"github.com/exec-review/cli/internal/persona"
	"github.com/exec-review/cli/internal/review"
	"github.com/exec-review/cli/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		personaList   string
		allPersonas   bool
		userType      string
		frames        bool
		rapid         bool
		frameInterval int
		whisperModel  string
		outputPath    string
		noAppendix    bool
		checkDeps     bool
		verbose       bool
	)

	flag.StringVar(&personaList, "personas", "", "comma-separated personas (ceo,cfo,cto,vp_product,ciso,vp_operations)")
	flag.StringVar(&personaList, "p", "", "shorthand for -personas")
	flag.BoolVar(&allPersonas, "all-personas", false, "analyze with all available personas")
	flag.BoolVar(&allPersonas, "a", false, "shorthand for -all-personas")
	flag.StringVar(&userType, "user-type", "", "select personas by presenter role (sales, pm, dev, writer, marketing, sa)")
	flag.StringVar(&userType, "u", "", "shorthand for -user-type")
	flag.BoolVar(&frames, "frames", false, "enable video frame extraction")
	flag.BoolVar(&frames, "f", false, "shorthand for -frames")
	flag.BoolVar(&rapid, "rapid", false, "sample frames more frequently for fast-changing videos")
	flag.BoolVar(&rapid, "r", false, "shorthand for -rapid")
	flag.IntVar(&frameInterval, "frame-interval", 0, "seconds between sampled frames (overrides -rapid)")
	flag.StringVar(&whisperModel, "whisper-model", "", "whisper model size: "+strings.Join(extract.WhisperModels, "|"))
	flag.StringVar(&whisperModel, "m", "", "shorthand for -whisper-model")
	flag.StringVar(&outputPath, "output", "", "report output path (default output/<timestamp>/executive-review-<timestamp>.md)")
	flag.StringVar(&outputPath, "o", "", "shorthand for -output")
	flag.BoolVar(&noAppendix, "no-appendix", false, "omit the full transcript/text appendix")
	flag.BoolVar(&checkDeps, "check-deps", false, "check external tool availability and exit")
	flag.BoolVar(&verbose, "verbose", false, "verbose output")
	flag.BoolVar(&verbose, "v", false, "shorthand for -verbose")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	status := ui.NewPrinter(os.Stdout)

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

	runner := review.New(cfg, status, logger)

	if checkDeps {
		if !runner.CheckDependencies(ctx) {
			return 1
		}
		return 0
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return 1
	}
	filePath := flag.Arg(0)

	if whisperModel != "" && !slices.Contains(extract.WhisperModels, whisperModel) {
		status.Error("Invalid whisper model: %s. Valid models: %s", whisperModel, strings.Join(extract.WhisperModels, ", "))
		return 1
	}

	if personaList != "" && allPersonas {
		status.Error("Cannot combine -personas with -all-personas")
		return 1
	}

	personas := selectPersonas(status, personaList, allPersonas, userType)

	interval := cfg.Frames.IntervalSeconds
	if rapid {
		interval = cfg.Frames.RapidIntervalSeconds
	}
	if frameInterval > 0 {
		interval = frameInterval
	}

	_, err = runner.Run(ctx, review.Options{
		FilePath:        filePath,
		Personas:        personas,
		EnableFrames:    frames || rapid || frameInterval > 0,
		FrameInterval:   interval,
		WhisperModel:    whisperModel,
		OutputPath:      outputPath,
		IncludeAppendix: !noAppendix,
		Verbose:         verbose,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			status.Warning("Review cancelled by user")
			return 130
		}
		status.Error("%v", err)
		if verbose {
			logger.Error("review failed", "error", err)
		}
		return 1
	}

	return 0
}

// selectPersonas resolves the persona selection flags in precedence order:
// explicit list, all personas, user-type defaults, then the built-in default.
// An explicit list with no valid tokens warns and falls back to the default
// selection; selection problems are never fatal.
func selectPersonas(status *ui.Printer, personaList string, allPersonas bool, userType string) []persona.Type {
	if personaList != "" {
		personas := persona.ParseList(personaList, func(token string) {
			status.Warning("Unknown persona: %s", token)
		})
		if len(personas) == 0 {
			status.Info("No valid personas given, using default personas")
			return persona.DefaultSelection()
		}
		return personas
	}
	if allPersonas {
		return persona.All()
	}
	if userType != "" {
		ut, ok := persona.ParseUserType(userType)
		if !ok {
			status.Warning("Unknown user type: %s, using default personas", userType)
			return persona.DefaultSelection()
		}
		defaults := persona.UserTypeDefaults(ut)
		names := make([]string, 0, len(defaults))
		for _, t := range defaults {
			names = append(names, string(t))
		}
		status.Info("Selected personas for %s: %s", ut, strings.Join(names, ", "))
		return defaults
	}
	return persona.DefaultSelection()
}
