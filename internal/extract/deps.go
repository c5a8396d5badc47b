package extract

import (
	"context"
	"os/exec"
	"time"
)

// depCheckTimeout bounds a single dependency probe.
const depCheckTimeout = 10 * time.Second

// Dependency reports the availability of one external collaborator.
type Dependency struct {
	Name      string
	Available bool
	Detail    string
}

// CheckDependencies probes each external tool the extractor may invoke.
// No extraction is performed.
func (e *Extractor) CheckDependencies(ctx context.Context) []Dependency {
	return []Dependency{
		checkBinary(ctx, "whisper", e.cfg.WhisperBin, "--help"),
		checkBinary(ctx, "ffmpeg", e.cfg.FFmpegBin, "-version"),
		checkBinary(ctx, "ffprobe", e.cfg.FFprobeBin, "-version"),
		// PDF parsing is linked into the binary; there is no external
		// tool to probe.
		{Name: "mupdf", Available: true, Detail: "built-in"},
	}
}

// AllAvailable reports whether every dependency in the list is present.
func AllAvailable(deps []Dependency) bool {
	for _, d := range deps {
		if !d.Available {
			return false
		}
	}
	return true
}

func checkBinary(ctx context.Context, name, bin, versionArg string) Dependency {
	resolved, err := exec.LookPath(bin)
	if err != nil {
		return Dependency{Name: name, Detail: "not found in PATH"}
	}

	ctx, cancel := context.WithTimeout(ctx, depCheckTimeout)
	defer cancel()
	if err := exec.CommandContext(ctx, resolved, versionArg).Run(); err != nil {
		return Dependency{Name: name, Detail: resolved + " is not runnable"}
	}
	return Dependency{Name: name, Available: true, Detail: resolved}
}
