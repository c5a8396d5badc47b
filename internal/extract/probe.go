package extract

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"time"
)

// probeTimeout bounds a single ffprobe duration lookup.
const probeTimeout = 60 * time.Second

// probeDuration returns the media duration in seconds via ffprobe, or nil
// when the probe fails or times out. Duration is best-effort: its absence
// never fails an extraction.
func (e *Extractor) probeDuration(ctx context.Context, path string) *float64 {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.cfg.FFprobeBin,
		"-v", "quiet",
		"-show_entries", "format=duration",
		"-of", "json",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		e.logger.Debug("duration probe failed", "path", path, "error", err)
		return nil
	}

	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(out, &probe); err != nil {
		return nil
	}
	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return nil
	}
	return &duration
}
