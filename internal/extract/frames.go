package extract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// extractFrames samples one frame from the video every interval seconds,
// writing JPEG files named with a zero-padded index and an MMmSSs timestamp
// tag. Sampling stops at the end of the video or at the configured frame cap.
func (e *Extractor) extractFrames(ctx context.Context, path, outputDir string, interval int) ([]string, error) {
	if interval < 1 {
		interval = 1
	}

	duration := e.probeDuration(ctx, path)
	if duration == nil {
		return nil, fmt.Errorf("could not open video file: %s", path)
	}

	framesDir := filepath.Join(outputDir, "frames")
	if err := os.MkdirAll(framesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create frames directory: %w", err)
	}

	var paths []string
	for i := 0; i < e.cfg.MaxFrames; i++ {
		offset := i * interval
		if float64(offset) >= *duration && i > 0 {
			break
		}

		tag := fmt.Sprintf("%02dm%02ds", offset/60, offset%60)
		framePath := filepath.Join(framesDir, fmt.Sprintf("frame_%04d_%s.jpg", i, tag))

		cmd := exec.CommandContext(ctx, e.cfg.FFmpegBin,
			"-ss", fmt.Sprintf("%d", offset),
			"-i", path,
			"-frames:v", "1",
			"-q:v", "2",
			"-y", framePath,
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			if i == 0 {
				return nil, fmt.Errorf("could not open video file: %s: %w: %s",
					path, err, strings.TrimSpace(string(out)))
			}
			break
		}
		// ffmpeg exits zero but writes nothing when seeking past the
		// last frame.
		if info, err := os.Stat(framePath); err != nil || info.Size() == 0 {
			break
		}
		paths = append(paths, framePath)
	}

	e.logger.Debug("frame extraction complete", "path", path, "frames", len(paths))
	return paths, nil
}
