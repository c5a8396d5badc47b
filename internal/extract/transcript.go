package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/exec-review/cli/internal/detect"
)

// whisperOutput matches the JSON document the whisper CLI writes alongside
// the transcript.
type whisperOutput struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// extractTranscript transcribes a video or audio file with whisper and
// collects the full text plus chronological timestamped segments. The media
// duration is probed separately and degrades to absent on failure.
func (e *Extractor) extractTranscript(ctx context.Context, path string, ct detect.ContentType) (*Result, error) {
	e.logger.Debug("transcribing", "path", path, "model", e.cfg.WhisperModel)

	scratch, err := os.MkdirTemp("", "exec-review-whisper-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	cmd := exec.CommandContext(ctx, e.cfg.WhisperBin, path,
		"--model", e.cfg.WhisperModel,
		"--output_format", "json",
		"--output_dir", scratch,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("whisper transcription failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	data, err := os.ReadFile(filepath.Join(scratch, stem+".json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read whisper output: %w", err)
	}

	var output whisperOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("failed to parse whisper output: %w", err)
	}

	segments := make([]Segment, 0, len(output.Segments))
	for _, s := range output.Segments {
		segments = append(segments, Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		})
	}

	meta, err := e.metadata(path, ct)
	if err != nil {
		return nil, err
	}
	meta.DurationSeconds = e.probeDuration(ctx, path)
	meta.Language = output.Language

	e.logger.Debug("transcription complete", "path", path, "segments", len(segments))

	return &Result{
		Metadata: meta,
		Text:     strings.TrimSpace(output.Text),
		Segments: segments,
	}, nil
}
