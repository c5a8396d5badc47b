package extract

import (
	"time"

	"github.com/exec-review/cli/internal/detect"
)

// Metadata describes the source file and what was extracted from it.
// Immutable once produced.
type Metadata struct {
	FilePath        string
	FileName        string
	FileSizeBytes   int64
	ContentType     detect.ContentType
	ExtractedAt     time.Time
	DurationSeconds *float64 // video/audio; nil when the probe failed
	PageCount       int      // documents; 0 when not applicable
	SlideCount      int      // presentations; 0 when not applicable
	Language        string   // detected language code, "" when unknown
}

// Segment is a time-bounded piece of transcript text.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Slide holds the content captured from one presentation slide.
type Slide struct {
	Number    int    `json:"slide_number"`
	Title     string `json:"title,omitempty"`
	Text      string `json:"text"`
	Notes     string `json:"notes,omitempty"`
	ImagePath string `json:"image_path,omitempty"`
}

// Result is the sole hand-off artifact from extraction to analysis and
// reporting. Text is never absent; the floor is an empty string.
type Result struct {
	Metadata   Metadata
	Text       string
	Segments   []Segment
	Slides     []Slide
	ImagePaths []string
}
