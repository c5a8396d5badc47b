package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/exec-review/cli/internal/analyze"
	"github.com/exec-review/cli/internal/detect"
	"github.com/exec-review/cli/internal/extract"
	"github.com/exec-review/cli/internal/persona"
)

func analysisFor(t *testing.T, content *extract.Result, typ persona.Type) *analyze.Result {
	t.Helper()
	p, ok := persona.Get(typ)
	if !ok {
		t.Fatalf("persona %q missing", typ)
	}
	return analyze.Analyze(content, p)
}

func docContent(text string) *extract.Result {
	return &extract.Result{
		Metadata: extract.Metadata{
			FilePath:      "/tmp/brief.pdf",
			FileName:      "brief.pdf",
			FileSizeBytes: 2048,
			ContentType:   detect.Document,
			PageCount:     4,
		},
		Text: text,
	}
}

func TestGenerateHeader(t *testing.T) {
	content := docContent("Body text.")
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	got := Generate(content, nil, Options{Now: now})

	for _, want := range []string{
		"# Executive Review: brief.pdf",
		"**Reviewed**: June 01, 2025 at 09:30 AM",
		"**Content Type**: Document",
		"**File Size**: 2.0 kB",
		"**Pages**: 4",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// No duration, slides, language, or frame status for a plain document.
	for _, unwanted := range []string{"**Duration**", "**Slides**", "**Language**", "**Frame Analysis**"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("report unexpectedly contains %q", unwanted)
		}
	}
}

func TestGenerateVideoHeader(t *testing.T) {
	duration := 123.0
	content := &extract.Result{
		Metadata: extract.Metadata{
			FileName:        "demo.mp4",
			FileSizeBytes:   1 << 20,
			ContentType:     detect.Video,
			DurationSeconds: &duration,
			Language:        "en",
		},
		Text: "Transcript text.",
	}

	got := Generate(content, nil, Options{FrameAnalysis: true})

	for _, want := range []string{
		"**Duration**: 2m 3s",
		"**Language**: EN",
		"**Frame Analysis**: Enabled",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGeneratePersonaSection(t *testing.T) {
	content := docContent("Body text.")
	analyses := []*analyze.Result{analysisFor(t, content, persona.CFO)}

	got := Generate(content, analyses, Options{})

	if !strings.Contains(got, "## Executive Analysis: CFO") {
		t.Error("missing CFO section heading")
	}
	if !strings.Contains(got, "| Concern | Severity | Why It Matters |") {
		t.Error("missing concerns table header")
	}
	if strings.Count(got, "| Total cost of ownership Assessment |") != 1 {
		t.Error("missing first concern row")
	}
	if !strings.Contains(got, "🔴 High") || !strings.Contains(got, "🟡 Medium") || !strings.Contains(got, "🟢 Low") {
		t.Error("missing severity glyphs")
	}
	if !strings.Contains(got, "#### Financial Questions") {
		t.Error("missing question category heading")
	}
	if !strings.Contains(got, "- [ ] Provide detailed TCO breakdown") {
		t.Error("missing follow-up checkbox")
	}
	if !strings.Contains(got, "| Risk | Impact | Mitigation |") {
		t.Error("missing risk table")
	}
}

func TestGenerateSlideStructure(t *testing.T) {
	content := &extract.Result{
		Metadata: extract.Metadata{
			FileName:      "deck.pptx",
			FileSizeBytes: 100,
			ContentType:   detect.Presentation,
			SlideCount:    3,
		},
		Text: "Slides.",
		Slides: []extract.Slide{
			{Number: 1, Title: "Intro"},
			{Number: 2},
			{Number: 3, Title: "Close"},
		},
	}

	got := Generate(content, nil, Options{})

	for _, want := range []string{
		"### Presentation Structure",
		"- Slide 1: Intro",
		"- Slide 2: Untitled",
		"- Slide 3: Close",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(got, "more slides") {
		t.Error("short deck should not be elided")
	}
}

func TestGenerateSlideStructureElided(t *testing.T) {
	slides := make([]extract.Slide, 8)
	for i := range slides {
		slides[i] = extract.Slide{Number: i + 1, Title: "Slide"}
	}
	content := &extract.Result{
		Metadata: extract.Metadata{FileName: "deck.pptx", ContentType: detect.Presentation},
		Text:     "Slides.",
		Slides:   slides,
	}

	got := Generate(content, nil, Options{})
	if !strings.Contains(got, "- ... and 3 more slides") {
		t.Error("long deck not elided after the preview")
	}
}

func TestGenerateChecklistBuckets(t *testing.T) {
	content := docContent("Body text.")
	analyses := []*analyze.Result{
		analysisFor(t, content, persona.CEO),
		analysisFor(t, content, persona.CTO),
	}

	got := Generate(content, analyses, Options{})

	if !strings.Contains(got, "### 🔴 Must Address") {
		t.Error("missing must-address bucket")
	}
	if !strings.Contains(got, "### 🟡 Should Prepare") {
		t.Error("missing should-prepare bucket")
	}
	// The template recommendations never emit LOW priority.
	if strings.Contains(got, "### 🟢 Nice to Have") {
		t.Error("unexpected nice-to-have bucket")
	}
	if !strings.Contains(got, "(CEO)") || !strings.Contains(got, "(CTO)") {
		t.Error("checklist items not attributed to personas")
	}
}

func TestGenerateAppendix(t *testing.T) {
	transcript := &extract.Result{
		Metadata: extract.Metadata{FileName: "talk.mp3", ContentType: detect.Audio},
		Text:     "Full spoken transcript.",
	}
	got := Generate(transcript, nil, Options{IncludeAppendix: true})
	if !strings.Contains(got, "### Full Transcript") {
		t.Error("missing transcript appendix")
	}
	if !strings.Contains(got, "Full spoken transcript.") {
		t.Error("transcript body missing")
	}

	longDoc := docContent(strings.Repeat("a", appendixMaxChars+50))
	got = Generate(longDoc, nil, Options{IncludeAppendix: true})
	if !strings.Contains(got, "### Extracted Text") {
		t.Error("missing extracted text appendix")
	}
	if !strings.Contains(got, "... [truncated]") {
		t.Error("long document appendix not truncated")
	}

	got = Generate(longDoc, nil, Options{IncludeAppendix: false})
	if strings.Contains(got, "## Appendix") {
		t.Error("appendix rendered when disabled")
	}
}

func TestGenerateSummaryFallbackPreview(t *testing.T) {
	long := docContent(strings.Repeat("b", summaryPreviewChars+100))
	got := Generate(long, nil, Options{})
	if !strings.Contains(got, strings.Repeat("b", summaryPreviewChars)+"...") {
		t.Error("fallback preview not truncated at the preview limit")
	}

	withSummary := Generate(docContent("Body."), nil, Options{Summary: "Prepared summary."})
	if !strings.Contains(withSummary, "Prepared summary.") {
		t.Error("explicit summary not used")
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "report.md")

	if err := Save("# Report\n", path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# Report\n" {
		t.Errorf("saved content = %q", data)
	}
}
