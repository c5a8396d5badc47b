// Package report renders an extraction result and its persona analyses into
// a single Markdown document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/exec-review/cli/internal/analyze"
	"github.com/exec-review/cli/internal/detect"
	"github.com/exec-review/cli/internal/extract"
	"github.com/exec-review/cli/internal/textutil"
)

// appendixMaxChars caps the extracted-text appendix for documents and
// presentations. Transcripts are included in full.
const appendixMaxChars = 10000

// summaryPreviewChars caps the fallback content preview.
const summaryPreviewChars = 500

// slidePreviewCount is how many slide titles the structure preview shows.
const slidePreviewCount = 5

// Options control optional report content.
type Options struct {
	Summary         string   // pre-generated summary; "" falls back to a preview
	KeyTopics       []string // optional bullet list of key topics
	FrameAnalysis   bool     // whether frame analysis was enabled (video only)
	IncludeAppendix bool     // include the full transcript/text appendix
	Now             time.Time // review timestamp; zero means time.Now()
}

// Generate renders the complete Markdown report.
func Generate(content *extract.Result, analyses []*analyze.Result, opts Options) string {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	sections := []string{
		header(content, opts),
		contentSummary(content, opts),
	}
	for _, analysis := range analyses {
		sections = append(sections, personaSection(analysis))
	}
	sections = append(sections, checklist(analyses))
	if opts.IncludeAppendix {
		sections = append(sections, appendix(content))
	}

	return strings.Join(sections, "\n")
}

// Save writes the report to disk, creating parent directories as needed.
func Save(report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func header(content *extract.Result, opts Options) string {
	meta := content.Metadata
	lines := []string{
		fmt.Sprintf("# Executive Review: %s", meta.FileName),
		"",
		fmt.Sprintf("**Reviewed**: %s", opts.Now.Format("January 02, 2006 at 03:04 PM")),
		fmt.Sprintf("**Content Type**: %s", detect.DisplayName(meta.ContentType)),
		fmt.Sprintf("**File Size**: %s", humanize.Bytes(uint64(meta.FileSizeBytes))),
	}

	if meta.DurationSeconds != nil && *meta.DurationSeconds > 0 {
		lines = append(lines, fmt.Sprintf("**Duration**: %s", textutil.FormatDuration(*meta.DurationSeconds)))
	}
	if meta.PageCount > 0 {
		lines = append(lines, fmt.Sprintf("**Pages**: %d", meta.PageCount))
	}
	if meta.SlideCount > 0 {
		lines = append(lines, fmt.Sprintf("**Slides**: %d", meta.SlideCount))
	}
	if meta.Language != "" {
		lines = append(lines, fmt.Sprintf("**Language**: %s", strings.ToUpper(meta.Language)))
	}
	if meta.ContentType == detect.Video {
		status := "Disabled"
		if opts.FrameAnalysis {
			status = "Enabled"
		}
		lines = append(lines, fmt.Sprintf("**Frame Analysis**: %s", status))
	}

	lines = append(lines, "", "---", "")
	return strings.Join(lines, "\n")
}

func contentSummary(content *extract.Result, opts Options) string {
	lines := []string{"## Content Summary", ""}

	if opts.Summary != "" {
		lines = append(lines, opts.Summary)
	} else {
		preview := content.Text
		if runes := []rune(preview); len(runes) > summaryPreviewChars {
			preview = string(runes[:summaryPreviewChars]) + "..."
		}
		lines = append(lines, fmt.Sprintf("*%s*", preview))
	}
	lines = append(lines, "")

	if len(opts.KeyTopics) > 0 {
		lines = append(lines, "### Key Topics Covered")
		for _, topic := range opts.KeyTopics {
			lines = append(lines, fmt.Sprintf("- %s", topic))
		}
		lines = append(lines, "")
	}

	if len(content.ImagePaths) > 0 {
		lines = append(lines, "### Visual Elements")
		lines = append(lines, fmt.Sprintf("- %d images/frames extracted", len(content.ImagePaths)))
		lines = append(lines, "")
	}

	if len(content.Slides) > 0 {
		lines = append(lines, "### Presentation Structure")
		for i, slide := range content.Slides {
			if i >= slidePreviewCount {
				break
			}
			title := slide.Title
			if title == "" {
				title = "Untitled"
			}
			lines = append(lines, fmt.Sprintf("- Slide %d: %s", slide.Number, title))
		}
		if len(content.Slides) > slidePreviewCount {
			lines = append(lines, fmt.Sprintf("- ... and %d more slides", len(content.Slides)-slidePreviewCount))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "---", "")
	return strings.Join(lines, "\n")
}

// severityLabel renders a severity as its colored-dot glyph plus label;
// unknown severities fall back to the raw value.
func severityLabel(s analyze.Severity) string {
	switch s {
	case analyze.SeverityHigh:
		return "🔴 High"
	case analyze.SeverityMedium:
		return "🟡 Medium"
	case analyze.SeverityLow:
		return "🟢 Low"
	}
	return string(s)
}

// priorityIcon renders a priority glyph; unknown priorities fall back to a
// plain bullet.
func priorityIcon(s analyze.Severity) string {
	switch s {
	case analyze.SeverityHigh:
		return "🔴"
	case analyze.SeverityMedium:
		return "🟡"
	case analyze.SeverityLow:
		return "🟢"
	}
	return "•"
}

func personaSection(analysis *analyze.Result) string {
	p := analysis.Persona
	lines := []string{
		fmt.Sprintf("## Executive Analysis: %s", p.Title),
		"",
		"### Persona Profile",
		fmt.Sprintf("> %s", p.Perspective),
		"",
	}

	if len(analysis.Concerns) > 0 {
		lines = append(lines,
			"### Key Concerns",
			"",
			"| Concern | Severity | Why It Matters |",
			"|---------|----------|----------------|",
		)
		for _, c := range analysis.Concerns {
			lines = append(lines, fmt.Sprintf("| %s | %s | %s |", c.Title, severityLabel(c.Severity), c.WhyItMatters))
		}
		lines = append(lines, "")
	}

	if len(analysis.Questions) > 0 {
		lines = append(lines, "### Questions They Would Ask", "")

		// Group questions by category, preserving first-seen order.
		var order []analyze.Category
		grouped := make(map[analyze.Category][]analyze.Question)
		for _, q := range analysis.Questions {
			if _, ok := grouped[q.Category]; !ok {
				order = append(order, q.Category)
			}
			grouped[q.Category] = append(grouped[q.Category], q)
		}

		for _, category := range order {
			lines = append(lines, fmt.Sprintf("#### %s Questions", titleCase(string(category))), "")
			for i, q := range grouped[category] {
				lines = append(lines, fmt.Sprintf("%d. **%s**", i+1, q.Text))
				lines = append(lines, fmt.Sprintf("   - *Why they'd ask*: %s", q.Reasoning))
				lines = append(lines, fmt.Sprintf("   - *Suggested response*: %s", q.SuggestedResponse))
				lines = append(lines, "")
			}
		}
	}

	if len(analysis.Followups) > 0 {
		lines = append(lines,
			"### Potential Follow-ups",
			"",
			"After initial presentation, expect these follow-up requests:",
			"",
		)
		for _, followup := range analysis.Followups {
			lines = append(lines, fmt.Sprintf("- [ ] %s", followup))
		}
		lines = append(lines, "")
	}

	if len(analysis.Risks) > 0 {
		lines = append(lines,
			"### Risk Areas Identified",
			"",
			"| Risk | Impact | Mitigation |",
			"|------|--------|------------|",
		)
		for _, r := range analysis.Risks {
			lines = append(lines, fmt.Sprintf("| %s | %s | %s |", r.Title, r.Impact, r.Mitigation))
		}
		lines = append(lines, "")
	}

	if len(analysis.Recommendations) > 0 {
		lines = append(lines, "### Recommendations for This Audience", "")
		for i, rec := range analysis.Recommendations {
			lines = append(lines, fmt.Sprintf("%d. %s %s", i+1, priorityIcon(rec.Priority), rec.Text))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "---", "")
	return strings.Join(lines, "\n")
}

func checklist(analyses []*analyze.Result) string {
	lines := []string{
		"## Overall Preparation Checklist",
		"",
		"Based on analysis across all selected personas:",
		"",
	}

	var mustAddress, shouldPrepare, niceToHave []string
	for _, analysis := range analyses {
		for _, rec := range analysis.Recommendations {
			item := fmt.Sprintf("%s (%s)", rec.Text, analysis.Persona.Title)
			switch rec.Priority {
			case analyze.SeverityHigh:
				mustAddress = append(mustAddress, item)
			case analyze.SeverityMedium:
				shouldPrepare = append(shouldPrepare, item)
			default:
				niceToHave = append(niceToHave, item)
			}
		}
	}

	buckets := []struct {
		heading string
		items   []string
	}{
		{"### 🔴 Must Address", mustAddress},
		{"### 🟡 Should Prepare", shouldPrepare},
		{"### 🟢 Nice to Have", niceToHave},
	}
	for _, bucket := range buckets {
		if len(bucket.items) == 0 {
			continue
		}
		lines = append(lines, bucket.heading, "")
		for _, item := range bucket.items {
			lines = append(lines, fmt.Sprintf("- [ ] %s", item))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "---", "")
	return strings.Join(lines, "\n")
}

func appendix(content *extract.Result) string {
	lines := []string{"## Appendix", ""}

	ct := content.Metadata.ContentType
	if ct == detect.Video || ct == detect.Audio {
		lines = append(lines,
			"### Full Transcript",
			"",
			"<details>",
			"<summary>Click to expand transcript</summary>",
			"",
			"```",
			content.Text,
			"```",
			"",
			"</details>",
			"",
		)
	} else {
		text := content.Text
		truncated := false
		if runes := []rune(text); len(runes) > appendixMaxChars {
			text = string(runes[:appendixMaxChars])
			truncated = true
		}
		lines = append(lines,
			"### Extracted Text",
			"",
			"<details>",
			"<summary>Click to expand extracted text</summary>",
			"",
			"```",
			text,
		)
		if truncated {
			lines = append(lines, "... [truncated]")
		}
		lines = append(lines,
			"```",
			"",
			"</details>",
			"",
		)
	}

	return strings.Join(lines, "\n")
}

// titleCase uppercases the first letter of a lowercase category token.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
