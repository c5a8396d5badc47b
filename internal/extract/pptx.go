package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/exec-review/cli/internal/detect"
	"github.com/exec-review/cli/internal/textutil"
)

var slideNameRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractPptx captures per-slide titles, shape texts, and speaker notes from
// a PPTX archive, producing both structured slide records and a flattened
// text rendering.
func (e *Extractor) extractPptx(path string) (*Result, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pptx: %w", err)
	}
	defer r.Close()

	files := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		files[f.Name] = f
	}

	type numberedSlide struct {
		num  int
		file *zip.File
	}
	var slideFiles []numberedSlide
	for name, f := range files {
		if m := slideNameRe.FindStringSubmatch(name); m != nil {
			n, _ := strconv.Atoi(m[1])
			slideFiles = append(slideFiles, numberedSlide{num: n, file: f})
		}
	}
	sort.Slice(slideFiles, func(i, j int) bool { return slideFiles[i].num < slideFiles[j].num })

	var slides []Slide
	var textParts []string

	for i, sf := range slideFiles {
		shapes, err := parseSlideShapes(sf.file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse slide %d: %w", sf.num, err)
		}

		var title string
		var slideTextParts []string
		for _, shape := range shapes {
			text := strings.TrimSpace(shape.text)
			if text == "" {
				continue
			}
			if title == "" && (shape.phType == "title" || shape.phType == "ctrTitle") {
				title = text
			}
			slideTextParts = append(slideTextParts, text)
		}
		slideText := strings.Join(slideTextParts, "\n")

		notes, err := e.slideNotes(files, sf.num)
		if err != nil {
			e.logger.Warn("speaker notes extraction failed", "slide", sf.num, "error", err)
		}

		slideNum := i + 1
		slides = append(slides, Slide{
			Number: slideNum,
			Title:  title,
			Text:   textutil.CleanText(slideText),
			Notes:  notes,
		})

		// Flattened rendering keeps the raw slide text layout.
		displayTitle := title
		if displayTitle == "" {
			displayTitle = "Untitled"
		}
		textParts = append(textParts, fmt.Sprintf("--- Slide %d: %s ---", slideNum, displayTitle))
		textParts = append(textParts, slideText)
		if notes != "" {
			textParts = append(textParts, fmt.Sprintf("[Speaker Notes: %s]", notes))
		}
		textParts = append(textParts, "")
	}

	meta, err := e.metadata(path, detect.Presentation)
	if err != nil {
		return nil, err
	}
	meta.SlideCount = len(slides)

	return &Result{
		Metadata: meta,
		Text:     strings.Join(textParts, "\n"),
		Slides:   slides,
	}, nil
}

// slideNotes resolves the notes slide for a slide via its relationships file
// and returns the body placeholder text, or "" when there are no notes.
func (e *Extractor) slideNotes(files map[string]*zip.File, slideNum int) (string, error) {
	relsName := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum)
	relsFile, ok := files[relsName]
	if !ok {
		return "", nil
	}

	rc, err := relsFile.Open()
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return "", err
	}

	var rels struct {
		Relationships []struct {
			Type   string `xml:"Type,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	if err := xml.Unmarshal(data, &rels); err != nil {
		return "", err
	}

	var notesName string
	for _, rel := range rels.Relationships {
		if strings.HasSuffix(rel.Type, "/notesSlide") {
			notesName = path.Clean(path.Join("ppt/slides", rel.Target))
			break
		}
	}
	if notesName == "" {
		return "", nil
	}

	notesFile, ok := files[notesName]
	if !ok {
		return "", nil
	}
	shapes, err := parseSlideShapes(notesFile)
	if err != nil {
		return "", err
	}

	// The notes slide also carries slide-image and slide-number
	// placeholders; only the body placeholder holds the spoken notes.
	var parts []string
	for _, shape := range shapes {
		if shape.phType != "body" {
			continue
		}
		if text := strings.TrimSpace(shape.text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

// slideShape is one text-bearing shape from a slide or notes slide.
type slideShape struct {
	phType string // placeholder type attribute, e.g. "title", "body"
	text   string
}

// parseSlideShapes streams a slide XML part and collects shape texts, with
// paragraph boundaries rendered as newlines.
func parseSlideShapes(f *zip.File) ([]slideShape, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var shapes []slideShape
	var current strings.Builder
	var phType string
	var inShape, inText bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				inShape = true
				phType = ""
				current.Reset()
			case "ph":
				if inShape {
					for _, attr := range t.Attr {
						if attr.Name.Local == "type" {
							phType = attr.Value
						}
					}
				}
			case "t":
				inText = inShape
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inShape {
					current.WriteByte('\n')
				}
			case "sp":
				if inShape {
					inShape = false
					shapes = append(shapes, slideShape{phType: phType, text: current.String()})
				}
			}
		}
	}

	return shapes, nil
}
