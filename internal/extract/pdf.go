package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/exec-review/cli/internal/detect"
	"github.com/exec-review/cli/internal/textutil"
)

// pageImageDPI is the resolution used when rasterizing PDF pages for the
// image sideband.
const pageImageDPI = 150

// extractPDF extracts page-by-page text from a PDF, with an optional
// best-effort image sideband rendered per page. MuPDF handles CMYK to RGB
// conversion when rasterizing.
func (e *Extractor) extractPDF(path, outputDir string, ct detect.ContentType) (*Result, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var textParts []string
	var imagePaths []string

	var imagesDir string
	if outputDir != "" {
		imagesDir = filepath.Join(outputDir, "images")
		if err := os.MkdirAll(imagesDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create images directory: %w", err)
		}
	}

	for i := 0; i < doc.NumPage(); i++ {
		textParts = append(textParts, fmt.Sprintf("--- Page %d ---", i+1))
		text, err := doc.Text(i)
		if err != nil {
			e.logger.Warn("page text extraction failed", "path", path, "page", i+1, "error", err)
			continue
		}
		textParts = append(textParts, text)

		if imagesDir == "" {
			continue
		}
		// Per-page image failures are swallowed; a bad page never
		// aborts the extraction.
		png, err := doc.ImagePNG(i, pageImageDPI)
		if err != nil {
			e.logger.Warn("page image render failed", "path", path, "page", i+1, "error", err)
			continue
		}
		imgPath := filepath.Join(imagesDir, fmt.Sprintf("page%d_img1.png", i+1))
		if err := os.WriteFile(imgPath, png, 0644); err != nil {
			e.logger.Warn("page image write failed", "path", imgPath, "error", err)
			continue
		}
		imagePaths = append(imagePaths, imgPath)
	}

	meta, err := e.metadata(path, ct)
	if err != nil {
		return nil, err
	}
	meta.PageCount = doc.NumPage()

	return &Result{
		Metadata:   meta,
		Text:       textutil.CleanText(strings.Join(textParts, "\n")),
		ImagePaths: imagePaths,
	}, nil
}
