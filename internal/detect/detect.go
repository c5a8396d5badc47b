// Package detect classifies input files by extension and validates them
// before extraction.
package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ContentType identifies the broad category of an input file.
type ContentType string

const (
	Video        ContentType = "video"
	Audio        ContentType = "audio"
	Document     ContentType = "document"
	Presentation ContentType = "presentation"
)

var videoExtensions = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true, ".avi": true, ".mkv": true,
}

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".m4a": true, ".flac": true, ".ogg": true,
}

var documentExtensions = map[string]bool{
	".pdf": true, ".docx": true, ".md": true, ".txt": true,
}

var presentationExtensions = map[string]bool{
	".pptx": true,
}

// Ext returns the lowercase extension of path, including the dot.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Detect returns the content type for a file path based on its extension.
// Unknown extensions return ok=false, not an error.
func Detect(path string) (ContentType, bool) {
	ext := Ext(path)
	switch {
	case videoExtensions[ext]:
		return Video, true
	case audioExtensions[ext]:
		return Audio, true
	case documentExtensions[ext]:
		return Document, true
	case presentationExtensions[ext]:
		return Presentation, true
	}
	return "", false
}

// Supported reports whether the extension belongs to any supported set.
func Supported(ext string) bool {
	return videoExtensions[ext] || audioExtensions[ext] ||
		documentExtensions[ext] || presentationExtensions[ext]
}

// AllExtensions returns every supported extension, sorted.
func AllExtensions() []string {
	var exts []string
	for _, set := range []map[string]bool{
		videoExtensions, audioExtensions, documentExtensions, presentationExtensions,
	} {
		for ext := range set {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// SupportedExtensionsByType returns the extension sets keyed by content type,
// each sorted.
func SupportedExtensionsByType() map[ContentType][]string {
	sets := map[ContentType]map[string]bool{
		Video:        videoExtensions,
		Audio:        audioExtensions,
		Document:     documentExtensions,
		Presentation: presentationExtensions,
	}
	out := make(map[ContentType][]string, len(sets))
	for ct, set := range sets {
		for ext := range set {
			out[ct] = append(out[ct], ext)
		}
		sort.Strings(out[ct])
	}
	return out
}

// Validate checks that a file exists, is a regular file, is readable, has a
// supported extension, and is non-empty. The first failing check
// short-circuits with a human-readable message.
func Validate(path string) (bool, string) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Sprintf("File not found: %s", path)
	}

	if !info.Mode().IsRegular() {
		return false, fmt.Sprintf("Path is not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return false, fmt.Sprintf("Permission denied: %s", path)
		}
		return false, fmt.Sprintf("Cannot read file: %s - %v", path, err)
	}
	buf := make([]byte, 1)
	_, readErr := f.Read(buf)
	f.Close()
	if readErr != nil && info.Size() > 0 {
		return false, fmt.Sprintf("Cannot read file: %s - %v", path, readErr)
	}

	ext := Ext(path)
	if !Supported(ext) {
		return false, fmt.Sprintf("Unsupported file type: %s. Supported types: %s",
			ext, strings.Join(AllExtensions(), ", "))
	}

	if info.Size() == 0 {
		return false, fmt.Sprintf("File is empty: %s", path)
	}

	return true, "File is valid"
}

// DisplayName returns the human-readable name for a content type.
func DisplayName(ct ContentType) string {
	switch ct {
	case Video:
		return "Video"
	case Audio:
		return "Audio"
	case Document:
		return "Document"
	case Presentation:
		return "Presentation"
	}
	return "Unknown"
}

// FileInfo summarizes a file for diagnostics.
type FileInfo struct {
	Path              string
	Name              string
	Extension         string
	SizeBytes         int64
	ContentType       ContentType
	Valid             bool
	ValidationMessage string
}

// Inspect gathers detailed information about a file.
func Inspect(path string) FileInfo {
	info := FileInfo{
		Path:      path,
		Name:      filepath.Base(path),
		Extension: Ext(path),
	}
	if st, err := os.Stat(path); err == nil {
		info.SizeBytes = st.Size()
	}
	if ct, ok := Detect(path); ok {
		info.ContentType = ct
	}
	info.Valid, info.ValidationMessage = Validate(path)
	return info
}

// SuggestContentType returns a conversion hint for common unsupported
// extensions, or "" when there is nothing useful to suggest.
func SuggestContentType(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	switch ext {
	case ".wmv", ".flv", ".m4v", ".3gp", ".ts":
		return "video (unsupported format, consider converting to MP4)"
	case ".aac", ".wma", ".aiff":
		return "audio (unsupported format, consider converting to MP3)"
	case ".doc", ".rtf", ".odt", ".pages":
		return "document (unsupported format, consider converting to PDF or DOCX)"
	case ".ppt", ".odp", ".key":
		return "presentation (unsupported format, consider converting to PPTX)"
	}
	return ""
}
