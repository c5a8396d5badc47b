package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/exec-review/cli/internal/detect"
)

const docxDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Second paragraph with </w:t></w:r><w:r><w:t>two runs.</w:t></w:r></w:p>
    <w:p><w:r><w:t>   </w:t></w:r></w:p>
    <w:p><w:r><w:t>Third paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.docx")
	writeZipFixture(t, path, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   docxDocumentXML,
	})

	result, err := testExtractor(t).Extract(context.Background(), path, detect.Document, Options{})
	if err != nil {
		t.Fatal(err)
	}

	want := "First paragraph. Second paragraph with two runs. Third paragraph."
	if result.Text != want {
		t.Errorf("Text = %q, want %q", result.Text, want)
	}
	if result.Metadata.ContentType != detect.Document {
		t.Errorf("ContentType = %q", result.Metadata.ContentType)
	}
}

func TestExtractDocxMissingDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	writeZipFixture(t, path, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
	})

	if _, err := testExtractor(t).Extract(context.Background(), path, detect.Document, Options{}); err == nil {
		t.Error("expected error for archive without word/document.xml")
	}
}

func TestExtractDocxNotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := testExtractor(t).Extract(context.Background(), path, detect.Document, Options{}); err == nil {
		t.Error("expected error for non-zip docx")
	}
}
