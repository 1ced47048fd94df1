package fileextract

import (
	"bytes"
	"mime/multipart"
	"strings"
	"testing"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file_upload", filename)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing part failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm failed: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	headers := form.File["file_upload"]
	if len(headers) != 1 {
		t.Fatalf("got %d file headers, want 1", len(headers))
	}
	return headers[0]
}

func TestExtractPlainTextFile(t *testing.T) {
	header := uploadHeader(t, "notes.txt", []byte("hello world from a file"))

	extraction, err := Extract(header, 1<<20)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if extraction.Text != "hello world from a file" {
		t.Errorf("Text = %q", extraction.Text)
	}
	if extraction.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", extraction.WordCount)
	}
	if extraction.FileName != "notes.txt" {
		t.Errorf("FileName = %q", extraction.FileName)
	}
}

func TestExtractMarkdownFile(t *testing.T) {
	header := uploadHeader(t, "README.md", []byte("# Title\n\nbody text"))

	extraction, err := Extract(header, 1<<20)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.Contains(extraction.Text, "body text") {
		t.Errorf("Text = %q", extraction.Text)
	}
}

func TestExtractLatin1Fallback(t *testing.T) {
	// 0xE9 is é in ISO-8859-1 but invalid UTF-8 on its own
	header := uploadHeader(t, "legacy.txt", []byte{'c', 'a', 'f', 0xE9})

	extraction, err := Extract(header, 1<<20)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if extraction.Text != "café" {
		t.Errorf("Text = %q, want café", extraction.Text)
	}
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	header := uploadHeader(t, "report.pdf", []byte("%PDF-1.4"))

	if _, err := Extract(header, 1<<20); err == nil || !strings.Contains(err.Error(), "unsupported file type") {
		t.Fatalf("expected unsupported-type error, got %v", err)
	}
}

func TestExtractRejectsOversizedFile(t *testing.T) {
	header := uploadHeader(t, "big.txt", bytes.Repeat([]byte("a"), 100))

	if _, err := Extract(header, 10); err == nil || !strings.Contains(err.Error(), "exceeds maximum limit") {
		t.Fatalf("expected size error, got %v", err)
	}
}

func TestExtractRejectsEmptyFile(t *testing.T) {
	header := uploadHeader(t, "empty.txt", []byte("   \n  "))

	if _, err := Extract(header, 1<<20); err == nil || !strings.Contains(err.Error(), "no text content") {
		t.Fatalf("expected empty-content error, got %v", err)
	}
}
