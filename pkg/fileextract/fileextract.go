// Package fileextract pulls plain text out of uploaded .txt, .md and
// .docx files for summarization.
package fileextract

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fumiama/go-docx"
	"golang.org/x/text/encoding/charmap"
)

// SupportedExtensions is the upload allow-list
var SupportedExtensions = []string{".txt", ".md", ".docx"}

// Extraction is the result of processing one uploaded file
type Extraction struct {
	Text      string `json:"text"`
	FileName  string `json:"file_name"`
	FileSize  int64  `json:"file_size"`
	WordCount int    `json:"word_count"`
}

func supported(ext string) bool {
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// Extract validates the upload and returns its text content
func Extract(fileHeader *multipart.FileHeader, maxSize int64) (*Extraction, error) {
	if fileHeader.Filename == "" || strings.TrimSpace(fileHeader.Filename) == "" {
		return nil, fmt.Errorf("invalid filename")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !supported(ext) {
		return nil, fmt.Errorf("unsupported file type: %s (supported types: %s)",
			ext, strings.Join(SupportedExtensions, ", "))
	}

	if fileHeader.Size > maxSize {
		return nil, fmt.Errorf("file size (%d bytes) exceeds maximum limit (%d bytes)",
			fileHeader.Size, maxSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	var text string
	switch ext {
	case ".txt", ".md":
		text, err = extractPlainText(file)
	case ".docx":
		text, err = extractDocx(file, fileHeader.Size)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content found in the uploaded file")
	}

	return &Extraction{
		Text:      text,
		FileName:  fileHeader.Filename,
		FileSize:  fileHeader.Size,
		WordCount: len(strings.Fields(text)),
	}, nil
}

// extractPlainText reads the file as UTF-8, falling back to Latin-1 for
// legacy exports.
func extractPlainText(file multipart.File) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("error decoding file: %w", err)
	}
	return string(decoded), nil
}

// extractDocx joins the document's non-empty paragraphs with blank lines
func extractDocx(file multipart.File, size int64) (string, error) {
	doc, err := docx.Parse(file, size)
	if err != nil {
		return "", fmt.Errorf("error reading .docx file: %w", err)
	}

	var parts []string
	for _, item := range doc.Document.Body.Items {
		if paragraph, ok := item.(*docx.Paragraph); ok {
			if text := strings.TrimSpace(paragraph.String()); text != "" {
				parts = append(parts, text)
			}
		}
	}

	return strings.Join(parts, "\n\n"), nil
}
