package service

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Prakash1256/PDF-AI-CHAT/types"
)

// PDFService extracts plain text from PDF documents. The rest of the
// pipeline treats it as an opaque text-extraction capability.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// ExtractData reads the whole document from r and returns its plain text and
// page count. Returns an error if the bytes are not parsable as a PDF.
func (s *PDFService) ExtractData(r io.Reader) (*types.PDFData, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}
	text, err := io.ReadAll(plain)
	if err != nil {
		return nil, fmt.Errorf("failed to read extracted text: %w", err)
	}

	return &types.PDFData{
		Text:     cleanText(string(text)),
		NumPages: reader.NumPage(),
	}, nil
}

func cleanText(text string) string {
	replacements := map[string]string{
		"\x00":   "",   // Null character
		"\uFFFD": "",   // Unicode replacement character
		"\x1b":   "",   // Escape character
		"\r":     "",   // Carriage return
		"\f":     "\n", // Form feed to newline
		"  ":     " ",  // Multiple spaces to single space
	}
	cleaned := text
	for old, new := range replacements {
		cleaned = strings.ReplaceAll(cleaned, old, new)
	}

	return strings.TrimSpace(cleaned)
}
