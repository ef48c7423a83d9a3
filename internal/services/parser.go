package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentParserService extracts a plain-text view of a stored résumé for
// preview purposes. The engine does its own extraction from the raw bytes, so
// a parse failure here never blocks the analysis pipeline.
type DocumentParserService interface {
	ExtractText(filePath string) (*DocumentContent, error)
}

type DocumentContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

func (p *documentParserService) ExtractText(filePath string) (*DocumentContent, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return p.extractPDF(filePath)
	case ".docx":
		return p.extractDocx(filePath)
	case ".txt":
		return p.extractPlain(filePath)
	default:
		// Extension is advisory only, try PDF then docx.
		if content, err := p.extractPDF(filePath); err == nil {
			return content, nil
		}
		return p.extractDocx(filePath)
	}
}

func (p *documentParserService) extractPDF(filePath string) (*DocumentContent, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := CleanText(textBuilder.String())
	if text == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &DocumentContent{
		Text:      text,
		PageCount: totalPage,
		FilePath:  filePath,
	}, nil
}

func (p *documentParserService) extractDocx(filePath string) (*DocumentContent, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open docx: %w", err)
	}
	defer doc.Close()

	text := CleanText(stripXMLTags(doc.Editable().GetContent()))
	if text == "" {
		return nil, fmt.Errorf("no text content found in docx")
	}

	return &DocumentContent{
		Text:     text,
		FilePath: filePath,
	}, nil
}

func (p *documentParserService) extractPlain(filePath string) (*DocumentContent, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := CleanText(string(data))
	if text == "" {
		return nil, fmt.Errorf("file is empty")
	}

	return &DocumentContent{
		Text:     text,
		FilePath: filePath,
	}, nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func stripXMLTags(s string) string {
	return xmlTagPattern.ReplaceAllString(s, " ")
}

// CleanText trims each line and drops empty ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
