package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format is a supported input document format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

// ErrUnsupportedFormat is returned for file extensions with no extractor
var ErrUnsupportedFormat = errors.New("unsupported file format")

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTab          = regexp.MustCompile(`<w:tab/>`)
	docxBreak        = regexp.MustCompile(`<w:br/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// DetectFormat maps a file name to its document format by extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", "":
		return FormatText, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ExtractText reads the file at path and returns its raw text, before cleaning.
func ExtractText(path string) (string, Format, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", fmt.Errorf("file not found: %w", err)
		}
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}

	text, err := ExtractBytes(data, format)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract %s text from %s: %w", format, path, err)
	}
	return text, format, nil
}

// ExtractBytes converts document bytes of the given format to text.
func ExtractBytes(data []byte, format Format) (string, error) {
	switch format {
	case FormatText, FormatMarkdown:
		return string(data), nil
	case FormatHTML:
		return extractHTML(data)
	case FormatPDF:
		return extractPDF(data)
	case FormatDOCX:
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// extractHTML returns the visible text of an HTML page with block elements
// on their own lines and list items as "- " bullets.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("- ")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr, section, article").AppendHtml("\n")

	content := doc.Find("main").First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}
	lines := strings.Split(content.Text(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n"), nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText flattens WordprocessingML into text, one paragraph per line.
func docxXMLToText(xml string) string {
	xml = docxParagraphEnd.ReplaceAllString(xml, "\n")
	xml = docxTab.ReplaceAllString(xml, "\t")
	xml = docxBreak.ReplaceAllString(xml, "\n")
	return html.UnescapeString(xmlTag.ReplaceAllString(xml, ""))
}
