// Package ingestion turns résumé and job posting files into clean text with
// a metadata record.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	multiSpace       = regexp.MustCompile(`\s+`)
	excessBlankLines = regexp.MustCompile(`\n\n\n+`)

	// Line breaks from Windows, old Mac and PDF page feeds all become \n.
	lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\f", "\n", "\u00a0", " ")

	bulletMarkers = []string{"- ", "* ", "• ", "· "}
)

// CleanText normalizes line endings and whitespace without losing the
// heading and bullet structure of a document. At most one blank line is
// kept between paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	lines := strings.Split(lineBreaks.Replace(content), "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := excessBlankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims trailing whitespace and turns leading whitespace into
// spaces. Headings lose their indentation, bullets keep their inner spacing
// and every other line has its inner whitespace runs collapsed.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	body := strings.TrimLeft(line, " \t")
	if body == "" {
		return ""
	}
	indent := strings.Repeat(" ", len(line)-len(body))

	switch {
	case strings.HasPrefix(body, "#"):
		return body
	case isBulletLine(body):
		return indent + body
	default:
		return indent + multiSpace.ReplaceAllString(body, " ")
	}
}

func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// IngestFromFile extracts and cleans the text of a .txt, .md, .html, .pdf
// or .docx file. The metadata describes the cleaned text.
func IngestFromFile(path string) (string, *Metadata, error) {
	raw, format, err := ExtractText(path)
	if err != nil {
		return "", nil, err
	}
	cleaned := CleanText(raw)
	return cleaned, NewMetadata(cleaned, path, format), nil
}

// WriteOutput writes <name>.cleaned.txt and <name>.meta.json to outDir
func WriteOutput(outDir, name, cleanedText string, metadata *Metadata) error {
	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata for %s: %w", name, err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	files := []struct {
		suffix string
		data   []byte
	}{
		{".cleaned.txt", []byte(cleanedText)},
		{".meta.json", metaJSON},
	}
	for _, f := range files {
		path := filepath.Join(outDir, name+f.suffix)
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// BaseName is the file name of path without its extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
