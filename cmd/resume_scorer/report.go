package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/schemas"
)

// report is the envelope written by every command.
type report struct {
	ReportID    string `json:"report_id"`
	GeneratedAt string `json:"generated_at"`
	Command     string `json:"command"`
	Result      any    `json:"result"`
}

// loadDocument reads the text of a .txt, .md, .html, .pdf or .docx file.
func loadDocument(path string) (string, error) {
	text, format, err := ingestion.ExtractText(path)
	if err != nil {
		return "", err
	}
	logger.Debug("loaded document", "path", path, "format", format, "bytes", len(text))
	return text, nil
}

// writeReport wraps result in a report envelope, writes it as indented JSON
// to outPath and checks it against schemas/<command>.schema.json.
// Schema failures only warn.
func writeReport(stdout io.Writer, command, outPath string, result any) error {
	r := report{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Command:     command,
		Result:      result,
	}

	jsonOutput, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s report to JSON: %w", command, err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write %s report to output file %s: %w", command, outPath, err)
	}

	if err := schemas.ValidateReport(command, jsonOutput); err != nil {
		var schemaLoadErr *schemas.SchemaLoadError
		switch {
		case errors.Is(err, schemas.ErrSchemaNotFound):
			logger.Debug("no output schema found", "command", command)
		case errors.As(err, &schemaLoadErr):
			logger.Warn("could not load output schema", "command", command, "error", err)
		default:
			logger.Warn("output failed schema validation", "command", command, "error", err)
		}
	}

	_, _ = fmt.Fprintf(stdout, "Successfully wrote %s report %s to %s\n", command, r.ReportID, outPath)
	return nil
}

// markRequired marks flags required, panicking on unknown names.
func markRequired(flags interface{ MarkFlagRequired(string) error }, names ...string) {
	for _, name := range names {
		if err := flags.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
