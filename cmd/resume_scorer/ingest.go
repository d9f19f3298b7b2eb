package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Extract and clean the text of a document",
	Long:  "Extracts the text of a .txt, .md, .html, .pdf or .docx résumé or job posting, cleans it, and writes <name>.cleaned.txt, <name>.meta.json and an ingest report to the output directory.",
	RunE:  runIngest,
}

var (
	ingestInput  string
	ingestOutDir string
)

// ingestReport is the result of the ingest command.
type ingestReport struct {
	CleanedPath string              `json:"cleaned_path"`
	Metadata    *ingestion.Metadata `json:"metadata"`
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestInput, "input", "i", "", "Path to input document (required)")
	ingestCmd.Flags().StringVar(&ingestOutDir, "out-dir", "", "Output directory (required)")
	markRequired(ingestCmd, "input", "out-dir")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cleanedText, metadata, err := ingestion.IngestFromFile(ingestInput)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", ingestInput, err)
	}

	name := ingestion.BaseName(ingestInput)
	if err := ingestion.WriteOutput(ingestOutDir, name, cleanedText, metadata); err != nil {
		return err
	}
	logger.Info("ingested document", "source", ingestInput, "format", metadata.Format, "words", metadata.Words)

	result := ingestReport{
		CleanedPath: filepath.Join(ingestOutDir, name+".cleaned.txt"),
		Metadata:    metadata,
	}
	return writeReport(cmd.OutOrStdout(), "ingest", filepath.Join(ingestOutDir, name+".ingest.json"), result)
}
