package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/ranking"
	"github.com/jonathan/resume-scorer/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a directory of résumés against a job description",
	Long:  "Scores every supported document in a directory against a job description in parallel and writes them ranked by a blend of attention encoder and ensemble semantic similarity.",
	RunE:  runRank,
}

var (
	rankJob     string
	rankResumes string
	rankWorkers int
	rankOutput  string
)

func init() {
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job description document (required)")
	rankCmd.Flags().StringVarP(&rankResumes, "resumes", "d", "", "Directory of résumé documents (required)")
	rankCmd.Flags().IntVarP(&rankWorkers, "workers", "w", 0, "Concurrent résumé scorers (default from config)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON report (required)")
	markRequired(rankCmd, "job", "resumes", "out")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	workers := settings.Workers
	if cmd.Flags().Changed("workers") {
		workers = rankWorkers
	}

	job, err := loadDocument(rankJob)
	if err != nil {
		return err
	}

	resumes, err := loadResumeDir(rankResumes)
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		return fmt.Errorf("no supported resume documents found in %s", rankResumes)
	}

	result, err := ranking.RankResumes(cmd.Context(), job, resumes, workers, logger)
	if err != nil {
		return fmt.Errorf("failed to rank resumes: %w", err)
	}
	logger.Info("ranked resumes", "count", len(result.Ranked), "top", result.Ranked[0].ResumeID)

	if settings.Verbose {
		printer.PrintRankedResumes(result)
	}

	return writeReport(cmd.OutOrStdout(), "rank", rankOutput, result)
}

// loadResumeDir reads every supported document in dir, in file name order.
// Subdirectories and unsupported files are skipped.
func loadResumeDir(dir string) ([]types.ResumeDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var resumes []types.ResumeDocument
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		text, err := loadDocument(path)
		if errors.Is(err, ingestion.ErrUnsupportedFormat) {
			logger.Debug("skipping unsupported file", "path", path)
			continue
		}
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, types.ResumeDocument{ID: entry.Name(), Text: text})
	}
	return resumes, nil
}
