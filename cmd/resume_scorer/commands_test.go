package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

func TestCommands_MissingFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "keywords without --input", args: []string{"keywords", "--out", "x.json"}},
		{name: "similarity without --b", args: []string{"similarity", "--a", "a.txt", "--out", "x.json"}},
		{name: "match without --job", args: []string{"match", "--resume", "r.txt", "--out", "x.json"}},
		{name: "analyze without --out", args: []string{"analyze", "--resume", "r.txt"}},
		{name: "score without --resume", args: []string{"score", "--role", "sdr", "--out", "x.json"}},
		{name: "ats without --resume", args: []string{"ats", "--out", "x.json"}},
		{name: "gap without --job", args: []string{"gap", "--resume", "r.txt", "--out", "x.json"}},
		{name: "rank without --resumes", args: []string{"rank", "--job", "j.txt", "--out", "x.json"}},
		{name: "ingest without --out-dir", args: []string{"ingest", "--input", "r.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required")
		})
	}
}

func TestKeywordsCommand(t *testing.T) {
	tmpDir := t.TempDir()

	for _, method := range []string{methodTextRank, methodNgram} {
		t.Run(method, func(t *testing.T) {
			outPath := filepath.Join(tmpDir, method, "keywords.json")
			stdout, err := executeCommand(t, "keywords", "--input", testdata("job.md"), "--method", method, "--top-k", "3", "--out", outPath)
			require.NoError(t, err)
			assert.Contains(t, stdout, "Successfully wrote keywords report")

			var result keywordsReport
			decodeResult(t, readReport(t, "keywords", outPath), &result)
			assert.Equal(t, method, result.Method)
			assert.Equal(t, 3, result.TopK)
			assert.Greater(t, result.Diversity, 0.0)
			if method == methodTextRank {
				assert.NotEmpty(t, result.Phrases)
				assert.LessOrEqual(t, len(result.Phrases), 3)
			} else {
				assert.NotEmpty(t, result.Keywords)
				assert.LessOrEqual(t, len(result.Keywords), 3)
			}
		})
	}
}

func TestKeywordsCommand_InvalidArguments(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "keywords.json")

	_, err := executeCommand(t, "keywords", "--input", testdata("job.md"), "--method", "bm25", "--out", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown method")

	_, err = executeCommand(t, "keywords", "--input", testdata("job.md"), "--top-k", "0", "--out", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top_k")

	_, err = executeCommand(t, "keywords", "--input", testdata("missing.txt"), "--out", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	assert.NoFileExists(t, outPath)
}

func TestSimilarityCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "similarity.json")

	_, err := executeCommand(t, "similarity", "--a", testdata("job.md"), "--b", testdata("resumes/alice.txt"), "--out", outPath)
	require.NoError(t, err)

	var result similarityReport
	decodeResult(t, readReport(t, "similarity", outPath), &result)
	assert.Equal(t, config.Defaults().Dimensions, result.Dimensions)
	assert.Greater(t, result.TextSimilarity, 0)
	assert.LessOrEqual(t, result.TextSimilarity, 100)
}

func TestSimilarityCommand_IdenticalDocuments(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "similarity.json")

	_, err := executeCommand(t, "similarity", "--a", testdata("job.md"), "--b", testdata("job.md"), "--out", outPath)
	require.NoError(t, err)

	var result similarityReport
	decodeResult(t, readReport(t, "similarity", outPath), &result)
	assert.Equal(t, 100, result.TextSimilarity)
	assert.InDelta(t, 1.0, result.WordVectorSimilarity, 1e-9)
}

func TestMatchCommand(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("basic", func(t *testing.T) {
		outPath := filepath.Join(tmpDir, "match.json")
		_, err := executeCommand(t, "match", "--resume", testdata("resumes/alice.txt"), "--job", testdata("job.md"), "--out", outPath)
		require.NoError(t, err)

		var result matchReport
		decodeResult(t, readReport(t, "match", outPath), &result)
		require.NotNil(t, result.Match)
		assert.Nil(t, result.Enhanced)
		assert.Nil(t, result.Prediction)
	})

	t.Run("enhanced", func(t *testing.T) {
		outPath := filepath.Join(tmpDir, "match_enhanced.json")
		_, err := executeCommand(t, "match", "-r", testdata("resumes/alice.txt"), "-j", testdata("job.md"),
			"--enhanced", "--years", "6", "--target-years", "5", "--out", outPath)
		require.NoError(t, err)

		var result matchReport
		decodeResult(t, readReport(t, "match", outPath), &result)
		require.NotNil(t, result.Match)
		assert.NotNil(t, result.Enhanced)
		assert.NotNil(t, result.Coverage)
		assert.NotNil(t, result.ATSOptimization)
		assert.NotNil(t, result.Prediction)
	})
}

func TestAnalyzeCommand(t *testing.T) {
	tmpDir := t.TempDir()

	withoutJob := filepath.Join(tmpDir, "analyze.json")
	_, err := executeCommand(t, "analyze", "--resume", testdata("resume_engineer.txt"), "--out", withoutJob)
	require.NoError(t, err)
	readReport(t, "analyze", withoutJob)

	withJob := filepath.Join(tmpDir, "analyze_job.json")
	_, err = executeCommand(t, "analyze", "--resume", testdata("resume_engineer.txt"), "--job", testdata("job.md"), "--years", "8", "--out", withJob)
	require.NoError(t, err)
	readReport(t, "analyze", withJob)
}

func TestScoreCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "score.json")

	_, err := executeCommand(t, "score", "--resume", testdata("resume_engineer.txt"),
		"--role", "software engineer", "--region", "na", "--years", "8", "--out", outPath)
	require.NoError(t, err)

	var result types.RoleReport
	decodeResult(t, readReport(t, "score", outPath), &result)
	assert.Equal(t, "Software Engineering", result.Role)
	assert.Equal(t, "North America", result.Region)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 95, result.ATSScore)
}

func TestScoreCommand_RoleFromEnvironment(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "score.json")

	_, err := executeCommand(t, "score", "--resume", testdata("resume_engineer.txt"), "--out", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvRole)

	t.Setenv(config.EnvRole, "software engineer")
	rootCmd.SetArgs([]string{"score", "--resume", testdata("resume_engineer.txt"), "--years", "8", "--out", outPath})
	resetFlags(rootCmd)
	require.NoError(t, rootCmd.Execute())

	var result types.RoleReport
	decodeResult(t, readReport(t, "score", outPath), &result)
	assert.Equal(t, "Software Engineering", result.Role)
}

func TestScoreCommand_UnknownRole(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "score.json")

	_, err := executeCommand(t, "score", "--resume", testdata("resume_engineer.txt"), "--role", "astronaut", "--out", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to score resume")
}

func TestATSCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "nested", "ats.json")

	stdout, err := executeCommand(t, "ats", "--resume", testdata("resume_ats.txt"), "--out", outPath, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NO ATS ISSUES FOUND (score 100)")

	var result types.ATSResult
	decodeResult(t, readReport(t, "ats", outPath), &result)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Issues)
}

func TestGapCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "gap.json")

	_, err := executeCommand(t, "gap", "--resume", testdata("gap_resume.txt"), "--job", testdata("gap_job.txt"), "--out", outPath)
	require.NoError(t, err)

	var result types.GapAnalysis
	decodeResult(t, readReport(t, "gap", outPath), &result)
	assert.Equal(t, 33, result.OverallReadiness)
}

func TestRankCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "rank.json")

	stdout, err := executeCommand(t, "rank", "--job", testdata("job.md"), "--resumes", testdata("resumes"), "--workers", "2", "--out", outPath, "-v")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alice.txt")

	var result types.RankedResumes
	decodeResult(t, readReport(t, "rank", outPath), &result)
	require.Len(t, result.Ranked, 3, "notes.csv should be skipped")
	assert.Equal(t, "alice.txt", result.Ranked[0].ResumeID)
	for i, r := range result.Ranked {
		assert.Equal(t, i+1, r.Rank)
		assert.NotEqual(t, "notes.csv", r.ResumeID)
	}
	assert.Contains(t, result.Ranked[0].MatchedSkills, "Go")
}

func TestRankCommand_EmptyDirectory(t *testing.T) {
	emptyDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(emptyDir, "data.csv"), []byte("a,b"), 0644))

	_, err := executeCommand(t, "rank", "--job", testdata("job.md"), "--resumes", emptyDir, "--out", filepath.Join(emptyDir, "rank.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no supported resume documents")
}

func TestIngestCommand(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")

	_, err := executeCommand(t, "ingest", "--input", testdata("job.md"), "--out-dir", outDir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "job.cleaned.txt"))
	assert.FileExists(t, filepath.Join(outDir, "job.meta.json"))

	var result ingestReport
	decodeResult(t, readReport(t, "ingest", filepath.Join(outDir, "job.ingest.json")), &result)
	assert.Equal(t, filepath.Join(outDir, "job.cleaned.txt"), result.CleanedPath)
	require.NotNil(t, result.Metadata)
	assert.Greater(t, result.Metadata.Words, 0)
}
