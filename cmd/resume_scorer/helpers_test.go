package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/schemas"
)

// executeCommand runs the CLI in-process and returns everything written to stdout.
// Flag values from earlier runs are reset first since the command tree is global.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{config.EnvRegion, config.EnvRole, config.EnvLogLevel, config.EnvWorkers} {
		if _, ok := os.LookupEnv(env); ok {
			t.Setenv(env, "")
		}
	}
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// readReport checks the report at path against its command schema and decodes it.
func readReport(t *testing.T, command, path string) report {
	t.Helper()
	schemaPath := filepath.Join("..", "..", "schemas", command+".schema.json")
	require.NoError(t, schemas.ValidateJSON(schemaPath, path), "report should match %s", schemaPath)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var r report
	require.NoError(t, json.Unmarshal(data, &r))
	require.Equal(t, command, r.Command)
	require.NotEmpty(t, r.ReportID)
	return r
}

// decodeResult re-decodes the generic result of a report into v.
func decodeResult(t *testing.T, r report, v any) {
	t.Helper()
	data, err := json.Marshal(r.Result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}
