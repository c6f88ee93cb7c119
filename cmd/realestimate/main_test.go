package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/realestimate/realestimate/internal/config"
	"github.com/realestimate/realestimate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeApp(t, nil, args...)
	return out, err
}

// executeApp runs the CLI with an extra closer registered before the
// subcommand opens its own resources.
func executeApp(t *testing.T, closer func() error, args ...string) (string, *app, error) {
	t.Helper()
	cmd, a := newRootCmd()
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := run(cmd, a)
	return out.String(), a, err
}

var quickArgs = []string{
	"quick",
	"--name", "Apartment",
	"--price", "750,000,000",
	"--down-payment", "20",
	"--first-rate", "7.92",
	"--subsequent-rate", "12",
	"--term", "5",
	"--fixed", "3",
	"--rent", "5,000,000",
	"--return", "6",
}

func TestQuickConsoleLite(t *testing.T) {
	out, err := execute(t, append(quickArgs, "--format", "lite")...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BUY VS RENT SUMMARY"), out)
	assert.Contains(t, out, "Recommended: Apartment (buy")
}

func TestQuickWithRangeVerbose(t *testing.T) {
	out, err := execute(t, append(quickArgs, "--subsequent-rate-max", "15", "--start-month", "2025-01")...)
	require.NoError(t, err)
	assert.Contains(t, out, "SCENARIO 1: Apartment")
	assert.Contains(t, out, "SUBSEQUENT RATE RANGE")
}

func TestQuickInvalidInput(t *testing.T) {
	args := append([]string{}, quickArgs...)
	for i, a := range args {
		if a == "--fixed" {
			args[i+1] = "9"
		}
	}
	_, err := execute(t, args...)
	require.Error(t, err)
	var inputErr *domain.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "fixed_period_years", inputErr.Field)
}

func TestRunClosesResourcesOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "success", args: quickArgs},
		{name: "compare missing file", args: []string{"compare", "-c", filepath.Join(t.TempDir(), "missing.yaml")}, wantErr: true},
		{name: "quick invalid input", args: append(append([]string{}, quickArgs...), "--fixed", "10"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed := 0
			_, a, err := executeApp(t, func() error { closed++; return nil }, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, closed)
			assert.Empty(t, a.closers)
			require.NotNil(t, a.logger)
		})
	}
}

func TestQuickMissingRequiredFlag(t *testing.T) {
	_, err := execute(t, "quick", "--price", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestExampleThenCompare(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "scenarios.yaml")

	out, err := execute(t, "example", "--out", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, cfgPath)

	loaded, err := config.NewInputParser().LoadFromFile(cfgPath)
	require.NoError(t, err)
	assert.Len(t, loaded.Scenarios, 2)

	out, err = execute(t, "compare", "--config", cfgPath, "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,"))
}

func TestCompareWritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "scenarios.yaml")
	_, err := execute(t, "example", "--out", cfgPath)
	require.NoError(t, err)

	reports := filepath.Join(dir, "reports")
	out, err := execute(t, "compare", "-c", cfgPath, "-f", "all", "-o", reports)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Report written to"))

	entries, err := os.ReadDir(reports)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestCompareUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "scenarios.yaml")
	_, err := execute(t, "example", "--out", cfgPath)
	require.NoError(t, err)

	_, err = execute(t, "compare", "-c", cfgPath, "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Try one of:")
}

func TestFormats(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "monthly-csv")
	assert.Contains(t, out, "pdf")
}

func TestSettingsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("output:\n  format: console-lite\n"), 0644))

	out, err := execute(t, append([]string{"--settings", settings}, quickArgs...)...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BUY VS RENT SUMMARY"), out)

	t.Setenv("REALESTIMATE_PRECISION_SCALE", "0")
	_, err = execute(t, "formats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precision.scale")
}

func TestInitializeLogger(t *testing.T) {
	_, err := initializeLogger(config.LoggingConfig{Level: "loud"}, "")
	assert.EqualError(t, err, "invalid log level: loud")

	_, err = initializeLogger(config.LoggingConfig{Format: "xml"}, "")
	assert.EqualError(t, err, "invalid log format: xml")

	logFile := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, err := initializeLogger(config.LoggingConfig{Level: "info", Format: "json", OutputFile: logFile}, "debug")
	require.NoError(t, err)
	logger.Debug("hello")
	_ = logger.Sync()
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
