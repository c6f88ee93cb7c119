package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/realestimate/realestimate/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.ComparisonReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ComparisonReport) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ComparisonReport) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                     { return ff.ID }

// nowFunc stamps output filenames; tests replace it.
var nowFunc = time.Now

// WriteFormatted runs a formatter and writes output to a timestamped file
// with extension ext inside dir ("" means the working directory).
func WriteFormatted(f Formatter, report *domain.ComparisonReport, dir, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	filename := filepath.Join(dir, fmt.Sprintf("rent_vs_buy_%s.%s", nowFunc().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVMonthlyExporter{},
	CSVYearlyExporter{},
	JSONFormatter{},
	YAMLFormatter{},
	HTMLFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"text":            "console",
	"lite":            "console-lite",
	"csv-summary":     "csv",
	"csv-monthly":     "monthly-csv",
	"schedule":        "monthly-csv",
	"csv-yearly":      "yearly-csv",
	"json-pretty":     "json",
	"yml":             "yaml",
	"html-report":     "html",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// FileExtension returns the file extension used when writing a format.
func FileExtension(name string) string {
	switch n := NormalizeFormatName(name); {
	case n == "console" || n == "console-lite":
		return "txt"
	case strings.Contains(n, "csv"):
		return "csv"
	default:
		return n
	}
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
