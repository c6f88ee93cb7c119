package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/realestimate/realestimate/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for unknown output format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// UnsupportedFormatError enriches ErrUnsupportedFormat with the available choices.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats a report with the named formatter.
func Render(report *domain.ComparisonReport, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	return f.Format(report)
}

// GenerateReport writes the report in the given format to dir and returns
// the written paths. "all" writes the verbose console, monthly CSV and HTML reports.
func GenerateReport(report *domain.ComparisonReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range []string{"console", "monthly-csv", "html"} {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir, FileExtension(name))
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	path, err := WriteFormatted(f, report, dir, FileExtension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveConfiguration writes a scenario configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
