package output

import (
	"bytes"

	"github.com/realestimate/realestimate/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the comparison report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
