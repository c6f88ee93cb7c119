package output

import (
	"encoding/json"

	"github.com/realestimate/realestimate/internal/domain"
)

// JSONFormatter serializes the comparison report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
