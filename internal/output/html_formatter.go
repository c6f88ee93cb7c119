package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/realestimate/realestimate/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with yearly charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      FormatCurrency,
	"pct":       FormatPercentage,
	"rate":      FormatRate,
	"breakEven": BreakEvenDescription,
	"add":       func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// htmlScenario is the per-scenario view handed to the template.
type htmlScenario struct {
	domain.ScenarioReport
	Assumptions []string
	Chart       htmlChart
}

type htmlChart struct {
	Labels  []int     `json:"labels"`
	Balance []float64 `json:"balance"`
	Fund    []float64 `json:"fund"`
	Payment []float64 `json:"payment"`
	Rent    []float64 `json:"rent"`
}

func newHTMLChart(yearly []domain.YearlySummary) htmlChart {
	c := htmlChart{}
	for _, y := range yearly {
		c.Labels = append(c.Labels, y.Year)
		c.Balance = append(c.Balance, y.EndingBalance.Round(2).InexactFloat64())
		c.Fund = append(c.Fund, y.EndingInvestmentFund.Round(2).InexactFloat64())
		c.Payment = append(c.Payment, y.TotalPayments.Round(2).InexactFloat64())
		c.Rent = append(c.Rent, y.TotalRent.Round(2).InexactFloat64())
	}
	return c
}

func (h HTMLFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	var buf bytes.Buffer
	scenarios := make([]htmlScenario, 0, len(report.Scenarios))
	for _, sr := range report.Scenarios {
		scenarios = append(scenarios, htmlScenario{
			ScenarioReport: sr,
			Assumptions:    GenerateAssumptions(sr),
			Chart:          newHTMLChart(sr.Result.Yearly),
		})
	}
	data := struct {
		GeneratedAt    string
		Scenarios      []htmlScenario
		Recommendation Recommendation
		MultiScenario  bool
	}{
		GeneratedAt:    report.GeneratedAt.Format("2006-01-02 15:04:05"),
		Scenarios:      scenarios,
		Recommendation: AnalyzeScenarios(report),
		MultiScenario:  len(scenarios) > 1,
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
