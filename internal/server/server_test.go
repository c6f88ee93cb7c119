package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/realestimate/realestimate/internal/cache"
	"github.com/realestimate/realestimate/internal/config"
	"github.com/realestimate/realestimate/internal/domain"
	"github.com/realestimate/realestimate/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	svc := service.NewComparisonService(nil, cache.NewMemoryCache(time.Hour), "test:", logger)
	return NewServer(svc, logger, config.ServerConfig{Address: "127.0.0.1:0"}), logs
}

func exampleInput() map[string]string {
	return map[string]string{
		"name":                      "Apartment",
		"property_price":            "750,000,000",
		"down_payment_percent":      "20",
		"first_period_rate_percent": "7.92",
		"subsequent_rate_percent":   "12",
		"term_years":                "5",
		"fixed_period_years":        "3",
		"monthly_rent":              "5,000,000",
		"investment_return_percent": "6",
	}
}

func postJSON(t *testing.T, s *Server, path string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestFormats(t *testing.T) {
	s, _ := newTestServer(t)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/formats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Formats []string `json:"formats"`
		Aliases []string `json:"aliases"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Formats, "json")
	assert.Contains(t, body.Formats, "pdf")
	assert.Contains(t, body.Aliases, "yml")
}

func TestFormPage(t *testing.T) {
	s, _ := newTestServer(t)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="property_price"`)
}

func TestCompareJSON(t *testing.T) {
	s, logs := newTestServer(t)
	w := postJSON(t, s, "/api/v1/compare", exampleInput())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report domain.ScenarioReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "Apartment", report.Name)
	assert.Equal(t, "600000000", report.Plan.LoanAmount.String())
	assert.True(t, report.Summary.BuyingCheaper)
	assert.Equal(t, "buy", report.Summary.Recommendation)
	assert.Len(t, report.Result.Monthly, 60)
	assert.Nil(t, report.Range)
	assert.Equal(t, 1, logs.FilterMessage("comparison complete").Len())

	// Second identical request is served from the cache.
	w = postJSON(t, s, "/api/v1/compare", exampleInput())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("cache hit").Len())
}

func TestCompareWithRange(t *testing.T) {
	s, _ := newTestServer(t)
	in := exampleInput()
	in["subsequent_rate_max_percent"] = "15"
	w := postJSON(t, s, "/api/v1/compare", in)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report domain.ScenarioReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.NotNil(t, report.Range)
	assert.Equal(t, domain.OutcomeBuyingCheaperAll, report.Range.Outcome)
}

func TestCompareFormPostRendersHTML(t *testing.T) {
	s, _ := newTestServer(t)
	form := url.Values{}
	for k, v := range exampleInput() {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compare?format=html", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "<!DOCTYPE html>"))
	assert.Contains(t, w.Body.String(), "Scenario 1: Apartment")
}

func TestCompareOtherFormats(t *testing.T) {
	s, _ := newTestServer(t)
	tests := []struct {
		format      string
		contentType string
		prefix      string
	}{
		{"csv", "text/csv; charset=utf-8", "Scenario,"},
		{"schedule", "text/csv; charset=utf-8", "Scenario,Month,Date"},
		{"console", "text/plain; charset=utf-8", "====="},
		{"yaml", "application/x-yaml", "generated_at:"},
		{"pdf", "application/pdf", "%PDF-"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w := postJSON(t, s, "/api/v1/compare?format="+tt.format, exampleInput())
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.True(t, strings.HasPrefix(w.Body.String(), tt.prefix), "body starts with %q", truncate(w.Body.String(), 40))
		})
	}
}

func TestCompareErrors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		mutate func(map[string]string)
		status int
		field  string
	}{
		{"missing price", "/api/v1/compare", func(m map[string]string) { delete(m, "property_price") }, http.StatusBadRequest, "property_price"},
		{"bad number", "/api/v1/compare", func(m map[string]string) { m["monthly_rent"] = "lots" }, http.StatusBadRequest, "monthly_rent"},
		{"fixed beyond term", "/api/v1/compare", func(m map[string]string) { m["fixed_period_years"] = "6" }, http.StatusBadRequest, "fixed_period_years"},
		{"max below subsequent", "/api/v1/compare", func(m map[string]string) { m["subsequent_rate_max_percent"] = "10" }, http.StatusBadRequest, "subsequent_rate_max"},
		{"unknown format", "/api/v1/compare?format=xml", func(map[string]string) {}, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := exampleInput()
			tt.mutate(in)
			w := postJSON(t, s, tt.path, in)
			require.Equal(t, tt.status, w.Code, w.Body.String())

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			if tt.field != "" {
				assert.Equal(t, tt.field, body["field"])
			}
		})
	}
}

func TestCompareMalformedBody(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compare", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	s, logs := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		return logs.FilterMessage("server listening").Len() == 1
	}, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, 1, logs.FilterMessage("server exited").Len())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
