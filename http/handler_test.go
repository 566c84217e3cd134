package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"loan-amortizer/domain"
	"loan-amortizer/repository"
	"loan-amortizer/service"
)

const referenceBody = `{
	"principal": 100000,
	"annual_rate_pct": 6,
	"term_months": 360,
	"start": "2024-01",
	"extras": {"1": 1000}
}`

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRouter(capacity int) *mux.Router {
	log := testLogger()
	schedules := service.NewScheduleService(repository.NewMemoryCache(), time.Hour, log)
	comparisons := service.NewComparisonService(schedules)
	plans := service.NewPlanService(repository.NewPlanRepositoryMemory(), schedules, log)

	limiter := newRateLimiter(capacity, time.Minute, time.Now)

	return NewRouter(
		NewScheduleHandler(schedules, comparisons, log),
		NewPlanHandler(plans, log),
		limiter,
		log,
	)
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateScheduleHandler_OK(t *testing.T) {
	router := newTestRouter(100)

	w := doRequest(router, http.MethodPost, "/schedule", referenceBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.ScheduleResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Rows) == 0 {
		t.Fatal("expected schedule rows")
	}
	if result.Rows[0].Extra != 1000 {
		t.Errorf("expected first extra 1000, got %v", result.Rows[0].Extra)
	}
	if got := result.Rows[1].Period.String(); got != "2024-02" {
		t.Errorf("expected second period 2024-02, got %q", got)
	}
	if result.PayoffMonth >= 360 {
		t.Errorf("expected extra to shorten payoff, got month %d", result.PayoffMonth)
	}
}

func TestCalculateScheduleHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(100)

	w := doRequest(router, http.MethodGet, "/schedule", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateScheduleHandler_BadRequest(t *testing.T) {
	router := newTestRouter(100)

	w := doRequest(router, http.MethodPost, "/schedule", `{invalid-json}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateScheduleHandler_InvalidParameters(t *testing.T) {
	router := newTestRouter(100)

	w := doRequest(router, http.MethodPost, "/schedule", `{"principal": 0, "annual_rate_pct": 5, "term_months": 12}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateScheduleHandler_UnsupportedMediaType(t *testing.T) {
	router := newTestRouter(100)

	req := httptest.NewRequest(http.MethodPost, "/schedule", strings.NewReader(referenceBody))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestExportScheduleHandler_CSV(t *testing.T) {
	router := newTestRouter(100)

	body := `{"principal": 1200, "annual_rate_pct": 0, "term_months": 12, "start": "2024-01"}`
	w := doRequest(router, http.MethodPost, "/schedule/export", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "schedule.csv") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected header plus 12 rows, got %d lines", len(lines))
	}
	if lines[1] != "1,2024-01,100.00,0.00,100.00,0.00,100.00,1100.00" {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestCompareScheduleHandler_OK(t *testing.T) {
	router := newTestRouter(100)

	w := doRequest(router, http.MethodPost, "/schedule/compare", referenceBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var comparison domain.ScheduleComparison
	if err := json.NewDecoder(w.Body).Decode(&comparison); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if comparison.Baseline.PayoffMonth != 360 {
		t.Errorf("expected baseline payoff 360, got %d", comparison.Baseline.PayoffMonth)
	}
	if comparison.Savings.InterestSaved <= 0 {
		t.Errorf("expected positive interest saved, got %v", comparison.Savings.InterestSaved)
	}
	if comparison.Savings.MonthsSaved <= 0 {
		t.Errorf("expected months saved, got %d", comparison.Savings.MonthsSaved)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(1)

	for i := 0; i < 3; i++ {
		w := doRequest(router, http.MethodGet, "/healthz", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 on call %d, got %d", i+1, w.Code)
		}
	}
}

func TestRouter_RateLimited(t *testing.T) {
	router := newTestRouter(2)

	for i := 0; i < 2; i++ {
		w := doRequest(router, http.MethodPost, "/schedule", referenceBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 on call %d, got %d", i+1, w.Code)
		}
	}

	w := doRequest(router, http.MethodPost, "/schedule", referenceBody)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}
