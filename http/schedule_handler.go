package http

import (
	"bytes"
	"net/http"

	"github.com/sirupsen/logrus"

	"loan-amortizer/domain"
	"loan-amortizer/export"
	"loan-amortizer/service"
)

type ScheduleHandler struct {
	schedules   *service.ScheduleService
	comparisons *service.ComparisonService
	log         *logrus.Logger
}

func NewScheduleHandler(
	schedules *service.ScheduleService,
	comparisons *service.ComparisonService,
	log *logrus.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules, comparisons: comparisons, log: log}
}

// CalculateSchedule handles POST /schedule.
func (h *ScheduleHandler) CalculateSchedule(w http.ResponseWriter, r *http.Request) {
	var params domain.LoanParameters
	if err := decodeJSON(w, r, &params); err != nil {
		writeDecodeError(w, h.log, err)
		return
	}

	result, err := h.schedules.Calculate(r.Context(), params)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}

// ExportSchedule handles POST /schedule/export and answers with CSV.
func (h *ScheduleHandler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	var params domain.LoanParameters
	if err := decodeJSON(w, r, &params); err != nil {
		writeDecodeError(w, h.log, err)
		return
	}

	result, err := h.schedules.Calculate(r.Context(), params)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeCSV(w, h.log, "schedule.csv", result)
}

// CompareSchedule handles POST /schedule/compare.
func (h *ScheduleHandler) CompareSchedule(w http.ResponseWriter, r *http.Request) {
	var params domain.LoanParameters
	if err := decodeJSON(w, r, &params); err != nil {
		writeDecodeError(w, h.log, err)
		return
	}

	comparison, err := h.comparisons.Compare(r.Context(), params)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, comparison)
}

func writeCSV(w http.ResponseWriter, log *logrus.Logger, filename string, result domain.ScheduleResult) {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, result); err != nil {
		log.Errorf("Error encoding csv: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warnf("Error writing response: %v", err)
	}
}
