package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"loan-amortizer/domain"
	"loan-amortizer/service"
)

type PlanHandler struct {
	plans *service.PlanService
	log   *logrus.Logger
}

func NewPlanHandler(plans *service.PlanService, log *logrus.Logger) *PlanHandler {
	return &PlanHandler{plans: plans, log: log}
}

type createPlanRequest struct {
	Name   string                `json:"name"`
	Params domain.LoanParameters `json:"params"`
}

type planScheduleResponse struct {
	Plan     domain.Plan           `json:"plan"`
	Schedule domain.ScheduleResult `json:"schedule"`
}

// CreatePlan handles POST /plans.
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, h.log, err)
		return
	}

	plan, err := h.plans.Create(r.Context(), req.Name, req.Params)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	w.Header().Set("Location", "/plans/"+plan.ID)
	writeJSON(w, h.log, http.StatusCreated, plan)
}

func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, plans)
}

func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.plans.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, plan)
}

func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.plans.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PlanSchedule handles GET /plans/{id}/schedule.
func (h *PlanHandler) PlanSchedule(w http.ResponseWriter, r *http.Request) {
	plan, result, err := h.plans.Schedule(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, planScheduleResponse{Plan: plan, Schedule: result})
}

// PlanScheduleCSV handles GET /plans/{id}/schedule.csv.
func (h *PlanHandler) PlanScheduleCSV(w http.ResponseWriter, r *http.Request) {
	plan, result, err := h.plans.Schedule(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeCSV(w, h.log, plan.ID+".csv", result)
}
