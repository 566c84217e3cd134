package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route behind request logging and the rate limiter.
func NewRouter(
	schedules *ScheduleHandler,
	plans *PlanHandler,
	limiter *RateLimiter,
	log *logrus.Logger,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware(log))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	api.Use(RateLimitMiddleware(limiter))

	api.HandleFunc("/schedule", schedules.CalculateSchedule).Methods(http.MethodPost)
	api.HandleFunc("/schedule/export", schedules.ExportSchedule).Methods(http.MethodPost)
	api.HandleFunc("/schedule/compare", schedules.CompareSchedule).Methods(http.MethodPost)

	api.HandleFunc("/plans", plans.CreatePlan).Methods(http.MethodPost)
	api.HandleFunc("/plans", plans.ListPlans).Methods(http.MethodGet)
	api.HandleFunc("/plans/{id}", plans.GetPlan).Methods(http.MethodGet)
	api.HandleFunc("/plans/{id}", plans.DeletePlan).Methods(http.MethodDelete)
	api.HandleFunc("/plans/{id}/schedule", plans.PlanSchedule).Methods(http.MethodGet)
	api.HandleFunc("/plans/{id}/schedule.csv", plans.PlanScheduleCSV).Methods(http.MethodGet)

	return r
}
