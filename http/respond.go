package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"loan-amortizer/repository"
	"loan-amortizer/service"
)

const maxRequestBytes = 1 << 20

var errUnsupportedMediaType = errors.New("content type must be application/json")

// decodeJSON reads a JSON request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return errUnsupportedMediaType
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeDecodeError answers a request whose body could not be decoded.
func writeDecodeError(w http.ResponseWriter, log *logrus.Logger, err error) {
	if errors.Is(err, errUnsupportedMediaType) {
		http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
		return
	}
	log.Debugf("Error decoding request body: %v", err)
	http.Error(w, "invalid request body", http.StatusBadRequest)
}

// writeJSON encodes into a buffer first so a failed encode does not leave a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, log *logrus.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Errorf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warnf("Error writing response: %v", err)
	}
}

// writeError maps service and repository errors onto status codes.
func writeError(w http.ResponseWriter, log *logrus.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParameters), errors.Is(err, service.ErrInvalidPlan):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrPlanNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("Request failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
