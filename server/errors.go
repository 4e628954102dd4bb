package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Pinont/Image-Processing-AI-x-Blockchain/images"
	"github.com/Pinont/Image-Processing-AI-x-Blockchain/inference"
)

// ErrorResponse is the failure shape for every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// statusFor classifies a pipeline failure by origin: client-caused input
// errors map to 400, session-pool exhaustion to 503, everything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, images.ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, inference.ErrPoolExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), ErrorResponse{Detail: err.Error()})
}
