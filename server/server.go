// Package server - HTTP surface for the object-detection service.
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// NewRouter wires the endpoints and the permissive CORS policy.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/detect", h.Detect).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/chat", h.Chat).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet, http.MethodOptions)
	r.Use(corsMiddleware)
	return r
}

// corsMiddleware permits any web client to call the API cross-origin, and
// short-circuits preflight requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// New builds the http.Server for the given address and handlers.
func New(addr string, h *Handler, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      NewRouter(h),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}
