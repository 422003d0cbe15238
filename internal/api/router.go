package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the handler's routes onto a mux router.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", h.HealthCheckHandler).Methods("GET")
	r.HandleFunc("/receipts/process", h.ProcessReceiptHandler).Methods("POST")
	r.HandleFunc("/receipts/{id}/points", h.GetPointsHandler).Methods("GET")
	return r
}
