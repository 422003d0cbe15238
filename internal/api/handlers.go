package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/punchamoorthee/receiptpoints/internal/service"
	"github.com/punchamoorthee/receiptpoints/internal/store"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "receiptpoints_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "endpoint", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "receiptpoints_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "endpoint"})
)

type Handler struct {
	service *service.ReceiptService
}

func NewHandler(svc *service.ReceiptService) *Handler {
	return &Handler{service: svc}
}

func (h *Handler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	httpRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ProcessReceiptHandler(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("POST", "/receipts/process"))
	defer timer.ObserveDuration()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpRequestsTotal.WithLabelValues("POST", "/receipts/process", "500").Inc()
		respondWithError(w, http.StatusInternalServerError, "Stream read error")
		return
	}

	id, err := h.service.Process(r.Context(), body)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReceipt) {
			httpRequestsTotal.WithLabelValues("POST", "/receipts/process", "400").Inc()
			respondWithError(w, http.StatusBadRequest, "The receipt is invalid.")
			return
		}
		httpRequestsTotal.WithLabelValues("POST", "/receipts/process", "503").Inc()
		respondWithError(w, http.StatusServiceUnavailable, "Error processing receipt.")
		return
	}

	httpRequestsTotal.WithLabelValues("POST", "/receipts/process", "200").Inc()
	respondWithJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) GetPointsHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	pts, err := h.service.Points(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpRequestsTotal.WithLabelValues("GET", "/receipts/{id}/points", "404").Inc()
			respondWithError(w, http.StatusNotFound, "No receipt found for that ID.")
			return
		}
		httpRequestsTotal.WithLabelValues("GET", "/receipts/{id}/points", "503").Inc()
		respondWithError(w, http.StatusServiceUnavailable, "Error retrieving receipt points.")
		return
	}

	httpRequestsTotal.WithLabelValues("GET", "/receipts/{id}/points", "200").Inc()
	respondWithJSON(w, http.StatusOK, map[string]int64{"points": pts})
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}
