package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/parpy69/pos-backend/internal/settings/usecase/command"
	"github.com/parpy69/pos-backend/internal/settings/usecase/query"
	"github.com/parpy69/pos-backend/pkg/apperrors"
	"github.com/parpy69/pos-backend/pkg/logger"
)

// SettingsHandler handles HTTP requests for the settings singleton
type SettingsHandler struct {
	getHandler    *query.GetSettingsHandler
	updateHandler *command.UpdateSettingsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(
	getHandler *query.GetSettingsHandler,
	updateHandler *command.UpdateSettingsHandler,
) *SettingsHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_settings_requests_total",
			Help: "Total number of requests to settings endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pos_settings_request_duration_seconds",
			Help:    "Duration of settings requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &SettingsHandler{
		getHandler:     getHandler,
		updateHandler:  updateHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *SettingsHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *SettingsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/settings", h.metricsMiddleware("/api/settings", h.GetSettings)).Methods("GET")
	router.HandleFunc("/api/settings", h.metricsMiddleware("/api/settings", h.UpdateSettings)).Methods("PUT")
}

// GetSettings handles GET /api/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.getHandler.Handle(query.GetSettingsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get settings")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   "Failed to get settings",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    settings,
	})
}

// UpdateSettings handles PUT /api/settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LowStockThreshold      *int     `json:"low_stock_threshold"`
		ModerateStockThreshold *int     `json:"moderate_stock_threshold"`
		HighStockThreshold     *int     `json:"high_stock_threshold"`
		LoyaltyPointsEnabled   *bool    `json:"loyalty_points_enabled"`
		LoyaltyPointsPerDollar *float64 `json:"loyalty_points_per_dollar"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateSettingsCommand{
		LowStockThreshold:      req.LowStockThreshold,
		ModerateStockThreshold: req.ModerateStockThreshold,
		HighStockThreshold:     req.HighStockThreshold,
		LoyaltyPointsEnabled:   req.LoyaltyPointsEnabled,
		LoyaltyPointsPerDollar: req.LoyaltyPointsPerDollar,
	}

	settings, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update settings")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Settings updated successfully",
		Data:    settings,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
