package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/parpy69/pos-backend/internal/sale/usecase/command"
	"github.com/parpy69/pos-backend/internal/sale/usecase/query"
	"github.com/parpy69/pos-backend/pkg/apperrors"
	"github.com/parpy69/pos-backend/pkg/logger"

	"github.com/parpy69/pos-backend/internal/sale/domain"
)

// SaleHandler handles HTTP requests for sales using CQRS pattern
type SaleHandler struct {
	// Command handlers
	recordHandler *command.RecordSaleHandler

	// Query handlers
	analyticsHandler       *query.SalesAnalyticsHandler
	recommendationsHandler *query.ThresholdRecommendationsHandler

	repo domain.SaleRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalSales     prometheus.Gauge
	totalRevenue   prometheus.Counter
}

// NewSaleHandler creates a new sale handler using dependency injection
func NewSaleHandler(
	recordHandler *command.RecordSaleHandler,
	analyticsHandler *query.SalesAnalyticsHandler,
	recommendationsHandler *query.ThresholdRecommendationsHandler,
	repo domain.SaleRepository,
) *SaleHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_sale_requests_total",
			Help: "Total number of requests to sale endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pos_sale_request_duration_seconds",
			Help:    "Duration of sale requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalSales := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pos_total_sales",
			Help: "Total number of settled sales",
		},
	)

	totalRevenue := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_revenue_total",
			Help: "Accumulated revenue from settled sales",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalSales)
	prometheus.MustRegister(totalRevenue)

	return &SaleHandler{
		recordHandler:          recordHandler,
		analyticsHandler:       analyticsHandler,
		recommendationsHandler: recommendationsHandler,
		repo:                   repo,
		requestCounter:         requestCounter,
		requestLatency:         requestLatency,
		totalSales:             totalSales,
		totalRevenue:           totalRevenue,
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
func (h *SaleHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *SaleHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", h.RecordSale)).Methods("POST")
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", h.SalesAnalytics)).Methods("GET")
	router.HandleFunc("/api/analytics/recommendations", h.metricsMiddleware("/api/analytics/recommendations", h.ThresholdRecommendations)).Methods("GET")
}

type saleRequest struct {
	ProductID          uint     `json:"product_id"`
	Quantity           int      `json:"quantity"`
	CustomerID         *uint    `json:"customer_id"`
	CustomerName       string   `json:"customer_name"`
	CustomerCardNumber string   `json:"customer_card_number"`
	TotalAmount        *float64 `json:"total_amount"`
}

// RecordSale handles POST /api/sales
func (h *SaleHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.RecordSaleCommand{
		ProductID:          req.ProductID,
		Quantity:           req.Quantity,
		CustomerID:         req.CustomerID,
		CustomerName:       req.CustomerName,
		CustomerCardNumber: req.CustomerCardNumber,
		TotalAmount:        req.TotalAmount,
	}

	sale, err := h.recordHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", req.ProductID).Msg("Failed to record sale")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateSalesMetrics(sale)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Sale recorded successfully",
		Data:    sale,
	})
}

// SalesAnalytics handles GET /api/sales
func (h *SaleHandler) SalesAnalytics(w http.ResponseWriter, r *http.Request) {
	q := query.SalesAnalyticsQuery{
		Period: r.URL.Query().Get("period"),
	}

	analytics, err := h.analyticsHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute sales analytics")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to compute sales analytics",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    analytics,
	})
}

// ThresholdRecommendations handles GET /api/analytics/recommendations
func (h *SaleHandler) ThresholdRecommendations(w http.ResponseWriter, r *http.Request) {
	recommendations, err := h.recommendationsHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute threshold recommendations")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to compute threshold recommendations",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    recommendations,
	})
}

// updateSalesMetrics updates the sales gauge and revenue counter
func (h *SaleHandler) updateSalesMetrics(sale *domain.Sale) {
	h.totalRevenue.Add(sale.Total)
	count, err := h.repo.Count()
	if err == nil {
		h.totalSales.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
