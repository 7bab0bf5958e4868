package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/parpy69/pos-backend/internal/customer/usecase/command"
	"github.com/parpy69/pos-backend/internal/customer/usecase/query"
	"github.com/parpy69/pos-backend/pkg/apperrors"
	"github.com/parpy69/pos-backend/pkg/logger"
)

// CustomerHandler handles HTTP requests for customers using CQRS pattern
type CustomerHandler struct {
	createHandler *command.CreateCustomerHandler
	updateHandler *command.UpdateCustomerHandler
	deleteHandler *command.DeleteCustomerHandler

	getHandler  *query.GetCustomerHandler
	listHandler *query.ListCustomersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	createHandler *command.CreateCustomerHandler,
	updateHandler *command.UpdateCustomerHandler,
	deleteHandler *command.DeleteCustomerHandler,
	getHandler *query.GetCustomerHandler,
	listHandler *query.ListCustomersHandler,
) *CustomerHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_customer_requests_total",
			Help: "Total number of requests to customer endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pos_customer_request_duration_seconds",
			Help:    "Duration of customer requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CustomerHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
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
func (h *CustomerHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/customers", h.metricsMiddleware("/api/customers", h.ListCustomers)).Methods("GET")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", h.GetCustomer)).Methods("GET")
	router.HandleFunc("/api/customers", h.metricsMiddleware("/api/customers", h.CreateCustomer)).Methods("POST")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", h.UpdateCustomer)).Methods("PUT")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", h.DeleteCustomer)).Methods("DELETE")
}

// ListCustomers handles GET /api/customers with optional search and
// cardNumber filters
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListCustomersQuery{
		Search:     r.URL.Query().Get("search"),
		CardNumber: r.URL.Query().Get("cardNumber"),
		Limit:      limit,
		Offset:     offset,
	}

	customers, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list customers")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list customers",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    customers,
	})
}

// GetCustomer handles GET /api/customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid customer ID",
		})
		return
	}

	customer, err := h.getHandler.Handle(query.GetCustomerQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Customer not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    customer,
	})
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name"`
		CardNumber string `json:"card_number"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	customer, err := h.createHandler.Handle(command.CreateCustomerCommand{
		Name:       req.Name,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create customer")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Customer created successfully",
		Data:    customer,
	})
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid customer ID",
		})
		return
	}

	var req struct {
		Name          *string  `json:"name"`
		CardNumber    *string  `json:"card_number"`
		LoyaltyPoints *float64 `json:"loyalty_points"`
		TotalSpent    *float64 `json:"total_spent"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	customer, err := h.updateHandler.Handle(command.UpdateCustomerCommand{
		ID:            uint(id),
		Name:          req.Name,
		CardNumber:    req.CardNumber,
		LoyaltyPoints: req.LoyaltyPoints,
		TotalSpent:    req.TotalSpent,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update customer")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer updated successfully",
		Data:    customer,
	})
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid customer ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteCustomerCommand{ID: uint(id)}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete customer")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer deleted successfully",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
