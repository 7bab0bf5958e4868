package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/parpy69/pos-backend/internal/supplier/usecase/command"
	"github.com/parpy69/pos-backend/internal/supplier/usecase/query"
	"github.com/parpy69/pos-backend/pkg/apperrors"
	"github.com/parpy69/pos-backend/pkg/logger"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
)

// SupplierHandler handles HTTP requests for suppliers, supplier products and
// purchase orders using CQRS pattern
type SupplierHandler struct {
	// Command handlers
	createHandler      *command.CreateSupplierHandler
	updateHandler      *command.UpdateSupplierHandler
	deleteHandler      *command.DeleteSupplierHandler
	upsertLinkHandler  *command.UpsertSupplierProductHandler
	deleteLinkHandler  *command.DeleteSupplierProductHandler
	createOrderHandler *command.CreatePurchaseOrderHandler
	orderStatusHandler *command.UpdateOrderStatusHandler

	// Query handlers
	getSupplierHandler *query.GetSupplierHandler
	listHandler        *query.ListSuppliersHandler
	listLinksHandler   *query.ListSupplierProductsHandler
	listOrdersHandler  *query.ListPurchaseOrdersHandler
	documentHandler    *query.PurchaseOrderDocumentHandler

	repo domain.SupplierRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalSuppliers prometheus.Gauge
}

// NewSupplierHandler creates a new supplier handler using dependency injection
func NewSupplierHandler(
	createHandler *command.CreateSupplierHandler,
	updateHandler *command.UpdateSupplierHandler,
	deleteHandler *command.DeleteSupplierHandler,
	upsertLinkHandler *command.UpsertSupplierProductHandler,
	deleteLinkHandler *command.DeleteSupplierProductHandler,
	createOrderHandler *command.CreatePurchaseOrderHandler,
	orderStatusHandler *command.UpdateOrderStatusHandler,
	getSupplierHandler *query.GetSupplierHandler,
	listHandler *query.ListSuppliersHandler,
	listLinksHandler *query.ListSupplierProductsHandler,
	listOrdersHandler *query.ListPurchaseOrdersHandler,
	documentHandler *query.PurchaseOrderDocumentHandler,
	repo domain.SupplierRepository,
) *SupplierHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_supplier_requests_total",
			Help: "Total number of requests to supplier endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pos_supplier_request_duration_seconds",
			Help:    "Duration of supplier requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalSuppliers := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pos_total_suppliers",
			Help: "Total number of suppliers",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalSuppliers)

	return &SupplierHandler{
		createHandler:      createHandler,
		updateHandler:      updateHandler,
		deleteHandler:      deleteHandler,
		upsertLinkHandler:  upsertLinkHandler,
		deleteLinkHandler:  deleteLinkHandler,
		createOrderHandler: createOrderHandler,
		orderStatusHandler: orderStatusHandler,
		getSupplierHandler: getSupplierHandler,
		listHandler:        listHandler,
		listLinksHandler:   listLinksHandler,
		listOrdersHandler:  listOrdersHandler,
		documentHandler:    documentHandler,
		repo:               repo,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		totalSuppliers:     totalSuppliers,
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
func (h *SupplierHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *SupplierHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/suppliers", h.metricsMiddleware("/api/suppliers", h.ListSuppliers)).Methods("GET")
	router.HandleFunc("/api/suppliers", h.metricsMiddleware("/api/suppliers", h.CreateSupplier)).Methods("POST")
	router.HandleFunc("/api/suppliers/{id}", h.metricsMiddleware("/api/suppliers/{id}", h.GetSupplier)).Methods("GET")
	router.HandleFunc("/api/suppliers/{id}", h.metricsMiddleware("/api/suppliers/{id}", h.UpdateSupplier)).Methods("PUT")
	router.HandleFunc("/api/suppliers/{id}", h.metricsMiddleware("/api/suppliers/{id}", h.DeleteSupplier)).Methods("DELETE")

	router.HandleFunc("/api/suppliers/{id}/products", h.metricsMiddleware("/api/suppliers/{id}/products", h.ListSupplierProducts)).Methods("GET")
	router.HandleFunc("/api/suppliers/{id}/products", h.metricsMiddleware("/api/suppliers/{id}/products", h.UpsertSupplierProduct)).Methods("POST")
	router.HandleFunc("/api/suppliers/{id}/products/{productId}", h.metricsMiddleware("/api/suppliers/{id}/products/{productId}", h.DeleteSupplierProduct)).Methods("DELETE")

	router.HandleFunc("/api/purchase-orders", h.metricsMiddleware("/api/purchase-orders", h.ListPurchaseOrders)).Methods("GET")
	router.HandleFunc("/api/purchase-orders", h.metricsMiddleware("/api/purchase-orders", h.CreatePurchaseOrder)).Methods("POST")
	router.HandleFunc("/api/purchase-orders/{id}/status", h.metricsMiddleware("/api/purchase-orders/{id}/status", h.UpdateOrderStatus)).Methods("PUT")
	router.HandleFunc("/api/purchase-orders/{id}/document", h.metricsMiddleware("/api/purchase-orders/{id}/document", h.PurchaseOrderDocument)).Methods("GET")
}

type supplierRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	ContactName string `json:"contact_name"`
}

// CreateSupplier handles POST /api/suppliers
func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateSupplierCommand{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		ContactName: req.ContactName,
	}

	supplier, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create supplier")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateSuppliersMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Supplier created successfully",
		Data:    supplier,
	})
}

// ListSuppliers handles GET /api/suppliers
func (h *SupplierHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	suppliers, err := h.listHandler.Handle(query.ListSuppliersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list suppliers")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list suppliers",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    suppliers,
	})
}

// GetSupplier handles GET /api/suppliers/{id}
func (h *SupplierHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	supplier, err := h.getSupplierHandler.Handle(query.GetSupplierQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Supplier not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    supplier,
	})
}

// UpdateSupplier handles PUT /api/suppliers/{id}
func (h *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req supplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateSupplierCommand{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		ContactName: req.ContactName,
	}

	supplier, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update supplier")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supplier updated successfully",
		Data:    supplier,
	})
}

// DeleteSupplier handles DELETE /api/suppliers/{id}
func (h *SupplierHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteSupplierCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete supplier")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateSuppliersMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supplier deleted successfully",
	})
}

type supplierProductRequest struct {
	ProductID uint    `json:"product_id"`
	Price     float64 `json:"price"`
}

// UpsertSupplierProduct handles POST /api/suppliers/{id}/products
func (h *SupplierHandler) UpsertSupplierProduct(w http.ResponseWriter, r *http.Request) {
	supplierID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req supplierProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpsertSupplierProductCommand{
		SupplierID: supplierID,
		ProductID:  req.ProductID,
		Price:      req.Price,
	}

	link, err := h.upsertLinkHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to save supplier product")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supplier product saved successfully",
		Data:    link,
	})
}

// ListSupplierProducts handles GET /api/suppliers/{id}/products
func (h *SupplierHandler) ListSupplierProducts(w http.ResponseWriter, r *http.Request) {
	supplierID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	q := query.ListSupplierProductsQuery{SupplierID: supplierID}
	if raw := r.URL.Query().Get("productId"); raw != "" {
		productID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Invalid product ID",
			})
			return
		}
		id := uint(productID)
		q.ProductID = &id
	}

	links, err := h.listLinksHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list supplier products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list supplier products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    links,
	})
}

// DeleteSupplierProduct handles DELETE /api/suppliers/{id}/products/{productId}
func (h *SupplierHandler) DeleteSupplierProduct(w http.ResponseWriter, r *http.Request) {
	supplierID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	cmd := command.DeleteSupplierProductCommand{SupplierID: supplierID, ProductID: productID}
	if err := h.deleteLinkHandler.Handle(cmd); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete supplier product")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supplier product deleted successfully",
	})
}

type purchaseOrderRequest struct {
	SupplierID          uint               `json:"supplier_id"`
	Items               []domain.OrderItem `json:"items"`
	Notes               string             `json:"notes"`
	ExpectedArrivalDate *time.Time         `json:"expected_arrival_date"`
}

// CreatePurchaseOrder handles POST /api/purchase-orders
func (h *SupplierHandler) CreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req purchaseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreatePurchaseOrderCommand{
		SupplierID:          req.SupplierID,
		Items:               req.Items,
		Notes:               req.Notes,
		ExpectedArrivalDate: req.ExpectedArrivalDate,
	}

	order, err := h.createOrderHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create purchase order")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Purchase order created successfully",
		Data:    order,
	})
}

// ListPurchaseOrders handles GET /api/purchase-orders
func (h *SupplierHandler) ListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.listOrdersHandler.Handle(query.ListPurchaseOrdersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list purchase orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list purchase orders",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PUT /api/purchase-orders/{id}/status
func (h *SupplierHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	order, err := h.orderStatusHandler.Handle(command.UpdateOrderStatusCommand{ID: id, Status: req.Status})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update order status")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order status updated successfully",
		Data:    order,
	})
}

// PurchaseOrderDocument handles GET /api/purchase-orders/{id}/document
func (h *SupplierHandler) PurchaseOrderDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	doc, err := h.documentHandler.Handle(query.PurchaseOrderDocumentQuery{ID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to build purchase order document")
		respondJSON(w, apperrors.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderDocument(w, doc); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to render purchase order document")
	}
}

// pathID parses the named numeric path variable, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}

// updateSuppliersMetric updates the total suppliers gauge
func (h *SupplierHandler) updateSuppliersMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalSuppliers.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
