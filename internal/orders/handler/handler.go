package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lanchonete-pedidos/internal/orders/core"
	"lanchonete-pedidos/internal/orders/service"
	"lanchonete-pedidos/internal/orders/validation"
	"lanchonete-pedidos/pkg/logger"
	"lanchonete-pedidos/pkg/models"
)

const healthCheckTimeout = 5 * time.Second

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type OrderHandler struct {
	service   *service.OrderService
	validator *validation.OrderValidator
	pinger    Pinger
	logger    *logger.Logger
}

func NewOrderHandler(service *service.OrderService, pinger Pinger, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		service:   service,
		validator: validation.NewOrderValidator(),
		pinger:    pinger,
		logger:    logger,
	}
}

// NewRouter wires the order endpoints and the health check.
func NewRouter(h *OrderHandler, log *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(RequestLogger(log))

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	r.Get("/health", h.Health)

	return r
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r.Context())

	req, ok := h.decodeOrder(w, r, requestID)
	if !ok {
		return
	}

	order, err := h.service.Create(r.Context(), req, requestID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	jsonResponse(w, http.StatusCreated, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r.Context())

	orders, err := h.service.List(r.Context(), requestID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	jsonResponse(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r.Context())

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.service.Get(r.Context(), id, requestID)
	if err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			jsonError(w, http.StatusNotFound, "Order not found")
			return
		}
		jsonError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	jsonResponse(w, http.StatusOK, order)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r.Context())

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeOrder(w, r, requestID)
	if !ok {
		return
	}

	order, err := h.service.Update(r.Context(), id, req, requestID)
	if err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			jsonError(w, http.StatusNotFound, "Order not found")
			return
		}
		jsonError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	jsonResponse(w, http.StatusOK, order)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r.Context())

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, requestID); err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			jsonError(w, http.StatusNotFound, "Order not found")
			return
		}
		jsonError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Error(requestIDFrom(r.Context()), "health_check_failed", "Database unreachable", err)
		jsonError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *OrderHandler) decodeOrder(w http.ResponseWriter, r *http.Request, requestID string) (*models.OrderRequest, bool) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error(requestID, "validation_failed", "Invalid JSON payload", err)
		jsonError(w, http.StatusBadRequest, "Invalid JSON payload")
		return nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		h.logger.Error(requestID, "validation_failed", "Validation failed", err)
		jsonError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return &req, true
}

func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return 0, false
	}
	return id, true
}
