package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderfellow/internal/dto"
	apperrors "orderfellow/internal/errors"
)

type WebhookUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (string, error)
	RecordStatusUpdate(ctx context.Context, req dto.StatusUpdateRequest) error
}

type LookupUseCase interface {
	GetOrder(ctx context.Context, externalOrderID string) (*dto.OrderResponse, error)
}

type Controller struct {
	webhook WebhookUseCase
	lookup  LookupUseCase
	logger  *zap.Logger
}

func NewController(webhook WebhookUseCase, lookup LookupUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		webhook: webhook,
		lookup:  lookup,
		logger:  logger,
	}
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	orderID, err := c.webhook.CreateOrder(r.Context(), req)
	if err != nil {
		c.writeError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		Message: "Order received and tracking activated",
		OrderID: orderID,
	})
}

func (c *Controller) RecordStatusUpdate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	if err := c.webhook.RecordStatusUpdate(r.Context(), req); err != nil {
		c.writeError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.StatusUpdateResponse{
		Message:   "Order status updated",
		OrderID:   req.ExternalOrderID,
		NewStatus: req.NewStatus,
	})
}

func (c *Controller) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	externalOrderID := chi.URLParam(r, "external_order_id")

	order, err := c.lookup.GetOrder(r.Context(), externalOrderID)
	if err != nil {
		c.writeError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *Controller) writeError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Details: ve.Details})
		return
	}
	if _, ok := apperrors.IsForbiddenError(err); ok {
		c.writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
