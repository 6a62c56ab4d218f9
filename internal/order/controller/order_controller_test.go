package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orderfellow/internal/dto"
	apperrors "orderfellow/internal/errors"
)

type mockWebhookUseCase struct {
	CreateOrderFunc        func(ctx context.Context, req dto.CreateOrderRequest) (string, error)
	RecordStatusUpdateFunc func(ctx context.Context, req dto.StatusUpdateRequest) error
}

func (m *mockWebhookUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (string, error) {
	return m.CreateOrderFunc(ctx, req)
}

func (m *mockWebhookUseCase) RecordStatusUpdate(ctx context.Context, req dto.StatusUpdateRequest) error {
	return m.RecordStatusUpdateFunc(ctx, req)
}

type mockLookupUseCase struct {
	GetOrderFunc func(ctx context.Context, externalOrderID string) (*dto.OrderResponse, error)
}

func (m *mockLookupUseCase) GetOrder(ctx context.Context, externalOrderID string) (*dto.OrderResponse, error) {
	return m.GetOrderFunc(ctx, externalOrderID)
}

func TestCreateOrder_Created(t *testing.T) {
	webhook := &mockWebhookUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (string, error) {
			return req.ExternalOrderID, nil
		},
	}
	c := NewController(webhook, &mockLookupUseCase{}, zap.NewNop())

	body := `{"external_order_id":"ext-1","customer_name":"John","customer_email":"j@x.com","initial_status":"PENDING","business_email":"a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	c.CreateOrder(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Order received and tracking activated","order_id":"ext-1"}`, rec.Body.String())
}

func TestCreateOrder_InvalidJSON(t *testing.T) {
	c := NewController(&mockWebhookUseCase{}, &mockLookupUseCase{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	c.CreateOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", apperrors.NewValidationError("Missing required order fields"), http.StatusBadRequest},
		{"forbidden", apperrors.NewForbiddenError("Company KYC not approved"), http.StatusForbidden},
		{"not found", apperrors.NewNotFoundError("Company not found"), http.StatusNotFound},
		{"conflict", apperrors.NewConflictError("Order already exists"), http.StatusConflict},
		{"unexpected", errDatabaseGone, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			webhook := &mockWebhookUseCase{
				CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (string, error) {
					return "", tc.err
				},
			}
			c := NewController(webhook, &mockLookupUseCase{}, zap.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()

			c.CreateOrder(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusInternalServerError {
				assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
			}
		})
	}
}

var errDatabaseGone = errors.New("database gone")

func TestRecordStatusUpdate_OK(t *testing.T) {
	webhook := &mockWebhookUseCase{
		RecordStatusUpdateFunc: func(ctx context.Context, req dto.StatusUpdateRequest) error {
			return nil
		},
	}
	c := NewController(webhook, &mockLookupUseCase{}, zap.NewNop())

	body := `{"external_order_id":"ext-1","new_status":"DELIVERED"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/status-updates", strings.NewReader(body))
	rec := httptest.NewRecorder()

	c.RecordStatusUpdate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Order status updated","order_id":"ext-1","new_status":"DELIVERED"}`, rec.Body.String())
}

func TestRecordStatusUpdate_RepeatedStatus(t *testing.T) {
	webhook := &mockWebhookUseCase{
		RecordStatusUpdateFunc: func(ctx context.Context, req dto.StatusUpdateRequest) error {
			return apperrors.NewValidationError("Order already in this status")
		},
	}
	c := NewController(webhook, &mockLookupUseCase{}, zap.NewNop())

	body := `{"external_order_id":"ext-1","new_status":"IN_TRANSIT"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/status-updates", strings.NewReader(body))
	rec := httptest.NewRecorder()

	c.RecordStatusUpdate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Order already in this status"}`, rec.Body.String())
}

func TestGetOrder_OK(t *testing.T) {
	lookup := &mockLookupUseCase{
		GetOrderFunc: func(ctx context.Context, externalOrderID string) (*dto.OrderResponse, error) {
			return &dto.OrderResponse{
				OrderID:       externalOrderID,
				Customer:      dto.CustomerResponse{Name: "John", Email: "j@x.com"},
				CurrentStatus: "PENDING",
				StatusHistory: []dto.StatusEventResponse{},
			}, nil
		},
	}
	c := NewController(&mockWebhookUseCase{}, lookup, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/orders/ext-1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("external_order_id", "ext-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	c.GetOrder(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_id":"ext-1"`)
}

func TestGetOrder_NotFound(t *testing.T) {
	lookup := &mockLookupUseCase{
		GetOrderFunc: func(ctx context.Context, externalOrderID string) (*dto.OrderResponse, error) {
			return nil, apperrors.NewNotFoundError("Order not found")
		},
	}
	c := NewController(&mockWebhookUseCase{}, lookup, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/orders/ext-404", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("external_order_id", "ext-404")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	c.GetOrder(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Order not found"}`, rec.Body.String())
}
