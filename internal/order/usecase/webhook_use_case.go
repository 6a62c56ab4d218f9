package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"orderfellow/internal/domain"
	"orderfellow/internal/dto"
	apperrors "orderfellow/internal/errors"
)

const trackingActivatedNote = "Tracking activated"

type CompanyRepository interface {
	FindByEmail(ctx context.Context, businessEmail string) (*domain.Company, error)
}

type OrderRepository interface {
	FindByExternalID(ctx context.Context, externalOrderID string) (*domain.Order, error)
}

type StatusEventRepository interface {
	ListByOrderID(ctx context.Context, orderID uint) ([]domain.StatusEvent, error)
}

type Ledger interface {
	CreateOrder(ctx context.Context, order domain.Order, openingEvent domain.StatusEvent) (uint, error)
	AppendStatus(ctx context.Context, orderID uint, event domain.StatusEvent) error
}

type OrderNotifier interface {
	SendTrackingActivatedEmail(email string, orderID string)
	SendStatusUpdateEmail(email string, orderID string, newStatus string)
}

type WebhookUseCase struct {
	companyRepo CompanyRepository
	orderRepo   OrderRepository
	ledger      Ledger
	notifier    OrderNotifier
	logger      *zap.Logger
	now         func() time.Time
}

func NewWebhookUseCase(companyRepo CompanyRepository, orderRepo OrderRepository, ledger Ledger, notifier OrderNotifier, logger *zap.Logger) *WebhookUseCase {
	return &WebhookUseCase{
		companyRepo: companyRepo,
		orderRepo:   orderRepo,
		ledger:      ledger,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *WebhookUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (string, error) {
	var details []apperrors.ValidationDetail
	if req.ExternalOrderID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "external_order_id", Message: "external_order_id is required"})
	}
	if req.CustomerName == "" {
		details = append(details, apperrors.ValidationDetail{Field: "customer_name", Message: "customer_name is required"})
	}
	if req.CustomerEmail == "" {
		details = append(details, apperrors.ValidationDetail{Field: "customer_email", Message: "customer_email is required"})
	}
	if req.InitialStatus == "" {
		details = append(details, apperrors.ValidationDetail{Field: "initial_status", Message: "initial_status is required"})
	}
	if req.BusinessEmail == "" {
		details = append(details, apperrors.ValidationDetail{Field: "business_email", Message: "business_email is required"})
	}
	if len(details) > 0 {
		return "", apperrors.NewValidationError("Missing required order fields", details...)
	}

	if !domain.IsValidOrderStatus(req.InitialStatus) {
		return "", apperrors.NewValidationError("Invalid status value")
	}

	company, err := uc.companyRepo.FindByEmail(ctx, req.BusinessEmail)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return "", apperrors.NewNotFoundError("Company not found")
		}
		return "", err
	}

	if !company.IsKycApproved() {
		return "", apperrors.NewForbiddenError("Company KYC not approved")
	}

	_, err = uc.orderRepo.FindByExternalID(ctx, req.ExternalOrderID)
	if err == nil {
		return "", apperrors.NewConflictError("Order already exists")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		return "", err
	}

	order := domain.Order{
		ExternalOrderID: req.ExternalOrderID,
		CompanyID:       company.ID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: optional(req.DeliveryAddress),
		ItemSummary:     optional(req.ItemSummary),
		CurrentStatus:   req.InitialStatus,
	}

	note := trackingActivatedNote
	openingEvent := domain.StatusEvent{
		Status:    req.InitialStatus,
		Note:      &note,
		Timestamp: uc.now(),
	}

	if _, err := uc.ledger.CreateOrder(ctx, order, openingEvent); err != nil {
		return "", err
	}

	uc.notifier.SendTrackingActivatedEmail(req.CustomerEmail, req.ExternalOrderID)

	return req.ExternalOrderID, nil
}

func (uc *WebhookUseCase) RecordStatusUpdate(ctx context.Context, req dto.StatusUpdateRequest) error {
	if req.ExternalOrderID == "" || req.NewStatus == "" {
		return apperrors.NewValidationError("Missing order ID or status")
	}

	if !domain.IsValidOrderStatus(req.NewStatus) {
		return apperrors.NewValidationError("Invalid status value")
	}

	order, err := uc.orderRepo.FindByExternalID(ctx, req.ExternalOrderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return apperrors.NewNotFoundError("Order not found")
		}
		return err
	}

	// Sole transition rule: any status may move to any different valid
	// status, repeats are rejected.
	if order.CurrentStatus == req.NewStatus {
		return apperrors.NewValidationError("Order already in this status")
	}

	// Caller-supplied timestamps are trusted verbatim.
	eventTime := uc.now()
	if req.Timestamp != nil {
		eventTime = *req.Timestamp
	}

	event := domain.StatusEvent{
		Status:    req.NewStatus,
		Note:      optional(req.Note),
		Timestamp: eventTime,
	}

	if err := uc.ledger.AppendStatus(ctx, order.ID, event); err != nil {
		return err
	}

	uc.notifier.SendStatusUpdateEmail(order.CustomerEmail, req.ExternalOrderID, req.NewStatus)

	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
