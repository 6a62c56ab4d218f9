package usecase

import (
	"context"

	"go.uber.org/zap"

	"orderfellow/internal/dto"
	apperrors "orderfellow/internal/errors"
)

type LookupUseCase struct {
	orderRepo OrderRepository
	eventRepo StatusEventRepository
	logger    *zap.Logger
}

func NewLookupUseCase(orderRepo OrderRepository, eventRepo StatusEventRepository, logger *zap.Logger) *LookupUseCase {
	return &LookupUseCase{
		orderRepo: orderRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (uc *LookupUseCase) GetOrder(ctx context.Context, externalOrderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.FindByExternalID(ctx, externalOrderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("Order not found")
		}
		return nil, err
	}

	events, err := uc.eventRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	history := make([]dto.StatusEventResponse, len(events))
	for i, event := range events {
		history[i] = dto.StatusEventResponse{
			Status:    event.Status,
			Note:      event.Note,
			Timestamp: event.Timestamp,
		}
	}

	return &dto.OrderResponse{
		OrderID: order.ExternalOrderID,
		Customer: dto.CustomerResponse{
			Name:  order.CustomerName,
			Email: order.CustomerEmail,
		},
		DeliveryAddress: order.DeliveryAddress,
		ItemSummary:     order.ItemSummary,
		CurrentStatus:   order.CurrentStatus,
		CreatedAt:       order.CreatedAt,
		StatusHistory:   history,
	}, nil
}
