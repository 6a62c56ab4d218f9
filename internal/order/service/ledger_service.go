package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"orderfellow/internal/domain"
)

const txTimeout = 5 * time.Second

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderWriter interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	UpdateCurrentStatus(ctx context.Context, tx *sql.Tx, id uint, status string) error
}

type StatusEventWriter interface {
	Insert(ctx context.Context, tx *sql.Tx, event domain.StatusEvent) (uint, error)
}

// LedgerService owns the two multi-statement write sequences of the
// order ledger. Each runs in a single transaction so the denormalized
// current_status can never be observed without its matching event.
type LedgerService struct {
	db        TransactionManager
	orderRepo OrderWriter
	eventRepo StatusEventWriter
	logger    *zap.Logger
}

func NewLedgerService(db TransactionManager, orderRepo OrderWriter, eventRepo StatusEventWriter, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		db:        db,
		orderRepo: orderRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// CreateOrder inserts the order row and its opening status event
// atomically, returning the internal order id.
func (s *LedgerService) CreateOrder(ctx context.Context, order domain.Order, openingEvent domain.StatusEvent) (uint, error) {
	txCtx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return 0, err
	}
	// Rollback is a no-op once the transaction is committed.
	defer tx.Rollback()

	orderID, err := s.orderRepo.Insert(txCtx, tx, order)
	if err != nil {
		return 0, err
	}

	openingEvent.OrderID = orderID
	if _, err := s.eventRepo.Insert(txCtx, tx, openingEvent); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Info("order created",
		zap.Uint("orderId", orderID),
		zap.String("externalOrderId", order.ExternalOrderID),
		zap.String("status", order.CurrentStatus))

	return orderID, nil
}

// AppendStatus appends a ledger event and refreshes the denormalized
// current_status mirror atomically.
func (s *LedgerService) AppendStatus(ctx context.Context, orderID uint, event domain.StatusEvent) error {
	txCtx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	event.OrderID = orderID
	if _, err := s.eventRepo.Insert(txCtx, tx, event); err != nil {
		return err
	}

	if err := s.orderRepo.UpdateCurrentStatus(txCtx, tx, orderID, event.Status); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("status event appended",
		zap.Uint("orderId", orderID),
		zap.String("status", event.Status))

	return nil
}
