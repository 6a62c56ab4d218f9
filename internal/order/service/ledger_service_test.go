package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orderfellow/internal/domain"
	apperrors "orderfellow/internal/errors"
	"orderfellow/internal/order/repository"
	"orderfellow/internal/testutil"
)

func newTestLedger(t *testing.T) (*LedgerService, *repository.MySQLOrderRepository, *repository.MySQLStatusEventRepository, func()) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)

	orderRepo := repository.NewMySQLOrderRepository(db)
	eventRepo := repository.NewMySQLStatusEventRepository(db)
	ledger := NewLedgerService(db, orderRepo, eventRepo, zap.NewNop())

	return ledger, orderRepo, eventRepo, func() { testutil.CleanupTestDB(t, db) }
}

func TestLedgerService_CreateOrder(t *testing.T) {
	ledger, orderRepo, eventRepo, cleanup := newTestLedger(t)
	defer cleanup()

	note := "Tracking activated"
	orderID, err := ledger.CreateOrder(context.Background(),
		domain.Order{
			ExternalOrderID: "ext-1",
			CompanyID:       1,
			CustomerName:    "John Doe",
			CustomerEmail:   "john@example.com",
			CurrentStatus:   domain.OrderStatusPending,
		},
		domain.StatusEvent{
			Status:    domain.OrderStatusPending,
			Note:      &note,
			Timestamp: time.Now(),
		})
	require.NoError(t, err)

	order, err := orderRepo.FindByExternalID(context.Background(), "ext-1")
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.CurrentStatus)

	events, err := eventRepo.ListByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.OrderStatusPending, events[0].Status)
}

// A duplicate external id rolls the whole transaction back: no orphan
// status event may remain.
func TestLedgerService_CreateOrder_DuplicateRollsBack(t *testing.T) {
	ledger, _, eventRepo, cleanup := newTestLedger(t)
	defer cleanup()

	order := domain.Order{
		ExternalOrderID: "ext-1",
		CompanyID:       1,
		CustomerName:    "John Doe",
		CustomerEmail:   "john@example.com",
		CurrentStatus:   domain.OrderStatusPending,
	}
	event := domain.StatusEvent{Status: domain.OrderStatusPending, Timestamp: time.Now()}

	firstID, err := ledger.CreateOrder(context.Background(), order, event)
	require.NoError(t, err)

	_, err = ledger.CreateOrder(context.Background(), order, event)
	_, ok := apperrors.IsConflictError(err)
	require.True(t, ok)

	events, err := eventRepo.ListByOrderID(context.Background(), firstID)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestLedgerService_AppendStatus(t *testing.T) {
	ledger, orderRepo, eventRepo, cleanup := newTestLedger(t)
	defer cleanup()

	orderID, err := ledger.CreateOrder(context.Background(),
		domain.Order{
			ExternalOrderID: "ext-1",
			CompanyID:       1,
			CustomerName:    "John Doe",
			CustomerEmail:   "john@example.com",
			CurrentStatus:   domain.OrderStatusPending,
		},
		domain.StatusEvent{Status: domain.OrderStatusPending, Timestamp: time.Now()})
	require.NoError(t, err)

	err = ledger.AppendStatus(context.Background(), orderID, domain.StatusEvent{
		Status:    domain.OrderStatusDelivered,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	// current_status mirrors the latest appended event.
	order, err := orderRepo.FindByExternalID(context.Background(), "ext-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, order.CurrentStatus)

	events, err := eventRepo.ListByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.OrderStatusPending, events[0].Status)
	assert.Equal(t, domain.OrderStatusDelivered, events[1].Status)
}

func TestLedgerService_AppendStatus_MissingOrderRollsBack(t *testing.T) {
	ledger, _, eventRepo, cleanup := newTestLedger(t)
	defer cleanup()

	err := ledger.AppendStatus(context.Background(), 9999, domain.StatusEvent{
		Status:    domain.OrderStatusDelivered,
		Timestamp: time.Now(),
	})

	_, ok := apperrors.IsNotFoundError(err)
	require.True(t, ok)

	events, listErr := eventRepo.ListByOrderID(context.Background(), 9999)
	require.NoError(t, listErr)
	assert.Empty(t, events)
}
