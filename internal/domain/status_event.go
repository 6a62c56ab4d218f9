package domain

import "time"

// StatusEvent is an append-only ledger entry recording one status
// transition for an order. Events are never updated or deleted.
type StatusEvent struct {
	ID        uint
	OrderID   uint
	Status    string
	Note      *string
	Timestamp time.Time
}
