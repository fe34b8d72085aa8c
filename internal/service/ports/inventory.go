package ports

import "context"

// InventoryStore holds the authoritative available seat counter per event.
// Reserve must be linearizable per event and must not serialize across events.
type InventoryStore interface {
	GetAvailability(ctx context.Context, eventID string) (int, error)
	Reserve(ctx context.Context, eventID string, count int) (int, error)
	Release(ctx context.Context, eventID string, count int) (int, error)
}
