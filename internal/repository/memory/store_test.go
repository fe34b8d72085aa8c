package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stretchr/testify/require"
)

func seedEvent(t *testing.T, s *Store, mutate func(e *domain.Event)) *domain.Event {
	t.Helper()

	start := time.Now().Add(48 * time.Hour).UTC()
	e := &domain.Event{
		ID:             uuid.NewString(),
		Title:          "Event",
		StartDate:      start,
		EndDate:        start.Add(2 * time.Hour),
		Price:          decimal.RequireFromString("25.00"),
		TotalSeats:     10,
		AvailableSeats: 10,
		Status:         domain.EventStatusUpcoming,
	}
	if mutate != nil {
		mutate(e)
	}
	require.NoError(t, NewEventRepo(s).Create(context.Background(), e))
	return e
}

func (r *InventoryStore) reserve(id string, n int) (int, error) {
	return r.Reserve(context.Background(), id, n)
}

func (r *InventoryStore) release(id string, n int) (int, error) {
	return r.Release(context.Background(), id, n)
}
