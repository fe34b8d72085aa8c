package memory

import (
	"context"

	"github.com/stpnv0/SeatReserve/internal/domain"
)

type InventoryStore struct {
	s *Store
}

func NewInventoryStore(s *Store) *InventoryStore {
	return &InventoryStore{s: s}
}

func (r *InventoryStore) GetAvailability(_ context.Context, eventID string) (int, error) {
	c, ok := r.s.counter(eventID)
	if !ok {
		return 0, domain.ErrEventNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.available, nil
}

func (r *InventoryStore) Reserve(_ context.Context, eventID string, count int) (int, error) {
	if err := domain.CheckSeatCount(count); err != nil {
		return 0, err
	}

	c, ok := r.s.counter(eventID)
	if !ok {
		return 0, domain.ErrEventNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.bookable {
		return c.available, domain.ErrEventNotBookable
	}

	if count > c.available {
		return c.available, &domain.InsufficientInventoryError{
			EventID:   eventID,
			Requested: count,
			Available: c.available,
		}
	}
	c.available -= count
	return c.available, nil
}

func (r *InventoryStore) Release(_ context.Context, eventID string, count int) (int, error) {
	if err := domain.CheckSeatCount(count); err != nil {
		return 0, err
	}

	c, ok := r.s.counter(eventID)
	if !ok {
		return 0, domain.ErrEventNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.available = min(c.available+count, c.total)
	return c.available, nil
}
