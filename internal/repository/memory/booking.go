package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/SeatReserve/internal/domain"
)

type BookingRepository struct {
	s *Store
}

func NewBookingRepo(s *Store) *BookingRepository {
	return &BookingRepository{s: s}
}

func (r *BookingRepository) Append(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[b.ID]; ok {
		return fmt.Errorf("%w: booking %s already exists", domain.ErrStorage, b.ID)
	}
	if _, ok := r.s.events[b.EventID]; !ok {
		return fmt.Errorf("%w: %w", domain.ErrStorage, domain.ErrEventNotFound)
	}

	stored := *b
	r.s.bookings[b.ID] = &stored
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *BookingRepository) MarkCancelled(_ context.Context, id string) (*domain.Booking, domain.BookingStatus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, "", domain.ErrBookingNotFound
	}
	if b.Status == domain.BookingStatusCancelled {
		return nil, "", domain.ErrAlreadyCancelled
	}

	prev := b.Status
	b.Status = domain.BookingStatusCancelled
	b.UpdatedAt = r.s.now()

	cp := *b
	return &cp, prev, nil
}

func (r *BookingRepository) RestoreStatus(_ context.Context, id string, status domain.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = r.s.now()
	return nil
}

func (r *BookingRepository) ListByUser(_ context.Context, userID string) ([]*domain.BookingView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.BookingView, 0)
	for _, b := range r.s.bookings {
		if b.UserID != userID {
			continue
		}
		e, ok := r.s.events[b.EventID]
		if !ok {
			continue
		}
		res = append(res, &domain.BookingView{
			Booking:      *b,
			Event:        *r.s.eventCopy(e),
			CategoryName: r.s.categoryName(e.CategoryID),
		})
	}
	slices.SortFunc(res, func(a, b *domain.BookingView) int {
		return cmp.Or(b.Booking.CreatedAt.Compare(a.Booking.CreatedAt), cmp.Compare(a.Booking.ID, b.Booking.ID))
	})
	return res, nil
}

func (r *BookingRepository) Summary(_ context.Context) (*domain.Stats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st := &domain.Stats{TotalRevenue: decimal.Zero}
	for _, b := range r.s.bookings {
		st.TotalBookings++
		if b.Status == domain.BookingStatusConfirmed {
			st.TotalRevenue = st.TotalRevenue.Add(b.TotalAmount)
		}
	}
	return st, nil
}

// ActiveTickets sums tickets_count over the event's non-cancelled bookings.
func (r *BookingRepository) ActiveTickets(eventID string) int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, b := range r.s.bookings {
		if b.EventID == eventID && b.Status != domain.BookingStatusCancelled {
			n += b.TicketsCount
		}
	}
	return n
}
