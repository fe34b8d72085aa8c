package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopNotifier struct{}

func (nopNotifier) NotifyBookingConfirmed(context.Context, *domain.Profile, *domain.Event, *domain.Booking) {
}

func (nopNotifier) NotifyBookingCancelled(context.Context, *domain.Profile, *domain.Event, *domain.Booking) {
}

// flakyBookings fails appends while failing is set.
type flakyBookings struct {
	*memory.BookingRepository
	failing atomic.Bool
}

func (r *flakyBookings) Append(ctx context.Context, b *domain.Booking) error {
	if r.failing.Load() {
		return errors.New("ledger unavailable")
	}
	return r.BookingRepository.Append(ctx, b)
}

type system struct {
	events      *memory.EventRepository
	inventory   *memory.InventoryStore
	bookings    *flakyBookings
	ledger      *LedgerService
	reservation *ReservationService
}

func newSystem(t *testing.T) *system {
	t.Helper()

	store := memory.NewStore()
	log := newTestLogger(t)

	sys := &system{
		events:    memory.NewEventRepo(store),
		inventory: memory.NewInventoryStore(store),
		bookings:  &flakyBookings{BookingRepository: memory.NewBookingRepo(store)},
	}
	profiles := memory.NewProfileRepo(store)

	query := NewQueryService(sys.events, sys.bookings, sys.inventory, memory.NewCategoryRepo(store))
	sys.ledger = NewLedgerService(sys.bookings, sys.inventory, sys.events, profiles, nopNotifier{}, log)
	sys.reservation = NewReservationService(query, sys.inventory, sys.ledger, profiles, nopNotifier{}, log)

	return sys
}

func (s *system) createEvent(t *testing.T, seats int, price string) *domain.Event {
	t.Helper()

	start := time.Now().Add(72 * time.Hour).UTC()
	e := &domain.Event{
		ID:             uuid.NewString(),
		Title:          "Scenario",
		StartDate:      start,
		EndDate:        start.Add(time.Hour),
		Price:          decimal.RequireFromString(price),
		TotalSeats:     seats,
		AvailableSeats: seats,
		Status:         domain.EventStatusUpcoming,
	}
	require.NoError(t, s.events.Create(context.Background(), e))
	return e
}

func (s *system) available(t *testing.T, eventID string) int {
	t.Helper()
	n, err := s.inventory.GetAvailability(context.Background(), eventID)
	require.NoError(t, err)
	return n
}

// assertSeatsBalanced checks available + confirmed tickets == total.
func (s *system) assertSeatsBalanced(t *testing.T, e *domain.Event) {
	t.Helper()
	assert.Equal(t, e.TotalSeats, s.available(t, e.ID)+s.bookings.ActiveTickets(e.ID))
}

func (s *system) book(eventID, userID string, tickets int) (*domain.Booking, error) {
	return s.reservation.Book(context.Background(), domain.BookInput{EventID: eventID, UserID: userID, Tickets: tickets})
}

func TestScenario_BookAndReject(t *testing.T) {
	sys := newSystem(t)
	e := sys.createEvent(t, 10, "25.00")

	b, err := sys.book(e.ID, "u1", 3)
	require.NoError(t, err)
	assert.Equal(t, "75.00", b.TotalAmount.StringFixed(2))
	assert.Equal(t, 7, sys.available(t, e.ID))

	_, err = sys.book(e.ID, "u2", 5)
	require.NoError(t, err)
	require.Equal(t, 2, sys.available(t, e.ID))

	_, err = sys.book(e.ID, "u3", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)

	var inErr *domain.InsufficientInventoryError
	require.ErrorAs(t, err, &inErr)
	assert.Equal(t, 2, inErr.Available)
	assert.Equal(t, 2, sys.available(t, e.ID))

	sys.assertSeatsBalanced(t, e)
}

func TestScenario_ConcurrentBookingsOneWins(t *testing.T) {
	sys := newSystem(t)
	e := sys.createEvent(t, 3, "10.00")

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for _, user := range []string{"u1", "u2"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sys.book(e.ID, user, 2)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrInsufficientInventory):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(1), rejected.Load())
	assert.Equal(t, 1, sys.available(t, e.ID))
	sys.assertSeatsBalanced(t, e)
}

func TestScenario_FreeEvent(t *testing.T) {
	sys := newSystem(t)
	e := sys.createEvent(t, 5, "0.00")

	b, err := sys.book(e.ID, "u1", 1)

	require.NoError(t, err)
	assert.Equal(t, "0.00", b.TotalAmount.StringFixed(2))
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)

	stored, err := sys.bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, stored.Status)
}

func TestScenario_LedgerFailureReturnsSeats(t *testing.T) {
	sys := newSystem(t)
	e := sys.createEvent(t, 10, "25.00")

	sys.bookings.failing.Store(true)
	_, err := sys.book(e.ID, "u1", 4)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Equal(t, 10, sys.available(t, e.ID))
	sys.assertSeatsBalanced(t, e)

	sys.bookings.failing.Store(false)
	_, err = sys.book(e.ID, "u1", 4)
	require.NoError(t, err)
	assert.Equal(t, 6, sys.available(t, e.ID))
}

func TestScenario_CancelIsIdempotent(t *testing.T) {
	sys := newSystem(t)
	e := sys.createEvent(t, 10, "25.00")

	first, err := sys.book(e.ID, "u1", 3)
	require.NoError(t, err)
	_, err = sys.book(e.ID, "u2", 4)
	require.NoError(t, err)
	require.Equal(t, 3, sys.available(t, e.ID))

	for range 3 {
		b, err := sys.ledger.Cancel(context.Background(), first.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	}

	assert.Equal(t, 6, sys.available(t, e.ID))
	sys.assertSeatsBalanced(t, e)
}

func TestScenario_ConcurrentBookAndCancel(t *testing.T) {
	sys := newSystem(t)
	e := sys.createEvent(t, 20, "5.00")

	var (
		mu       sync.Mutex
		bookings []string
		wg       sync.WaitGroup
	)
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := sys.book(e.ID, "u"+string(rune('a'+i%26)), 1+i%3)
			if err != nil {
				return
			}
			if i%2 == 0 {
				_, _ = sys.ledger.Cancel(context.Background(), b.ID)
				_, _ = sys.ledger.Cancel(context.Background(), b.ID)
				return
			}
			mu.Lock()
			bookings = append(bookings, b.ID)
			mu.Unlock()
		}()
	}
	wg.Wait()

	avail := sys.available(t, e.ID)
	assert.GreaterOrEqual(t, avail, 0)
	assert.LessOrEqual(t, avail, e.TotalSeats)
	sys.assertSeatsBalanced(t, e)

	for _, id := range bookings {
		_, err := sys.ledger.Cancel(context.Background(), id)
		require.NoError(t, err)
	}
	assert.Equal(t, e.TotalSeats, sys.available(t, e.ID))
}

func TestScenario_EventCompletedBlocksBooking(t *testing.T) {
	sys := newSystem(t)
	e := sys.createEvent(t, 5, "10.00")

	_, err := sys.book(e.ID, "u1", 2)
	require.NoError(t, err)

	_, err = sys.events.MarkPast(context.Background(), e.EndDate.Add(time.Minute))
	require.NoError(t, err)

	_, err = sys.book(e.ID, "u2", 1)
	assert.ErrorIs(t, err, domain.ErrEventNotBookable)
	assert.Equal(t, 3, sys.available(t, e.ID))
	sys.assertSeatsBalanced(t, e)
}
