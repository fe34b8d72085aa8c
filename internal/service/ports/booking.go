package ports

import (
	"context"

	"github.com/stpnv0/SeatReserve/internal/domain"
)

type BookingRepo interface {
	Append(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// MarkCancelled flips a non-cancelled booking to cancelled and returns it
	// with the status it had before. Returns domain.ErrAlreadyCancelled when
	// there was nothing to flip.
	MarkCancelled(ctx context.Context, id string) (*domain.Booking, domain.BookingStatus, error)
	RestoreStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingView, error)
	Summary(ctx context.Context) (*domain.Stats, error)
}
