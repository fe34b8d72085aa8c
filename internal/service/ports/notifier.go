package ports

import (
	"context"

	"github.com/stpnv0/SeatReserve/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, profile *domain.Profile, event *domain.Event, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, profile *domain.Profile, event *domain.Event, booking *domain.Booking)
}
