package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/service/ports"
	"github.com/stpnv0/SeatReserve/internal/ticket"
)

type TicketService struct {
	bookings ports.BookingRepo
	issuer   *ticket.Issuer
}

func NewTicketService(bookings ports.BookingRepo, issuer *ticket.Issuer) *TicketService {
	return &TicketService{bookings: bookings, issuer: issuer}
}

// Ticket renders the QR ticket of a confirmed booking for its holder.
func (s *TicketService) Ticket(ctx context.Context, bookingID, userID string) ([]byte, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.UserID != userID {
		return nil, fmt.Errorf("%w: booking belongs to another user", domain.ErrForbidden)
	}
	if b.Status != domain.BookingStatusConfirmed {
		return nil, domain.ErrBookingNotConfirmed
	}

	return s.issuer.QR(b)
}

// Verify resolves a scanned payload to a confirmed booking.
func (s *TicketService) Verify(ctx context.Context, payload string) (*domain.Booking, error) {
	id, err := s.issuer.BookingID(payload)
	if err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !s.issuer.Verify(b, payload) {
		return nil, ticket.ErrInvalidTicket
	}
	if b.Status != domain.BookingStatusConfirmed {
		return nil, domain.ErrBookingNotConfirmed
	}

	return b, nil
}
