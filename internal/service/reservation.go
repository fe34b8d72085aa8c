package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultCompensationTimeout = 5 * time.Second

type eventLoader interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}

type ledgerAppender interface {
	Append(ctx context.Context, b *domain.Booking) (string, error)
}

// ReservationService turns a booking request into reserved seats plus a
// ledger entry, or into nothing at all.
type ReservationService struct {
	events    eventLoader
	inventory ports.InventoryStore
	ledger    ledgerAppender
	profiles  ports.ProfileRepo
	notifier  ports.BookingNotifier
	logger    logger.Logger

	compensationTimeout time.Duration
	now                 func() time.Time
}

type ReservationOption func(*ReservationService)

// WithCompensationTimeout bounds the seat release issued after a failed
// ledger append.
func WithCompensationTimeout(d time.Duration) ReservationOption {
	return func(s *ReservationService) {
		if d > 0 {
			s.compensationTimeout = d
		}
	}
}

func NewReservationService(
	events eventLoader,
	inventory ports.InventoryStore,
	ledger ledgerAppender,
	profiles ports.ProfileRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	opts ...ReservationOption,
) *ReservationService {
	s := &ReservationService{
		events:              events,
		inventory:           inventory,
		ledger:              ledger,
		profiles:            profiles,
		notifier:            notifier,
		logger:              logger,
		compensationTimeout: defaultCompensationTimeout,
		now:                 func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReservationService) Book(ctx context.Context, in domain.BookInput) (*domain.Booking, error) {
	if in.Tickets <= 0 {
		return nil, fmt.Errorf("%w: tickets count must be positive", domain.ErrInvalidRequest)
	}
	if in.EventID == "" || in.UserID == "" {
		return nil, fmt.Errorf("%w: event and user are required", domain.ErrInvalidRequest)
	}

	event, err := s.events.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	if !event.Bookable() {
		return nil, fmt.Errorf("%w: event status is %s", domain.ErrEventNotBookable, event.Status)
	}

	left, err := s.inventory.Reserve(ctx, in.EventID, in.Tickets)
	if err != nil {
		return nil, fmt.Errorf("reserve seats: %w", err)
	}

	now := s.now()
	booking := &domain.Booking{
		ID:           uuid.NewString(),
		EventID:      in.EventID,
		UserID:       in.UserID,
		TicketsCount: in.Tickets,
		TotalAmount:  domain.TotalAmount(event.Price, in.Tickets),
		Status:       domain.BookingStatusConfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err = s.ledger.Append(ctx, booking); err != nil {
		return nil, s.compensate(ctx, booking, err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
		logger.String("user_id", booking.UserID),
		logger.Int("tickets", booking.TicketsCount),
		logger.Int("seats_left", left),
	)

	event.AvailableSeats = left
	go s.notifyConfirmed(context.WithoutCancel(ctx), booking, event)

	return booking, nil
}

// compensate gives back seats reserved for a booking that never reached the
// ledger. It runs detached from ctx so a cancelled request still releases.
func (s *ReservationService) compensate(ctx context.Context, b *domain.Booking, cause error) error {
	appendErr := fmt.Errorf("append booking: %w", cause)

	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.compensationTimeout)
	defer cancel()

	if _, err := s.inventory.Release(rctx, b.EventID, b.TicketsCount); err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "seat release after failed append failed",
			logger.String("event_id", b.EventID),
			logger.Int("tickets", b.TicketsCount),
			logger.String("append_error", cause.Error()),
			logger.String("error", err.Error()),
		)
		return errors.Join(appendErr, fmt.Errorf("release seats: %w", err))
	}

	s.logger.LogAttrs(ctx, logger.WarnLevel, "booking append failed, seats released",
		logger.String("event_id", b.EventID),
		logger.Int("tickets", b.TicketsCount),
		logger.String("error", cause.Error()),
	)
	return appendErr
}

func (s *ReservationService) notifyConfirmed(ctx context.Context, b *domain.Booking, e *domain.Event) {
	profile, err := s.profiles.GetByID(ctx, b.UserID)
	if err != nil {
		s.logger.Warn("failed to get profile for booking notification",
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyBookingConfirmed(ctx, profile, e, b)
}
