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

// LedgerService records bookings and cancels them, keeping the seat counter
// in step with every status change.
type LedgerService struct {
	bookings  ports.BookingRepo
	inventory ports.InventoryStore
	events    ports.EventRepo
	profiles  ports.ProfileRepo
	notifier  ports.BookingNotifier
	logger    logger.Logger

	restoreTimeout time.Duration
}

func NewLedgerService(
	bookings ports.BookingRepo,
	inventory ports.InventoryStore,
	events ports.EventRepo,
	profiles ports.ProfileRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *LedgerService {
	return &LedgerService{
		bookings:       bookings,
		inventory:      inventory,
		events:         events,
		profiles:       profiles,
		notifier:       notifier,
		logger:         logger,
		restoreTimeout: defaultCompensationTimeout,
	}
}

func (s *LedgerService) Append(ctx context.Context, b *domain.Booking) (string, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}

	if err := s.bookings.Append(ctx, b); err != nil {
		if !errors.Is(err, domain.ErrStorage) {
			err = fmt.Errorf("%w: %w", domain.ErrStorage, err)
		}
		return "", err
	}

	return b.ID, nil
}

func (s *LedgerService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// Cancel moves a booking to cancelled and returns its seats. Cancelling an
// already cancelled booking succeeds without releasing anything.
func (s *LedgerService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	b, prev, err := s.bookings.MarkCancelled(ctx, id)
	if errors.Is(err, domain.ErrAlreadyCancelled) {
		s.logger.LogAttrs(ctx, logger.DebugLevel, "booking already cancelled",
			logger.String("booking_id", id),
		)
		return s.bookings.GetByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	if _, err = s.inventory.Release(ctx, b.EventID, b.TicketsCount); err != nil {
		return nil, s.restore(ctx, b, prev, err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking cancelled",
		logger.String("booking_id", b.ID),
		logger.String("event_id", b.EventID),
		logger.Int("tickets", b.TicketsCount),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), b)

	return b, nil
}

// CancelOwned cancels a booking on behalf of the user holding it.
func (s *LedgerService) CancelOwned(ctx context.Context, id, userID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.UserID != userID {
		return nil, fmt.Errorf("%w: booking belongs to another user", domain.ErrForbidden)
	}

	return s.Cancel(ctx, id)
}

func (s *LedgerService) restore(ctx context.Context, b *domain.Booking, prev domain.BookingStatus, cause error) error {
	releaseErr := fmt.Errorf("release seats: %w", cause)

	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.restoreTimeout)
	defer cancel()

	if err := s.bookings.RestoreStatus(rctx, b.ID, prev); err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "booking cancelled but seats not released",
			logger.String("booking_id", b.ID),
			logger.String("event_id", b.EventID),
			logger.Int("tickets", b.TicketsCount),
			logger.String("error", err.Error()),
		)
		return errors.Join(releaseErr, fmt.Errorf("restore booking status: %w", err))
	}

	s.logger.LogAttrs(ctx, logger.WarnLevel, "seat release failed, booking status restored",
		logger.String("booking_id", b.ID),
		logger.String("status", string(prev)),
		logger.String("error", cause.Error()),
	)
	return releaseErr
}

func (s *LedgerService) notifyCancelled(ctx context.Context, b *domain.Booking) {
	profile, err := s.profiles.GetByID(ctx, b.UserID)
	if err != nil {
		s.logger.Warn("failed to get profile for cancel notification",
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.events.GetByID(ctx, b.EventID)
	if err != nil {
		s.logger.Warn("failed to get event for cancel notification",
			logger.String("event_id", b.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyBookingCancelled(ctx, profile, event, b)
}
