package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AdminService holds the event management operations. Callers are expected to
// have passed the admin check already.
type AdminService struct {
	events   ports.EventRepo
	bookings ports.BookingRepo
	logger   logger.Logger
	now      func() time.Time
}

func NewAdminService(events ports.EventRepo, bookings ports.BookingRepo, logger logger.Logger) *AdminService {
	return &AdminService{
		events:   events,
		bookings: bookings,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *AdminService) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidRequest)
	}
	if in.TotalSeats <= 0 {
		return nil, fmt.Errorf("%w: total_seats must be positive", domain.ErrInvalidRequest)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidRequest)
	}
	if in.StartDate.Before(s.now()) {
		return nil, fmt.Errorf("%w: start_date must be in the future", domain.ErrInvalidRequest)
	}
	if in.EndDate.IsZero() {
		in.EndDate = in.StartDate
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrInvalidRequest)
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	event := &domain.Event{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		CategoryID:     in.CategoryID,
		Location:       in.Location,
		VenueName:      in.VenueName,
		ImageURL:       in.ImageURL,
		StartDate:      in.StartDate.UTC(),
		EndDate:        in.EndDate.UTC(),
		Price:          in.Price.Round(2),
		TotalSeats:     in.TotalSeats,
		AvailableSeats: in.TotalSeats,
		Status:         domain.EventStatusUpcoming,
		Featured:       in.Featured,
		Tags:           tags,
		OrganizerID:    in.OrganizerID,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", event.OrganizerID),
		logger.Int("total_seats", event.TotalSeats),
	)

	return event, nil
}

func (s *AdminService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", id))
	return nil
}

func (s *AdminService) ListEvents(ctx context.Context) ([]*domain.EventDetails, error) {
	return s.events.ListAll(ctx)
}

func (s *AdminService) Stats(ctx context.Context) (*domain.Stats, error) {
	events, err := s.events.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	st, err := s.bookings.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("bookings summary: %w", err)
	}
	st.TotalEvents = events

	return st, nil
}

// CompletePastEvents moves upcoming events whose end date has passed to past.
func (s *AdminService) CompletePastEvents(ctx context.Context) ([]*domain.Event, error) {
	done, err := s.events.MarkPast(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("mark past events: %w", err)
	}

	if len(done) > 0 {
		s.logger.Info("events completed", logger.Int("count", len(done)))
	}

	return done, nil
}
