package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/service/ports"
)

const (
	DefaultFeaturedLimit = 3
	maxFeaturedLimit     = 50
)

// QueryService serves read-only views. Seat counts it returns may be stale by
// the time a booking is attempted.
type QueryService struct {
	events     ports.EventRepo
	bookings   ports.BookingRepo
	inventory  ports.InventoryStore
	categories ports.CategoryRepo
}

func NewQueryService(
	events ports.EventRepo,
	bookings ports.BookingRepo,
	inventory ports.InventoryStore,
	categories ports.CategoryRepo,
) *QueryService {
	return &QueryService{
		events:     events,
		bookings:   bookings,
		inventory:  inventory,
		categories: categories,
	}
}

func (s *QueryService) ListUpcomingEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	filter.SearchText = strings.TrimSpace(filter.SearchText)
	filter.CategoryID = strings.TrimSpace(filter.CategoryID)

	events, err := s.events.ListUpcoming(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}

func (s *QueryService) ListFeatured(ctx context.Context, limit int) ([]*domain.Event, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	limit = min(limit, maxFeaturedLimit)

	events, err := s.events.ListFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured events: %w", err)
	}
	return events, nil
}

func (s *QueryService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *QueryService) GetEvent(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.events.GetDetails(ctx, id)
}

func (s *QueryService) GetAvailability(ctx context.Context, eventID string) (int, error) {
	return s.inventory.GetAvailability(ctx, eventID)
}

func (s *QueryService) ListUserBookings(ctx context.Context, userID string) ([]*domain.BookingView, error) {
	views, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return views, nil
}

func (s *QueryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}
