package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SeatReserve/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	ListUpcoming(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	ListFeatured(ctx context.Context, limit int) ([]*domain.Event, error)
	ListAll(ctx context.Context) ([]*domain.EventDetails, error)
	Count(ctx context.Context) (int, error)
	MarkPast(ctx context.Context, now time.Time) ([]*domain.Event, error)
}
