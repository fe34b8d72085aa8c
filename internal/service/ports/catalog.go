package ports

import (
	"context"

	"github.com/stpnv0/SeatReserve/internal/domain"
)

type CategoryRepo interface {
	List(ctx context.Context) ([]*domain.Category, error)
}

type ProfileRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type RoleRepo interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
	Grant(ctx context.Context, userID, role string) error
}
