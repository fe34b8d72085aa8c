package repository

import (
	"context"

	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CategoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCategoryRepo(db *dbpg.DB) *CategoryRepository {
	return &CategoryRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, storageErr("list categories", err)
	}
	defer rows.Close()

	res := make([]*domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, storageErr("scan category", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
