package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/stpnv0/SeatReserve/internal/domain"
)

type CategoryRepository struct {
	s *Store
}

func NewCategoryRepo(s *Store) *CategoryRepository {
	return &CategoryRepository{s: s}
}

func (r *CategoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		res = append(res, &cp)
	}
	slices.SortFunc(res, func(a, b *domain.Category) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res, nil
}

type ProfileRepository struct {
	s *Store
}

func NewProfileRepo(s *Store) *ProfileRepository {
	return &ProfileRepository{s: s}
}

func (r *ProfileRepository) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProfileRepository) Upsert(_ context.Context, p *domain.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	if existing, ok := r.s.profiles[p.ID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	stored := *p
	r.s.profiles[p.ID] = &stored
	return nil
}

type RoleRepository struct {
	s *Store
}

func NewRoleRepo(s *Store) *RoleRepository {
	return &RoleRepository{s: s}
}

func (r *RoleRepository) HasRole(_ context.Context, userID, role string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.roles[userID][role]
	return ok, nil
}

func (r *RoleRepository) Grant(_ context.Context, userID, role string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.roles[userID] == nil {
		r.s.roles[userID] = make(map[string]struct{})
	}
	r.s.roles[userID][role] = struct{}{}
	return nil
}
