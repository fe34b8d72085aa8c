package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/service/ports"
)

var validate = validator.New()

type ProfileService struct {
	repo ports.ProfileRepo
}

func NewProfileService(repo ports.ProfileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.GetByID(ctx, userID)
}

// Update applies the set fields to the user's own profile, creating it on
// first write.
func (s *ProfileService) Update(ctx context.Context, userID string, in domain.UpdateProfileInput) (*domain.Profile, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user is required", domain.ErrInvalidRequest)
	}

	p, err := s.repo.GetByID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		p = &domain.Profile{ID: userID}
	case err != nil:
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if in.FullName != nil {
		p.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email != "" {
			if err := validate.Var(email, "email"); err != nil {
				return nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidRequest)
			}
		}
		p.Email = email
	}
	if in.TelegramChatID != nil {
		p.TelegramChatID = in.TelegramChatID
	}

	if err = s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	return p, nil
}
