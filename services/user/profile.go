package user

import (
	"context"
	"errors"
	"strings"

	userRepo "shopsphere/database/repository/user"
	"shopsphere/models"

	"go.uber.org/zap"
)

// UpsertProfile stores the profile of the authenticated uid, creating it on first use.
func (s *DefaultUserService) UpsertProfile(ctx context.Context, uid string, input models.UserProfileInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != "" && !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	now := s.Now()
	user := &models.User{
		ID:          uid,
		Name:        name,
		Email:       email,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Upsert(ctx, user); err != nil {
		s.Logger.Error("failed to upsert user", zap.String("uid", uid), zap.Error(err))
		return nil, err
	}
	return s.GetProfile(ctx, uid)
}

func (s *DefaultUserService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, uid)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListAll(ctx)
}
