package user

import (
	"context"
	"errors"
	"time"

	userRepo "shopsphere/database/repository/user"
	"shopsphere/models"

	"go.uber.org/zap"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNameRequired = errors.New("name is required")
	ErrInvalidEmail = errors.New("email address is invalid")
)

type UserService interface {
	UpsertProfile(ctx context.Context, uid string, input models.UserProfileInput) (*models.User, error)
	GetProfile(ctx context.Context, uid string) (*models.User, error)
	// Admin
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Now    func() time.Time
	Logger *zap.Logger
}

func NewUserService(repo userRepo.UserRepository, logger *zap.Logger) *DefaultUserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultUserService{Repo: repo, Now: func() time.Time { return time.Now().UTC() }, Logger: logger}
}
