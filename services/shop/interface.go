package shop

import (
	"context"
	"errors"
	"io"
	"time"

	shopRepo "shopsphere/database/repository/shop"
	"shopsphere/models"
	"shopsphere/services/storage"

	"go.uber.org/zap"
)

var (
	ErrShopNotFound  = errors.New("shop not found")
	ErrShopNameEmpty = errors.New("shop name is required")
	ErrNoMediaStore  = errors.New("media storage is not configured")
)

// ShopService manages shop profiles and the admin activation gate.
type ShopService interface {
	CreateShop(ctx context.Context, ownerID string, input models.ShopInput) (*models.Shop, error)
	GetShop(ctx context.Context, shopID string) (*models.Shop, error)
	UpdateShopProfile(ctx context.Context, shopID string, upd models.ShopProfileUpdate) (*models.Shop, error)
	ListVisibleShops(ctx context.Context) ([]models.Shop, error)
	ListAllShops(ctx context.Context) ([]models.Shop, error)
	ToggleActive(ctx context.Context, shopID string, currentStatus bool) (bool, error)
	SetShopImage(ctx context.Context, shopID string, file io.Reader) (*models.Shop, error)
	WatchShop(ctx context.Context, shopID string) (<-chan models.ShopActivation, error)
}

type DefaultShopService struct {
	Repo    shopRepo.ShopRepository
	Storage storage.StorageService
	Now     func() time.Time
	Logger  *zap.Logger
}

func NewShopService(repo shopRepo.ShopRepository, media storage.StorageService, logger *zap.Logger) *DefaultShopService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultShopService{
		Repo:    repo,
		Storage: media,
		Now:     func() time.Time { return time.Now().UTC() },
		Logger:  logger,
	}
}
