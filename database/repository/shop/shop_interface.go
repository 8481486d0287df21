package shopRepo

import (
	"context"
	"errors"
	"time"

	"shopsphere/models"
)

var ErrNotFound = errors.New("shop not found")

// ShopRepository defines methods for shop data access.
type ShopRepository interface {
	Create(ctx context.Context, shop *models.Shop) error
	GetByID(ctx context.Context, id string) (*models.Shop, error)
	// UpdateProfile sets the non-nil profile fields and returns the updated shop.
	UpdateProfile(ctx context.Context, id string, upd models.ShopProfileUpdate, at time.Time) (*models.Shop, error)
	SetActive(ctx context.Context, id string, active bool, at time.Time) error
	SetImage(ctx context.Context, id, imageID, imageURL string, at time.Time) error
	// ListVisible returns shops whose isActive is not false.
	ListVisible(ctx context.Context) ([]models.Shop, error)
	ListAll(ctx context.Context) ([]models.Shop, error)
	// Watch streams the shop document after every change until ctx is done.
	Watch(ctx context.Context, id string) (<-chan models.Shop, error)
}
