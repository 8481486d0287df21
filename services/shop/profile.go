package shop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	shopRepo "shopsphere/database/repository/shop"
	"shopsphere/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const imageFolder = "shops"

// CreateShop registers a shop for ownerID. New shops start visible.
func (s *DefaultShopService) CreateShop(ctx context.Context, ownerID string, input models.ShopInput) (*models.Shop, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrShopNameEmpty
	}
	now := s.Now()
	active := true
	shop := &models.Shop{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        name,
		Description: input.Description,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		IsActive:    &active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, shop); err != nil {
		s.Logger.Error("failed to create shop", zap.String("ownerId", ownerID), zap.Error(err))
		return nil, err
	}
	s.Logger.Info("shop created", zap.String("shopId", shop.ID), zap.String("ownerId", ownerID))
	return shop, nil
}

func (s *DefaultShopService) GetShop(ctx context.Context, shopID string) (*models.Shop, error) {
	shop, err := s.Repo.GetByID(ctx, shopID)
	if errors.Is(err, shopRepo.ErrNotFound) {
		return nil, ErrShopNotFound
	}
	return shop, err
}

func (s *DefaultShopService) UpdateShopProfile(ctx context.Context, shopID string, upd models.ShopProfileUpdate) (*models.Shop, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, ErrShopNameEmpty
		}
		upd.Name = &name
	}
	shop, err := s.Repo.UpdateProfile(ctx, shopID, upd, s.Now())
	if errors.Is(err, shopRepo.ErrNotFound) {
		return nil, ErrShopNotFound
	}
	return shop, err
}

// SetShopImage uploads file and points the shop at it. The previous image is
// removed on a best-effort basis.
func (s *DefaultShopService) SetShopImage(ctx context.Context, shopID string, file io.Reader) (*models.Shop, error) {
	if s.Storage == nil {
		return nil, ErrNoMediaStore
	}
	current, err := s.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	media, err := s.Storage.UploadFile(ctx, file, fmt.Sprintf("%s/%s", imageFolder, shopID))
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetImage(ctx, shopID, media.PublicID, media.URL, s.Now()); err != nil {
		return nil, err
	}

	if current.ImageID != "" && current.ImageID != media.PublicID {
		if err := s.Storage.DeleteFile(ctx, current.ImageID); err != nil {
			s.Logger.Warn("failed to delete previous shop image", zap.String("publicId", current.ImageID), zap.Error(err))
		}
	}
	return s.GetShop(ctx, shopID)
}
