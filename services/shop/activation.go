package shop

import (
	"context"
	"errors"

	shopRepo "shopsphere/database/repository/shop"
	"shopsphere/models"

	"go.uber.org/zap"
)

// ToggleActive flips the gate relative to the caller's view of the shop:
// the stored value becomes !currentStatus regardless of what was stored.
func (s *DefaultShopService) ToggleActive(ctx context.Context, shopID string, currentStatus bool) (bool, error) {
	newStatus := !currentStatus
	if err := s.Repo.SetActive(ctx, shopID, newStatus, s.Now()); err != nil {
		if errors.Is(err, shopRepo.ErrNotFound) {
			return false, ErrShopNotFound
		}
		s.Logger.Error("failed to toggle shop", zap.String("shopId", shopID), zap.Error(err))
		return false, err
	}
	s.Logger.Info("shop activation changed", zap.String("shopId", shopID), zap.Bool("isActive", newStatus))
	return newStatus, nil
}

// ListVisibleShops is the consumer listing; shops without isActive are included.
func (s *DefaultShopService) ListVisibleShops(ctx context.Context) ([]models.Shop, error) {
	return s.Repo.ListVisible(ctx)
}

func (s *DefaultShopService) ListAllShops(ctx context.Context) ([]models.Shop, error) {
	return s.Repo.ListAll(ctx)
}

// WatchShop streams the shop's visibility after every change until ctx is done.
func (s *DefaultShopService) WatchShop(ctx context.Context, shopID string) (<-chan models.ShopActivation, error) {
	if _, err := s.GetShop(ctx, shopID); err != nil {
		return nil, err
	}
	docs, err := s.Repo.Watch(ctx, shopID)
	if err != nil {
		return nil, err
	}

	out := make(chan models.ShopActivation)
	go func() {
		defer close(out)
		for shop := range docs {
			evt := models.ShopActivation{ShopID: shop.ID, Visible: shop.Visible(), UpdatedAt: shop.UpdatedAt}
			select {
			case out <- evt:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
