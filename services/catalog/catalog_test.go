package catalog

import (
	"context"
	"testing"

	catalogRepo "shopsphere/database/repository/catalog"
	"shopsphere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryServiceRepo struct {
	items map[string]models.Service
}

func (r *memoryServiceRepo) Create(_ context.Context, svc *models.Service) error {
	r.items[svc.ID] = *svc
	return nil
}

func (r *memoryServiceRepo) GetByID(_ context.Context, shopID, id string) (*models.Service, error) {
	svc, ok := r.items[id]
	if !ok || svc.ShopID != shopID {
		return nil, catalogRepo.ErrNotFound
	}
	return &svc, nil
}

func (r *memoryServiceRepo) Update(_ context.Context, svc *models.Service) error {
	r.items[svc.ID] = *svc
	return nil
}

func (r *memoryServiceRepo) ListByShop(_ context.Context, shopID string, activeOnly bool) ([]models.Service, error) {
	out := []models.Service{}
	for _, svc := range r.items {
		if svc.ShopID == shopID && (!activeOnly || svc.Active) {
			out = append(out, svc)
		}
	}
	return out, nil
}

func TestAddService(t *testing.T) {
	tests := []struct {
		name    string
		svcName string
		price   float64
		wantErr error
	}{
		{"valid", "Beard trim", 12.5, nil},
		{"free is fine", "Consultation", 0, nil},
		{"blank name", "   ", 10, ErrNameRequired},
		{"negative price", "Shave", -1, ErrNegativePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(&memoryServiceRepo{items: map[string]models.Service{}}, nil)
			got, err := svc.AddService(context.Background(), "shop-1", tt.svcName, tt.price)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Active)
			assert.Equal(t, tt.price, got.Price)
		})
	}
}

func TestUpdateAndDeactivate(t *testing.T) {
	ctx := context.Background()
	repo := &memoryServiceRepo{items: map[string]models.Service{}}
	svc := NewCatalogService(repo, nil)

	created, err := svc.AddService(ctx, "shop-1", "Cut", 20)
	require.NoError(t, err)

	price := 22.0
	updated, err := svc.UpdateService(ctx, "shop-1", created.ID, models.ServiceUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 22.0, updated.Price)
	assert.Equal(t, "Cut", updated.Name)

	neg := -5.0
	_, err = svc.UpdateService(ctx, "shop-1", created.ID, models.ServiceUpdate{Price: &neg})
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = svc.SetServiceActive(ctx, "shop-1", created.ID, false)
	require.NoError(t, err)

	active, err := svc.ListServices(ctx, "shop-1", true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListServices(ctx, "shop-1", false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.SetServiceActive(ctx, "other-shop", created.ID, true)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
