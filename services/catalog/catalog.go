package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	catalogRepo "shopsphere/database/repository/catalog"
	"shopsphere/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrNameRequired    = errors.New("service name is required")
	ErrNegativePrice   = errors.New("service price must not be negative")
)

// CatalogService manages the services a shop offers.
type CatalogService interface {
	AddService(ctx context.Context, shopID, name string, price float64) (*models.Service, error)
	UpdateService(ctx context.Context, shopID, serviceID string, upd models.ServiceUpdate) (*models.Service, error)
	SetServiceActive(ctx context.Context, shopID, serviceID string, active bool) (*models.Service, error)
	ListServices(ctx context.Context, shopID string, activeOnly bool) ([]models.Service, error)
}

type DefaultCatalogService struct {
	Repo   catalogRepo.ServiceRepository
	Now    func() time.Time
	Logger *zap.Logger
}

func NewCatalogService(repo catalogRepo.ServiceRepository, logger *zap.Logger) *DefaultCatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultCatalogService{Repo: repo, Now: func() time.Time { return time.Now().UTC() }, Logger: logger}
}

func (s *DefaultCatalogService) AddService(ctx context.Context, shopID, name string, price float64) (*models.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	now := s.Now()
	svc := &models.Service{
		ID:        uuid.New().String(),
		ShopID:    shopID,
		Name:      name,
		Price:     price,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	s.Logger.Info("catalog service added", zap.String("shopId", shopID), zap.String("serviceId", svc.ID))
	return svc, nil
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, shopID, serviceID string, upd models.ServiceUpdate) (*models.Service, error) {
	return s.modify(ctx, shopID, serviceID, func(svc *models.Service) error {
		if upd.Name != nil {
			name := strings.TrimSpace(*upd.Name)
			if name == "" {
				return ErrNameRequired
			}
			svc.Name = name
		}
		if upd.Price != nil {
			if *upd.Price < 0 {
				return ErrNegativePrice
			}
			svc.Price = *upd.Price
		}
		return nil
	})
}

func (s *DefaultCatalogService) SetServiceActive(ctx context.Context, shopID, serviceID string, active bool) (*models.Service, error) {
	return s.modify(ctx, shopID, serviceID, func(svc *models.Service) error {
		svc.Active = active
		return nil
	})
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, shopID string, activeOnly bool) ([]models.Service, error) {
	return s.Repo.ListByShop(ctx, shopID, activeOnly)
}

func (s *DefaultCatalogService) modify(ctx context.Context, shopID, serviceID string, apply func(*models.Service) error) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, shopID, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if err := apply(svc); err != nil {
		return nil, err
	}
	svc.UpdatedAt = s.Now()
	if err := s.Repo.Update(ctx, svc); err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}
