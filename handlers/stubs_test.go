package handlers

import (
	"context"
	"io"

	"shopsphere/models"
	"shopsphere/services/booking"
	"shopsphere/services/shop"
)

type stubBookings struct {
	bookings map[string]*models.Booking
	err      error

	completed struct {
		id, entered, stored string
		price               float64
	}
	cancelled string
}

var _ booking.BookingService = (*stubBookings)(nil)

func (s *stubBookings) Create(_ context.Context, in models.BookingInput) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Booking{ID: "new", UserID: in.UserID, ShopID: in.ShopID, Service: in.Service, Status: models.BookingPending}, nil
}

func (s *stubBookings) Accept(_ context.Context, id string) (string, error) {
	return "123456", s.err
}

func (s *stubBookings) Reject(_ context.Context, id string) error { return s.err }

func (s *stubBookings) Cancel(_ context.Context, id string) error {
	s.cancelled = id
	return s.err
}

func (s *stubBookings) Complete(_ context.Context, id, entered, stored string, price float64) error {
	s.completed.id, s.completed.entered, s.completed.stored, s.completed.price = id, entered, stored, price
	return s.err
}

func (s *stubBookings) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *stubBookings) ListUserBookings(context.Context, string) ([]models.Booking, error) {
	return []models.Booking{}, s.err
}

func (s *stubBookings) ListShopBookings(context.Context, string, models.BookingStatus) ([]models.Booking, error) {
	return []models.Booking{}, s.err
}

func (s *stubBookings) ShopEarnings(_ context.Context, shopID string) (*models.ShopEarnings, error) {
	return &models.ShopEarnings{ShopID: shopID}, s.err
}

type stubShops struct {
	shops   map[string]*models.Shop
	events  chan models.ShopActivation
	toggled struct {
		id      string
		current bool
	}
}

var _ shop.ShopService = (*stubShops)(nil)

func (s *stubShops) CreateShop(_ context.Context, owner string, in models.ShopInput) (*models.Shop, error) {
	return &models.Shop{ID: "new", OwnerID: owner, Name: in.Name}, nil
}

func (s *stubShops) GetShop(_ context.Context, id string) (*models.Shop, error) {
	sh, ok := s.shops[id]
	if !ok {
		return nil, shop.ErrShopNotFound
	}
	cp := *sh
	return &cp, nil
}

func (s *stubShops) UpdateShopProfile(ctx context.Context, id string, _ models.ShopProfileUpdate) (*models.Shop, error) {
	return s.GetShop(ctx, id)
}

func (s *stubShops) ListVisibleShops(context.Context) ([]models.Shop, error) {
	out := []models.Shop{}
	for _, sh := range s.shops {
		if sh.Visible() {
			out = append(out, *sh)
		}
	}
	return out, nil
}

func (s *stubShops) ListAllShops(context.Context) ([]models.Shop, error) {
	out := []models.Shop{}
	for _, sh := range s.shops {
		out = append(out, *sh)
	}
	return out, nil
}

func (s *stubShops) ToggleActive(_ context.Context, id string, current bool) (bool, error) {
	if _, ok := s.shops[id]; !ok {
		return false, shop.ErrShopNotFound
	}
	s.toggled.id, s.toggled.current = id, current
	return !current, nil
}

func (s *stubShops) SetShopImage(ctx context.Context, id string, _ io.Reader) (*models.Shop, error) {
	return s.GetShop(ctx, id)
}

func (s *stubShops) WatchShop(_ context.Context, id string) (<-chan models.ShopActivation, error) {
	if _, ok := s.shops[id]; !ok {
		return nil, shop.ErrShopNotFound
	}
	return s.events, nil
}
