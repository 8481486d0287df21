package booking

import (
	"context"
	"errors"

	bookingRepo "shopsphere/database/repository/booking"
	"shopsphere/models"
)

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultBookingService) ListShopBookings(ctx context.Context, shopID string, status models.BookingStatus) ([]models.Booking, error) {
	if status != "" && !status.Valid() {
		return nil, ValidationError{Field: "status", Msg: "unknown booking status"}
	}
	return s.Repo.ListByShop(ctx, shopID, status)
}

func (s *DefaultBookingService) ShopEarnings(ctx context.Context, shopID string) (*models.ShopEarnings, error) {
	return s.Repo.EarningsByShop(ctx, shopID)
}
