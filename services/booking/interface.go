package booking

import (
	"context"

	bookingRepo "shopsphere/database/repository/booking"
	"shopsphere/models"
	"shopsphere/services/otp"

	"go.uber.org/zap"
)

// BookingService owns the booking state machine:
//
//	pending  --accept-->   accepted --complete(otp)--> completed
//	pending  --reject-->   rejected
//	pending|accepted --cancel--> cancelled
//
// rejected, cancelled and completed are terminal.
type BookingService interface {
	Create(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	Accept(ctx context.Context, bookingID string) (string, error)
	Reject(ctx context.Context, bookingID string) error
	Cancel(ctx context.Context, bookingID string) error
	Complete(ctx context.Context, bookingID, enteredOTP, storedOTP string, price float64) error

	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListShopBookings(ctx context.Context, shopID string, status models.BookingStatus) ([]models.Booking, error)
	ShopEarnings(ctx context.Context, shopID string) (*models.ShopEarnings, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	OTP    *otp.Generator
	Clock  Clock
	Logger *zap.Logger
}

func NewBookingService(repo bookingRepo.BookingRepository, gen *otp.Generator, clock Clock, logger *zap.Logger) *DefaultBookingService {
	if gen == nil {
		gen = otp.NewGenerator(nil)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{Repo: repo, OTP: gen, Clock: clock, Logger: logger}
}
