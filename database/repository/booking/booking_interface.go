package bookingRepo

import (
	"context"
	"errors"

	"shopsphere/models"
)

var (
	// ErrNotFound is returned when no booking has the requested id.
	ErrNotFound = errors.New("booking not found")
	// ErrPreconditionFailed is returned when a conditional transition matched no document.
	ErrPreconditionFailed = errors.New("booking precondition failed")
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking document.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its id.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Transition applies t atomically and returns the updated booking.
	// It returns ErrPreconditionFailed when the stored document does not satisfy t.
	Transition(ctx context.Context, id string, t models.BookingTransition) (*models.Booking, error)
	// ListByUser returns a user's bookings, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListByShop returns a shop's bookings, newest first. An empty status means all.
	ListByShop(ctx context.Context, shopID string, status models.BookingStatus) ([]models.Booking, error)
	// EarningsByShop sums the price of completed bookings.
	EarningsByShop(ctx context.Context, shopID string) (*models.ShopEarnings, error)
}
