package booking

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	bookingRepo "shopsphere/database/repository/booking"
	"shopsphere/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create inserts a pending booking with no OTP.
func (s *DefaultBookingService) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	switch {
	case strings.TrimSpace(input.UserID) == "":
		return nil, ValidationError{Field: "userId", Msg: "is required"}
	case strings.TrimSpace(input.ShopID) == "":
		return nil, ValidationError{Field: "shopId", Msg: "is required"}
	case strings.TrimSpace(input.Service) == "":
		return nil, ValidationError{Field: "service", Msg: "is required"}
	}

	now := s.Clock.Now()
	booking := &models.Booking{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		ShopID:    input.ShopID,
		Service:   input.Service,
		Price:     input.Price,
		Notes:     input.Notes,
		Status:    models.BookingPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		s.Logger.Error("failed to create booking", zap.String("shopId", input.ShopID), zap.Error(err))
		return nil, err
	}

	s.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("userId", booking.UserID),
		zap.String("shopId", booking.ShopID),
	)
	return booking, nil
}

// Accept mints an OTP and moves a pending booking to accepted.
func (s *DefaultBookingService) Accept(ctx context.Context, bookingID string) (string, error) {
	code := s.OTP.Generate()
	_, err := s.transition(ctx, bookingID, models.BookingTransition{
		From:    []models.BookingStatus{models.BookingPending},
		To:      models.BookingAccepted,
		At:      s.Clock.Now(),
		OTPCode: &code,
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// Reject moves a pending booking to rejected.
func (s *DefaultBookingService) Reject(ctx context.Context, bookingID string) error {
	_, err := s.transition(ctx, bookingID, models.BookingTransition{
		From: []models.BookingStatus{models.BookingPending},
		To:   models.BookingRejected,
		At:   s.Clock.Now(),
	})
	return err
}

// Cancel is the consumer-side exit from pending or accepted.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID string) error {
	if strings.TrimSpace(bookingID) == "" {
		return ErrEmptyBookingID
	}
	_, err := s.transition(ctx, bookingID, models.BookingTransition{
		From: []models.BookingStatus{models.BookingPending, models.BookingAccepted},
		To:   models.BookingCancelled,
		At:   s.Clock.Now(),
	})
	return err
}

// Complete finishes an accepted booking when enteredOTP equals storedOTP.
// The stored document must carry the same code, so a stale storedOTP
// from the caller cannot complete the booking either. A mismatch leaves
// the booking untouched and may be retried.
// price is informational; earnings are derived by readers from the booking itself.
func (s *DefaultBookingService) Complete(ctx context.Context, bookingID, enteredOTP, storedOTP string, price float64) error {
	if enteredOTP == "" || subtle.ConstantTimeCompare([]byte(enteredOTP), []byte(storedOTP)) != 1 {
		return s.otpMismatch(ctx, bookingID)
	}

	updated, err := s.transition(ctx, bookingID, models.BookingTransition{
		From:       []models.BookingStatus{models.BookingAccepted},
		To:         models.BookingCompleted,
		At:         s.Clock.Now(),
		RequireOTP: &enteredOTP,
	})
	if err != nil {
		return err
	}
	s.Logger.Info("booking completed",
		zap.String("bookingId", updated.ID),
		zap.Float64("price", price),
	)
	return nil
}

// otpMismatch reports a failed code check. Only an accepted booking can
// have a wrong code; any other state is an illegal completion.
func (s *DefaultBookingService) otpMismatch(ctx context.Context, bookingID string) error {
	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if current.Status != models.BookingAccepted {
		s.Logger.Warn("rejected booking transition",
			zap.String("bookingId", bookingID),
			zap.String("from", string(current.Status)),
			zap.String("to", string(models.BookingCompleted)),
		)
		return &TransitionError{BookingID: bookingID, Current: current.Status, Target: models.BookingCompleted}
	}
	s.Logger.Warn("otp mismatch on completion", zap.String("bookingId", bookingID))
	return ErrInvalidOTP
}

// transition applies t as one conditional update and classifies a failed precondition.
func (s *DefaultBookingService) transition(ctx context.Context, bookingID string, t models.BookingTransition) (*models.Booking, error) {
	updated, err := s.Repo.Transition(ctx, bookingID, t)
	if err == nil {
		s.Logger.Info("booking transitioned",
			zap.String("bookingId", bookingID),
			zap.String("to", string(t.To)),
			zap.Int("version", updated.Version),
		)
		return updated, nil
	}
	if !errors.Is(err, bookingRepo.ErrPreconditionFailed) {
		s.Logger.Error("booking transition failed", zap.String("bookingId", bookingID), zap.Error(err))
		return nil, err
	}

	current, getErr := s.Repo.GetByID(ctx, bookingID)
	if getErr != nil {
		if errors.Is(getErr, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, getErr
	}
	if t.RequireOTP != nil && current.Status == models.BookingAccepted {
		return nil, ErrInvalidOTP
	}

	s.Logger.Warn("rejected booking transition",
		zap.String("bookingId", bookingID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(t.To)),
	)
	return nil, &TransitionError{BookingID: bookingID, Current: current.Status, Target: t.To}
}
