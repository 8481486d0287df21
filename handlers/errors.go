package handlers

import (
	"errors"
	"net/http"

	"shopsphere/services/booking"
	"shopsphere/services/catalog"
	"shopsphere/services/otp"
	"shopsphere/services/review"
	"shopsphere/services/shop"
	"shopsphere/services/user"
	"shopsphere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errForbidden = errors.New("caller does not own this resource")

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) (int, string) {
	switch {
	case booking.IsValidation(err) || isAny(err,
		booking.ErrEmptyBookingID,
		shop.ErrShopNameEmpty,
		catalog.ErrNameRequired,
		catalog.ErrNegativePrice,
		review.ErrInvalidRating,
		user.ErrNameRequired,
		user.ErrInvalidEmail,
		otp.ErrInvalidEmail,
	):
		return http.StatusBadRequest, "Invalid request"
	case isAny(err, booking.ErrInvalidOTP, otp.ErrOTPMismatch):
		return http.StatusUnprocessableEntity, "Invalid OTP"
	case errors.Is(err, otp.ErrOTPExpired):
		return http.StatusGone, "OTP expired"
	case isAny(err, booking.ErrBookingNotFound, shop.ErrShopNotFound, catalog.ErrServiceNotFound, user.ErrUserNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, booking.ErrInvalidTransition):
		return http.StatusConflict, "Invalid booking transition"
	case errors.Is(err, errForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, shop.ErrNoMediaStore):
		return http.StatusServiceUnavailable, "Media storage unavailable"
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

// respondError writes the mapped status. Details are only exposed for client errors.
func respondError(c *gin.Context, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		getLogger(c).Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, status, message, "")
		return
	}
	utils.JSONError(c, status, message, err.Error())
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}
