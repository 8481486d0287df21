package handlers

import (
	"net/http"

	"shopsphere/models"
	"shopsphere/services/booking"
	"shopsphere/services/shop"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle.
type BookingHandler struct {
	Bookings booking.BookingService
	Shops    shop.ShopService
}

func NewBookingHandler(bs booking.BookingService, ss shop.ShopService) *BookingHandler {
	return &BookingHandler{Bookings: bs, Shops: ss}
}

// CreateBooking books a service at a visible shop for the caller.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	input.UserID = callerUID(c)

	s, err := h.Shops.GetShop(c.Request.Context(), input.ShopID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.Visible() {
		respondError(c, shop.ErrShopNotFound)
		return
	}

	b, err := h.Bookings.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListUserBookings(c.Request.Context(), callerUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking is readable by the consumer and the shop owner. Only the
// consumer sees the OTP; the shop must obtain it from them at completion.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if b.UserID == callerUID(c) {
		c.JSON(http.StatusOK, b)
		return
	}
	if _, ok := ownedShop(c, h.Shops, b.ShopID); !ok {
		return
	}
	b.OTPCode = nil
	c.JSON(http.StatusOK, b)
}

// loadForShop fetches the booking and checks the caller owns its shop.
func (h *BookingHandler) loadForShop(c *gin.Context) (*models.Booking, bool) {
	b, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if _, ok := ownedShop(c, h.Shops, b.ShopID); !ok {
		return nil, false
	}
	return b, true
}

func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	b, ok := h.loadForShop(c)
	if !ok {
		return
	}
	if _, err := h.Bookings.Accept(c.Request.Context(), b.ID); err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("booking accepted", zap.String("bookingId", b.ID))
	c.JSON(http.StatusOK, gin.H{"bookingId": b.ID, "status": models.BookingAccepted})
}

func (h *BookingHandler) RejectBooking(c *gin.Context) {
	b, ok := h.loadForShop(c)
	if !ok {
		return
	}
	if err := h.Bookings.Reject(c.Request.Context(), b.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": b.ID, "status": models.BookingRejected})
}

// CancelBooking is the consumer's exit.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if b.UserID != callerUID(c) {
		respondError(c, errForbidden)
		return
	}
	if err := h.Bookings.Cancel(c.Request.Context(), b.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": b.ID, "status": models.BookingCancelled})
}

type completeBookingRequest struct {
	OTP   string   `json:"otp" binding:"required"`
	Price *float64 `json:"price"`
}

// CompleteBooking checks the code the consumer handed to the shop.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	var req completeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	b, ok := h.loadForShop(c)
	if !ok {
		return
	}

	if b.Status != models.BookingAccepted {
		respondError(c, &booking.TransitionError{BookingID: b.ID, Current: b.Status, Target: models.BookingCompleted})
		return
	}

	stored := ""
	if b.OTPCode != nil {
		stored = *b.OTPCode
	}
	price := b.Price
	if req.Price != nil {
		price = *req.Price
	}
	if err := h.Bookings.Complete(c.Request.Context(), b.ID, req.OTP, stored, price); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookingId": b.ID,
		"status":    models.BookingCompleted,
		"price":     price,
	})
}
