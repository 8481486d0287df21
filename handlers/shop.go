package handlers

import (
	"net/http"

	"shopsphere/models"
	"shopsphere/services/booking"
	"shopsphere/services/shop"

	"github.com/gin-gonic/gin"
)

// ShopHandler serves shop profiles and shop-side booking views.
type ShopHandler struct {
	Shops    shop.ShopService
	Bookings booking.BookingService
}

func NewShopHandler(ss shop.ShopService, bs booking.BookingService) *ShopHandler {
	return &ShopHandler{Shops: ss, Bookings: bs}
}

func (h *ShopHandler) CreateShop(c *gin.Context) {
	var input models.ShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	s, err := h.Shops.CreateShop(c.Request.Context(), callerUID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// ListShops returns the consumer listing, hidden shops excluded.
func (h *ShopHandler) ListShops(c *gin.Context) {
	shops, err := h.Shops.ListVisibleShops(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shops)
}

// viewableShop loads the shop named in the path. Deactivated shops are
// reported as missing to everyone but their owner.
func (h *ShopHandler) viewableShop(c *gin.Context) (*models.Shop, bool) {
	s, err := h.Shops.GetShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if !s.Visible() && s.OwnerID != callerUID(c) {
		respondError(c, shop.ErrShopNotFound)
		return nil, false
	}
	return s, true
}

func (h *ShopHandler) GetShop(c *gin.Context) {
	s, ok := h.viewableShop(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *ShopHandler) UpdateShop(c *gin.Context) {
	var upd models.ShopProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	if _, ok := ownedShop(c, h.Shops, c.Param("id")); !ok {
		return
	}
	s, err := h.Shops.UpdateShopProfile(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// UploadShopImage expects a multipart "image" field.
func (h *ShopHandler) UploadShopImage(c *gin.Context) {
	if _, ok := ownedShop(c, h.Shops, c.Param("id")); !ok {
		return
	}
	fh, err := c.FormFile("image")
	if err != nil {
		badRequest(c, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c, err)
		return
	}
	defer f.Close()

	s, err := h.Shops.SetShopImage(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// WatchShop streams activation changes as server-sent events, starting
// with the current state.
func (h *ShopHandler) WatchShop(c *gin.Context) {
	ctx := c.Request.Context()
	current, ok := h.viewableShop(c)
	if !ok {
		return
	}
	events, err := h.Shops.WatchShop(ctx, current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent("activation", models.ShopActivation{
		ShopID:    current.ID,
		Visible:   current.Visible(),
		UpdatedAt: current.UpdatedAt,
	})
	c.Writer.Flush()

	for {
		select {
		case evt, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent("activation", evt)
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}

// ListShopBookings is the owner's queue, optionally filtered by ?status=.
func (h *ShopHandler) ListShopBookings(c *gin.Context) {
	if _, ok := ownedShop(c, h.Shops, c.Param("id")); !ok {
		return
	}
	bookings, err := h.Bookings.ListShopBookings(c.Request.Context(), c.Param("id"), models.BookingStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *ShopHandler) ShopEarnings(c *gin.Context) {
	if _, ok := ownedShop(c, h.Shops, c.Param("id")); !ok {
		return
	}
	earnings, err := h.Bookings.ShopEarnings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, earnings)
}
