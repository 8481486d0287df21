package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers and the auth middlewares in front of them.
type HandlerBundle struct {
	Bookings *BookingHandler
	Shops    *ShopHandler
	Catalog  *CatalogHandler
	Reviews  *ReviewHandler
	Users    *UserHandler
	Admin    *AdminHandler
	OTP      *OTPHandler

	UserAuth  gin.HandlerFunc
	AdminAuth gin.HandlerFunc
}
