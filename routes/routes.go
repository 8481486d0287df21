package routes

import (
	"time"

	"shopsphere/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterAuthRoutes registers the public email OTP endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth/email-otp")
	{
		api.POST("/request", hb.OTP.RequestEmailOTP)
		api.POST("/verify", hb.OTP.VerifyEmailOTP)
	}
}

// RegisterUserRoutes registers the caller's own profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(hb.UserAuth)
		api.GET("/me", hb.Users.GetMe)
		api.PUT("/me", hb.Users.UpdateMe)
	}
}

// RegisterShopRoutes registers shop profiles, catalog, reviews and shop-side booking views.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops")
	{
		api.Use(hb.UserAuth)
		api.POST("", hb.Shops.CreateShop)
		api.GET("", hb.Shops.ListShops)
		api.GET("/:id", hb.Shops.GetShop)
		api.PATCH("/:id", hb.Shops.UpdateShop)
		api.POST("/:id/image", hb.Shops.UploadShopImage)
		api.GET("/:id/watch", hb.Shops.WatchShop)

		api.GET("/:id/services", hb.Catalog.ListServices)
		api.POST("/:id/services", hb.Catalog.AddService)
		api.PATCH("/:id/services/:serviceId", hb.Catalog.UpdateService)

		api.GET("/:id/reviews", hb.Reviews.ListReviews)
		api.POST("/:id/reviews", hb.Reviews.SubmitReview)

		api.GET("/:id/bookings", hb.Shops.ListShopBookings)
		api.GET("/:id/earnings", hb.Shops.ShopEarnings)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(hb.UserAuth)
		bookingGroup.POST("", hb.Bookings.CreateBooking)
		bookingGroup.GET("", hb.Bookings.ListMyBookings)
		bookingGroup.GET("/:id", hb.Bookings.GetBooking)
		bookingGroup.POST("/:id/accept", hb.Bookings.AcceptBooking)
		bookingGroup.POST("/:id/reject", hb.Bookings.RejectBooking)
		bookingGroup.POST("/:id/cancel", hb.Bookings.CancelBooking)
		bookingGroup.POST("/:id/complete", hb.Bookings.CompleteBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(hb.AdminAuth)
		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)
		adminGroup.GET("/shops", hb.Admin.GetAllShopsHandler)
		adminGroup.POST("/shops/:id/toggle-active", hb.Admin.ToggleShopActiveHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterShopRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
