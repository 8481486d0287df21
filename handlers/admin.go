package handlers

import (
	"net/http"

	"shopsphere/services/shop"
	"shopsphere/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	UserService user.UserService
	ShopService shop.ShopService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, ss shop.ShopService) *AdminHandler {
	return &AdminHandler{UserService: us, ShopService: ss}
}

// GetAllUsersHandler returns every user profile.
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAllShopsHandler returns every shop, hidden ones included.
func (ah *AdminHandler) GetAllShopsHandler(c *gin.Context) {
	shops, err := ah.ShopService.ListAllShops(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shops)
}

type toggleActiveRequest struct {
	CurrentStatus *bool `json:"currentStatus" binding:"required"`
}

// ToggleShopActiveHandler flips the shop's visibility relative to currentStatus.
func (ah *AdminHandler) ToggleShopActiveHandler(c *gin.Context) {
	var req toggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	shopID := c.Param("id")
	newStatus, err := ah.ShopService.ToggleActive(c.Request.Context(), shopID, *req.CurrentStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("admin toggled shop",
		zap.String("shopId", shopID),
		zap.String("adminId", c.GetString("adminID")),
		zap.Bool("isActive", newStatus),
	)
	c.JSON(http.StatusOK, gin.H{"shopId": shopID, "isActive": newStatus})
}
