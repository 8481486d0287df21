package handlers

import (
	"shopsphere/models"
	"shopsphere/services/shop"

	"github.com/gin-gonic/gin"
)

func callerUID(c *gin.Context) string {
	return c.GetString("uid")
}

// ownedShop loads shopID and writes a 403 unless the caller owns it.
func ownedShop(c *gin.Context, shops shop.ShopService, shopID string) (*models.Shop, bool) {
	s, err := shops.GetShop(c.Request.Context(), shopID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if s.OwnerID != callerUID(c) {
		respondError(c, errForbidden)
		return nil, false
	}
	return s, true
}
