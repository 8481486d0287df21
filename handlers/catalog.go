package handlers

import (
	"net/http"

	"shopsphere/models"
	"shopsphere/services/catalog"
	"shopsphere/services/shop"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog catalog.CatalogService
	Shops   shop.ShopService
}

func NewCatalogHandler(cs catalog.CatalogService, ss shop.ShopService) *CatalogHandler {
	return &CatalogHandler{Catalog: cs, Shops: ss}
}

// ListServices returns active services; the owner may pass ?all=true.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	s, err := h.Shops.GetShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	activeOnly := !(c.Query("all") == "true" && s.OwnerID == callerUID(c))

	services, err := h.Catalog.ListServices(c.Request.Context(), s.ID, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

type addServiceRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

func (h *CatalogHandler) AddService(c *gin.Context) {
	var req addServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if _, ok := ownedShop(c, h.Shops, c.Param("id")); !ok {
		return
	}
	svc, err := h.Catalog.AddService(c.Request.Context(), c.Param("id"), req.Name, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

type updateServiceRequest struct {
	models.ServiceUpdate
	Active *bool `json:"active"`
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	shopID, serviceID := c.Param("id"), c.Param("serviceId")
	if _, ok := ownedShop(c, h.Shops, shopID); !ok {
		return
	}

	svc, err := h.Catalog.UpdateService(c.Request.Context(), shopID, serviceID, req.ServiceUpdate)
	if err == nil && req.Active != nil {
		svc, err = h.Catalog.SetServiceActive(c.Request.Context(), shopID, serviceID, *req.Active)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
