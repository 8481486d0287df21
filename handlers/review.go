package handlers

import (
	"net/http"

	"shopsphere/services/review"
	"shopsphere/services/shop"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	Reviews review.ReviewService
	Shops   shop.ShopService
}

func NewReviewHandler(rs review.ReviewService, ss shop.ShopService) *ReviewHandler {
	return &ReviewHandler{Reviews: rs, Shops: ss}
}

// ListReviews returns the reviews of a shop together with its rating summary.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	shopID := c.Param("id")
	reviews, err := h.Reviews.ListReviews(c.Request.Context(), shopID)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := h.Reviews.RatingSummary(c.Request.Context(), shopID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "reviews": reviews})
}

type submitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s, err := h.Shops.GetShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	rv, err := h.Reviews.SubmitReview(c.Request.Context(), s.ID, callerUID(c), req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}
