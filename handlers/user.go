package handlers

import (
	"net/http"

	"shopsphere/models"
	"shopsphere/services/user"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Users user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{Users: us}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.Users.GetProfile(c.Request.Context(), callerUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var input models.UserProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.Users.UpsertProfile(c.Request.Context(), callerUID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
