package middleware

import (
	"net/http"

	"shopsphere/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware admits HS256 tokens that carry role=admin.
func JWTAuthAdminMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Missing or invalid Authorization header"})
			return
		}

		adminID, err := utils.ExtractAdminFromToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Unauthorized admin access"})
			return
		}

		c.Set(ContextAdminID, adminID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
