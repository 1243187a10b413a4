package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salespoint-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. On success the
// cashier and shop IDs from the token claims are stored on the request
// context for the handlers.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("cashier_id", claims.CashierID)
		c.Set("shop_id", claims.ShopID)
		c.Set("cashier_email", claims.Email)

		c.Next()
	}
}
