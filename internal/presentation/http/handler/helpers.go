package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCashierID extracts the authenticated cashier's ID from the Gin context
func GetCashierID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("cashier_id")
	if !exists {
		return nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// GetShopID extracts the authenticated cashier's shop ID from the Gin context
func GetShopID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("shop_id")
	if !exists {
		return nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// GetSessionID returns the terminal session that scopes the cart. Clients
// pass X-Session-ID so several terminals under one cashier login keep
// separate carts; without it the cart is scoped to the cashier.
func GetSessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		return sid
	}
	if id := GetCashierID(c); id != nil {
		return id.String()
	}
	return ""
}
