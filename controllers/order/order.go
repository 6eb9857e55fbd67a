package ordercontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Niharikabutola/ECO-CART/models"
	"github.com/Niharikabutola/ECO-CART/services"
)

// CreateOrderRequest mirrors the checkout body the storefront sends. The
// items and totals are computed client-side; the server recomputes both from
// its own cart snapshot and only uses the client values to detect drift.
type CreateOrderRequest struct {
	Items       []models.CartItem `json:"items"`
	TotalAmount float64           `json:"totalAmount"`
	EcoPoints   int               `json:"ecoPoints"`
}

// POST /orders/create
func CreateOrder(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, _ := cart.Checkout(req.TotalAmount, req.EcoPoints)
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders
func GetOrders(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cart.Orders())
	}
}
