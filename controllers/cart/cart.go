package cartcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Niharikabutola/ECO-CART/catalog"
	"github.com/Niharikabutola/ECO-CART/services"
)

// -------- Request Structs --------

type AddItemInput struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"required"`
}

type UpdateItemInput struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

type RemoveItemInput struct {
	ProductID int `json:"productId" binding:"required"`
}

// -------- Handlers --------

// POST /cart/add
func AddToCart(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		snapshot, err := cart.Add(c.Request.Context(), input.ProductID, input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidQuantity):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, catalog.ErrUpstreamUnavailable):
				log.Printf("❌ resolving product %d: %v", input.ProductID, err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to add item to cart"})
			case errors.Is(err, catalog.ErrMalformedRecord):
				log.Printf("❌ resolving product %d: %v", input.ProductID, err)
				c.JSON(http.StatusBadGateway, gin.H{"error": "Product does not exist"})
			default:
				log.Printf("❌ adding product %d: %v", input.ProductID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			}
			return
		}

		c.JSON(http.StatusOK, snapshot)
	}
}

// PUT /cart/update
func UpdateCartItem(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// quantity <= 0 removes the entry; an absent product id is a no-op
		c.JSON(http.StatusOK, cart.UpdateQuantity(input.ProductID, input.Quantity))
	}
}

// DELETE /cart/remove
func RemoveCartItem(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RemoveItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, cart.Remove(input.ProductID))
	}
}

// GET /cart
func GetCart(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cart.Snapshot())
	}
}

// GET /cart/rewards
func GetRewards(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := cart.Snapshot()
		points := services.TotalEcoPoints(snapshot)
		tier := services.RewardTier(points)

		c.JSON(http.StatusOK, gin.H{
			"totalItems":   services.TotalItems(snapshot),
			"totalPrice":   services.TotalPrice(snapshot),
			"ecoPoints":    points,
			"averageScore": services.AverageScore(snapshot),
			"tier":         tier.Name,
			"discount":     tier.Discount,
			"progress":     services.ProgressToNextMilestone(points),
		})
	}
}
