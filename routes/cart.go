package routes

import (
	"github.com/gin-gonic/gin"

	cartcontroller "github.com/Niharikabutola/ECO-CART/controllers/cart"
	"github.com/Niharikabutola/ECO-CART/services"
)

func SetupCartRoutes(r *gin.Engine, cart *services.CartService) {
	group := r.Group("/cart")
	{
		// Current cart snapshot
		group.GET("", cartcontroller.GetCart(cart))

		// Add an item (resolves via the catalog provider if new)
		group.POST("/add", cartcontroller.AddToCart(cart))

		// Absolute quantity set; zero or below removes
		group.PUT("/update", cartcontroller.UpdateCartItem(cart))

		// Remove an item; absent ids are a no-op
		group.DELETE("/remove", cartcontroller.RemoveCartItem(cart))

		// Reward summary for the current cart
		group.GET("/rewards", cartcontroller.GetRewards(cart))
	}
}
