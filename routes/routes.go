package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Niharikabutola/ECO-CART/catalog"
	"github.com/Niharikabutola/ECO-CART/events"
	"github.com/Niharikabutola/ECO-CART/services"
)

// SetupRoutes is the single entry-point that wires up the product, cart,
// order and event route groups.
func SetupRoutes(r *gin.Engine, cat *catalog.Client, cart *services.CartService, hub *events.Hub) {
	SetupProductRoutes(r, cat)

	SetupCartRoutes(r, cart)

	SetupOrderRoutes(r, cart)

	// websocket endpoint for real-time order and milestone events
	r.GET("/events/ws", hub.Handler)
}
