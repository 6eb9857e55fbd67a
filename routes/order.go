package routes

import (
	"github.com/gin-gonic/gin"

	ordercontroller "github.com/Niharikabutola/ECO-CART/controllers/order"
	"github.com/Niharikabutola/ECO-CART/services"
)

func SetupOrderRoutes(r *gin.Engine, cart *services.CartService) {
	orders := r.Group("/orders")
	{
		// Freeze the cart into a new order
		orders.POST("/create", ordercontroller.CreateOrder(cart))

		// Fetch the full order log
		orders.GET("", ordercontroller.GetOrders(cart))

		// Download the order log as a spreadsheet
		orders.GET("/export", ordercontroller.ExportOrdersToExcel(cart))
	}
}
