package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Niharikabutola/ECO-CART/catalog"
	productcontroller "github.com/Niharikabutola/ECO-CART/controllers/product"
)

func SetupProductRoutes(r *gin.Engine, cat *catalog.Client) {
	r.GET("/products", productcontroller.GetProducts(cat))
}
