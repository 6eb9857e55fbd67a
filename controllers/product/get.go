package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Niharikabutola/ECO-CART/catalog"
)

// GetProducts lists the catalog with enrichment applied per record. Records
// the provider returns malformed are skipped inside the catalog client; an
// unreachable provider surfaces as 503 so the client can offer a retry.
func GetProducts(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := cat.Products(c.Request.Context())
		if err != nil {
			log.Printf("❌ fetching products: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
