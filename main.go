package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Niharikabutola/ECO-CART/catalog"
	"github.com/Niharikabutola/ECO-CART/events"
	"github.com/Niharikabutola/ECO-CART/middleware"
	"github.com/Niharikabutola/ECO-CART/routes"
	"github.com/Niharikabutola/ECO-CART/services"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Catalog provider client with a bounded timeout
	cat := catalog.NewClient(
		envOr("CATALOG_BASE_URL", "https://fakestoreapi.com"),
		&http.Client{Timeout: envSeconds("CATALOG_TIMEOUT", 10)},
		catalog.NewEnricher(time.Now().UnixNano()),
		newCatalogCache(),
		envSeconds("CATALOG_CACHE_TTL", 60),
	)

	// Event hub and the single process-wide cart
	hub := events.NewHub()
	cart := services.NewCartService(cat, hub)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID)

	// Register routes
	routes.SetupRoutes(r, cat, cart, hub)

	port := envOr("PORT", "5000")
	log.Printf("✅ Backend running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

// newCatalogCache picks Redis when REDIS_ADDR is set, the in-process cache
// otherwise.
func newCatalogCache() catalog.Cache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return catalog.NewMemoryCache()
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	log.Printf("✅ Catalog cache backed by Redis at %s", addr)
	return catalog.NewRedisCache(client)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envSeconds(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
		log.Printf("⚠️ Invalid %s=%q, using default %ds", key, v, fallback)
	}
	return time.Duration(fallback) * time.Second
}
