package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/assistant"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/session"
)

func main() {
	config.Load()

	if config.AppEnv.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is required")
	}

	cat, err := loadCatalog()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("catalog loaded with %d products", cat.Len())

	sessions := session.NewStore(config.AppEnv.SessionTTL)
	sessions.StartSweeper(context.Background(), 10*time.Minute)

	gemini := assistant.NewClient(config.AppEnv.GeminiAPIKey, config.AppEnv.GeminiModel)

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.POST("/session", handlers.CreateSession(sessions, config.AppEnv.SessionSecret, config.AppEnv.SessionTTL))

	r.GET("/products", handlers.GetProducts(cat))
	r.GET("/products/:id", handlers.GetProduct(cat))
	r.GET("/categories", handlers.GetCategories(cat))
	r.GET("/brands", handlers.GetBrands(cat))

	r.POST("/api/generate", handlers.RelayGenerate(gemini))

	shopper := r.Group("/")
	shopper.Use(middleware.SessionAuth(config.AppEnv.SessionSecret, sessions))
	{
		shopper.GET("/cart", handlers.GetCart())
		shopper.POST("/cart/items", handlers.AddCartItem(cat))
		shopper.PUT("/cart/items/:productId", handlers.UpdateCartItem())
		shopper.DELETE("/cart/items/:productId", handlers.RemoveCartItem())
		shopper.DELETE("/cart", handlers.ClearCart())
		shopper.POST("/cart/coupon", handlers.ApplyCoupon())

		shopper.GET("/favorites", handlers.GetFavorites())
		shopper.POST("/favorites/:productId", handlers.ToggleFavorite())

		shopper.POST("/checkout/validate", handlers.ValidateCheckout())
		shopper.POST("/checkout", handlers.SubmitCheckout())

		shopper.GET("/navigation", handlers.GetNavigation(cat))
		shopper.POST("/navigation/goto", handlers.GoToPage(cat))
		shopper.POST("/navigation/select-product", handlers.SelectProduct(cat))
		shopper.POST("/navigation/select-category", handlers.SelectCategory(cat))
		shopper.POST("/navigation/search", handlers.SearchProducts(cat))

		shopper.GET("/currency", handlers.GetCurrency())
		shopper.PUT("/currency", handlers.SetCurrency())

		shopper.POST("/assistant/chat", handlers.ChatWithAssistant(gemini))
		shopper.GET("/assistant/messages", handlers.GetAssistantMessages())
	}

	r.Run(":" + config.AppEnv.Port)
}

// loadCatalog prefers the Mongo catalog collection when configured and
// falls back to the embedded seed data. Either way the catalog is read
// once and held immutable in memory.
func loadCatalog() (*catalog.Catalog, error) {
	if config.AppEnv.MongoURI == "" {
		return catalog.Load()
	}

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		return nil, err
	}
	db := client.Database(config.AppEnv.DBName)
	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureCatalogIndexes(db); err != nil {
		log.Printf("catalog index warning: %v", err)
	}

	cat, err := catalog.LoadFromMongo(context.Background(), db)
	if err != nil {
		return nil, err
	}

	// The catalog lives fully in memory from here; the connection has no
	// further use.
	if err := client.Disconnect(context.Background()); err != nil {
		log.Printf("mongo disconnect warning: %v", err)
	}
	return cat, nil
}
