package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/SickWater/clothing-store/config"
	"github.com/SickWater/clothing-store/handlers"
	"github.com/SickWater/clothing-store/middleware"
	"github.com/SickWater/clothing-store/services"
	"github.com/SickWater/clothing-store/store"
	"github.com/SickWater/clothing-store/utils"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()
	utils.InitJWT(cfg.JWTSecret, cfg.JWTTTL)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// Stores
	productStore := store.NewProductStore(db)
	cartStore := store.NewCartStore(db)
	orderStore := store.NewOrderStore(db)
	checkoutStore := store.NewCheckoutStore(db)
	userStore := store.NewUserStore(db)
	wishlistStore := store.NewWishlistStore(db)

	// Services
	catalogService := services.NewCatalogService(productStore)
	cartService := services.NewCartService(cartStore, productStore)
	orderService := services.NewOrderService(checkoutStore, orderStore)
	stockService := services.NewStockService(productStore)

	// Handlers
	authHandler := handlers.NewAuthHandler(userStore)
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	stockHandler := handlers.NewStockHandler(stockService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistStore, productStore)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", handlers.HealthCheck(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Public routes (no authentication required)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/products", productHandler.GetAllProducts)
	api.GET("/products/:id", productHandler.GetProduct)

	// Protected routes (authentication required)
	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		// Cart routes
		auth.GET("/cart", cartHandler.GetCart)
		auth.POST("/cart/add", cartHandler.AddToCart)
		auth.POST("/cart/update", cartHandler.UpdateCartItem)
		auth.POST("/cart/clear", cartHandler.ClearCart)

		// Checkout and own orders
		auth.POST("/orders", orderHandler.CreateOrder)
		auth.GET("/orders/my", orderHandler.GetMyOrders)
		auth.POST("/orders/:id/cancel", orderHandler.CancelOrder)

		// Wishlist routes
		auth.GET("/wishlist", wishlistHandler.GetWishlist)
		auth.POST("/wishlist/add", wishlistHandler.AddToWishlist)
		auth.POST("/wishlist/remove", wishlistHandler.RemoveFromWishlist)
		auth.POST("/wishlist/clear", wishlistHandler.ClearWishlist)
	}

	// Admin-only routes
	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminRequired())
	{
		// Product management
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.PATCH("/products/:id/stock", stockHandler.AdjustStock)

		// Order management
		admin.GET("/orders", orderHandler.GetAllOrders)
		admin.GET("/orders/:id", orderHandler.GetOrder)
		admin.PUT("/orders/:id/deliver", orderHandler.DeliverOrder)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server shutdown complete")
}
