// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/fanstore/storefront-backend/internal/config"
	"github.com/fanstore/storefront-backend/internal/handlers"
	"github.com/fanstore/storefront-backend/internal/middleware"
	"github.com/fanstore/storefront-backend/internal/repository"
	"github.com/fanstore/storefront-backend/internal/services"
)

// Initialize builds the engine. Background work started here (rate limiter
// cleanup) stops when ctx is cancelled.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Repositories
	productRepo := repository.NewProductRepository(db)
	tagRepo := repository.NewTagRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	txManager := repository.NewTxManager(db)

	// Services
	tagPricingService := services.NewTagPricingService(tagRepo)
	pricingService := services.NewPricingService(productRepo, tagPricingService)
	orderItemService := services.NewOrderItemService(orderItemRepo, orderRepo, pricingService)
	orderService := services.NewOrderService(orderRepo, userRepo, txManager)
	productService := services.NewProductService(productRepo, tagRepo)
	userService := services.NewUserService(userRepo)

	// Handlers
	orderItemHandler := handlers.NewOrderItemHandler(orderItemService, pricingService)
	orderHandler := handlers.NewOrderHandler(orderService, orderItemService)
	productHandler := handlers.NewProductHandler(productService)
	userHandler := handlers.NewUserHandler(userService)

	metrics := middleware.NewMetrics()

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		limiter.StartCleanup(ctx)
		r.Use(limiter.Middleware())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": "1.0.0",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		orderItems := api.Group("/orderItems")
		{
			orderItems.GET("", orderItemHandler.ListOrderItems)
			orderItems.GET("/:id", orderItemHandler.GetOrderItem)
			orderItems.POST("/create", orderItemHandler.CreateOrderItem)
			orderItems.POST("/quote", orderItemHandler.QuoteOrderItem)
			orderItems.PUT("/:id", orderItemHandler.UpdateOrderItem)
			orderItems.DELETE("/:id", orderItemHandler.DeleteOrderItem)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/:id/items", orderHandler.GetOrderItems)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/tags", productHandler.ListTags)
		api.GET("/users/:id", userHandler.GetUser)
	}

	return r
}
