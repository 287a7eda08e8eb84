package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/delispi/storefront-api/docs"
	"github.com/delispi/storefront-api/internal/api/handler"
	"github.com/delispi/storefront-api/internal/api/middleware"
	"github.com/delispi/storefront-api/internal/core/service"
	"github.com/delispi/storefront-api/internal/infrastructure/config"
	mongodb "github.com/delispi/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/delispi/storefront-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	addressRepo := mongodb.NewAddressRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, log)
	orderService := service.NewOrderService(orderRepo, userRepo, log)
	accountService := service.NewAccountService(userRepo, addressRepo, productRepo, log)
	statsService := service.NewStatsService(orderRepo, userRepo, productRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	accountHandler := handler.NewAccountHandler(accountService, authService)
	adminHandler := handler.NewAdminHandler(statsService, accountService)
	contactHandler := handler.NewContactHandler(log)

	authRequired := middleware.Auth(authService)
	adminOnly := middleware.RequireAdmin()

	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// --- API routes ---
	apiGroup := e.Group("/api", middleware.RateLimit(limiter, log))

	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	apiGroup.GET("/products", productHandler.List)
	apiGroup.GET("/products/:id", productHandler.Get)
	apiGroup.GET("/categories", productHandler.Categories)
	apiGroup.POST("/contact", contactHandler.Submit)

	apiGroup.POST("/orders", orderHandler.Create, authRequired)
	apiGroup.GET("/orders", orderHandler.ListMine, authRequired)

	users := apiGroup.Group("/users", authRequired)
	users.GET("/me", accountHandler.Me)
	users.PUT("/profile", accountHandler.UpdateProfile)
	users.PUT("/password", accountHandler.ChangePassword)
	users.GET("/addresses", accountHandler.ListAddresses)
	users.POST("/addresses", accountHandler.AddAddress)
	users.PUT("/addresses/:id", accountHandler.UpdateAddress)
	users.DELETE("/addresses/:id", accountHandler.DeleteAddress)
	users.GET("/wishlist", accountHandler.Wishlist)
	users.POST("/wishlist/:productId", accountHandler.AddToWishlist)
	users.DELETE("/wishlist/:productId", accountHandler.RemoveFromWishlist)

	admin := apiGroup.Group("/admin", authRequired, adminOnly)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/charts", adminHandler.Charts)
	admin.GET("/products", productHandler.AdminList)
	admin.GET("/products/:id", productHandler.AdminGet)
	admin.POST("/products", productHandler.AdminCreate)
	admin.PUT("/products/:id", productHandler.AdminUpdate)
	admin.DELETE("/products/:id", productHandler.AdminDelete)
	admin.GET("/orders", orderHandler.AdminList)
	admin.GET("/orders/recent", orderHandler.AdminRecent)
	admin.GET("/orders/:id", orderHandler.AdminGet)
	admin.PUT("/orders/:id", orderHandler.AdminUpdateStatus)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/recent", adminHandler.RecentUsers)
	admin.GET("/customers", adminHandler.ListCustomers)
	admin.GET("/customers/:id", adminHandler.GetCustomer)
	admin.PUT("/customers/:id", adminHandler.UpdateCustomer)
	admin.DELETE("/customers/:id", adminHandler.DeleteCustomer)

	// --- Operational endpoints (no rate limit, no auth) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
