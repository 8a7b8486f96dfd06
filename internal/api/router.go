package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/velostore/commerce-api/docs"
	"github.com/velostore/commerce-api/internal/api/handler"
	"github.com/velostore/commerce-api/internal/api/middleware"
	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/service"
	"github.com/velostore/commerce-api/internal/infrastructure/config"
	mongodb "github.com/velostore/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/velostore/commerce-api/internal/infrastructure/db/redis"
	"github.com/velostore/commerce-api/internal/security/cookie"
	"github.com/velostore/commerce-api/internal/security/policy"
	"github.com/velostore/commerce-api/internal/security/token"
)

// routeTable is the static authorization table. Everything not matched here
// requires authentication; role prefixes gate the administrative and seller
// surfaces.
func routeTable() *policy.Table {
	return policy.NewTable([]policy.Rule{
		{Prefix: "/api/v1/auth/", Access: policy.Public},
		{Prefix: "/api/v1/public/", Access: policy.Public},
		{Prefix: "/api/v1/admin/", Access: policy.RequiresRole, Role: domain.RoleAdmin},
		{Prefix: "/api/v1/seller/", Access: policy.RequiresRole, Role: domain.RoleSeller},
		{Prefix: "/health", Access: policy.Public},
		{Prefix: "/metrics", Access: policy.Public},
		{Prefix: "/swagger/", Access: policy.Public},
	})
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Security primitives ---
	codec := token.NewCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	transport := cookie.NewTransport(cfg.Auth.CookieName, cfg.Auth.CookiePath)

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	addressRepo := mongodb.NewAddressRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb, log)

	// --- Services ---
	authService := service.NewAuthService(userRepo, roleRepo, codec)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, catalogCache)
	addressService := service.NewAddressService(addressRepo)
	cartService := service.NewCartService(cartRepo, productRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, transport)
	categoryHandler := handler.NewCategoryHandler(catalogService, catalogCache)
	productHandler := handler.NewProductHandler(catalogService, catalogCache)
	addressHandler := handler.NewAddressHandler(addressService)
	cartHandler := handler.NewCartHandler(cartService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// --- Global middleware, in order: recover, request id, logging,
	// metrics, then authenticate (fail-open) and authorize (fail-closed).
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))
	e.Use(middleware.Authenticate(codec, transport, userRepo, log))
	e.Use(middleware.Authorize(routeTable()))

	// --- Auth routes ---
	auth := e.Group("/api/v1/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/signin", authHandler.Signin)
	auth.POST("/signout", authHandler.Signout)
	auth.GET("/username", authHandler.Username)
	auth.GET("/user", authHandler.User)

	// --- Public catalog and address routes ---
	public := e.Group("/api/v1/public")
	public.GET("/categories", categoryHandler.List)
	public.POST("/categories", categoryHandler.Create)
	public.GET("/categories/:categoryId/products", productHandler.ByCategory)
	public.GET("/products", productHandler.List)
	public.GET("/products/search/:keyword", productHandler.Search)
	public.GET("/addresses", addressHandler.ListAll)

	// --- Admin routes ---
	admin := e.Group("/api/v1/admin")
	admin.PUT("/categories/:categoryId", categoryHandler.Update)
	admin.DELETE("/categories/:categoryId", categoryHandler.Delete)
	admin.POST("/categories/:categoryId/product", productHandler.Create)
	admin.PUT("/product/:productId", productHandler.Update)
	admin.DELETE("/product/:productId", productHandler.Delete)
	admin.DELETE("/address/:addressId", addressHandler.Delete)

	// --- Seller routes ---
	seller := e.Group("/api/v1/seller")
	seller.GET("/products", productHandler.SellerList)

	// --- Authenticated routes (policy default) ---
	v1 := e.Group("/api/v1")
	v1.POST("/address", addressHandler.Create)
	v1.GET("/address/:addressId", addressHandler.Get)
	v1.PUT("/address/:addressId", addressHandler.Update)
	v1.GET("/users/addresses", addressHandler.ListOwn)
	v1.POST("/carts/products/:productId/quantity/:quantity", cartHandler.Add)
	v1.GET("/carts/users/cart", cartHandler.Get)
	v1.PUT("/cart/products/:productId/quantity/:operation", cartHandler.UpdateQuantity)
	v1.DELETE("/carts/product/:productId", cartHandler.Remove)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
