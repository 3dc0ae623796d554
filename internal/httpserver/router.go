package httpserver

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medicare-gateway/internal/backend"
	"medicare-gateway/internal/cart"
	"medicare-gateway/internal/domain"
	"medicare-gateway/internal/gate"
)

// Consumer-side views of the backend clients; stubs implement these in
// tests.
type productService interface {
	List(ctx context.Context, q backend.ListProductsQuery) ([]domain.Product, int, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type orderService interface {
	Create(ctx context.Context, cookie string, in backend.CreateOrderInput) (*domain.Order, error)
	ListMine(ctx context.Context, cookie string) ([]domain.Order, error)
	Track(ctx context.Context, id string) (*domain.Order, error)
}

type userService interface {
	GetSession(ctx context.Context, cookie string) (*domain.Session, error)
	ListUsers(ctx context.Context, cookie string) ([]backend.User, error)
	UpdateUserStatus(ctx context.Context, cookie, id, status string) (*backend.User, error)
}

type backendPinger interface {
	Ping(ctx context.Context) error
}

// Deps bundles the collaborators the router needs.
type Deps struct {
	Products   productService
	Categories categoryService
	Orders     orderService
	Users      userService
	Carts      *cart.Registry
	Pinger     backendPinger
}

// Options carries router tunables.
type Options struct {
	CartCookie           string
	CORSOrigins          []string
	SessionLookupTimeout time.Duration
}

// buildRouter wires the storefront routes.
func buildRouter(logger *log.Logger, deps Deps, opts Options) (*gin.Engine, error) {
	if deps.Carts == nil {
		return nil, errors.New("cart registry required")
	}
	if deps.Users == nil {
		return nil, errors.New("user service required")
	}
	if opts.CartCookie == "" {
		opts.CartCookie = "medicare_cart"
	}
	if opts.SessionLookupTimeout <= 0 {
		opts.SessionLookupTimeout = 3 * time.Second
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(opts.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = opts.CORSOrigins
		corsCfg.AllowCredentials = true
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		router.Use(cors.New(corsCfg))
	}

	router.Use(gate.Middleware(deps.Users, opts.SessionLookupTimeout, logger))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Pinger))

	router.GET("/login", pageHandler("login"))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Products))
		api.GET("/products/:id", getProductHandler(deps.Products))
		api.GET("/categories", listCategoriesHandler(deps.Categories))

		cartGroup := api.Group("/cart", cartSessionMiddleware(deps.Carts, opts.CartCookie))
		{
			cartGroup.GET("", getCartHandler())
			cartGroup.DELETE("", clearCartHandler())
			cartGroup.POST("/items", addCartItemHandler(deps.Products))
			cartGroup.POST("/items/:id/increment", incrementCartItemHandler())
			cartGroup.POST("/items/:id/decrement", decrementCartItemHandler())
			cartGroup.DELETE("/items/:id", removeCartItemHandler())
		}

		api.POST("/checkout", cartSessionMiddleware(deps.Carts, opts.CartCookie), checkoutHandler(deps.Orders))
		api.POST("/logout", logoutHandler(deps.Carts, opts.CartCookie))

		api.GET("/orders/my", listMyOrdersHandler(deps.Orders))
		api.GET("/orders/:id/track", trackOrderHandler(deps.Orders))
	}

	// Dashboard routes sit under the gate-protected prefixes; the page set
	// mirrors the storefront navigation for each role.
	admin := router.Group(gate.AdminDashboardPath)
	{
		admin.GET("", pageHandler("admin-overview"))
		admin.GET("/products", pageHandler("admin-products"))
		admin.GET("/orders", pageHandler("admin-orders"))
		admin.GET("/users", pageHandler("admin-users"))
		admin.GET("/sellers", pageHandler("admin-sellers"))
		admin.GET("/settings", pageHandler("admin-settings"))

		admin.GET("/api/users", listUsersHandler(deps.Users))
		admin.PATCH("/api/users/:id/status", updateUserStatusHandler(deps.Users))
	}

	seller := router.Group(gate.SellerDashboardPath)
	{
		seller.GET("", pageHandler("seller-overview"))
		seller.GET("/products", pageHandler("seller-products"))
		seller.GET("/products/add", pageHandler("seller-product-add"))
		seller.GET("/orders", pageHandler("seller-orders"))
		seller.GET("/inventory", pageHandler("seller-inventory"))
	}

	return router, nil
}
