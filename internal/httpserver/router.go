package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"pos-terminal/internal/auth"
	"pos-terminal/internal/pos"
	"pos-terminal/internal/repository/salelog"
)

// Deps carries everything the handlers need.
type Deps struct {
	Engine  *pos.Engine
	Auth    *auth.Service
	Archive salelog.Repository // nil when DB_DSN is not configured
	Pool    *pgxpool.Pool      // readiness probe only, nil without archive
}

// buildRouter wires routes for the terminal API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Pool))

	h := &handlers{
		engine:  deps.Engine,
		auth:    deps.Auth,
		archive: deps.Archive,
		logger:  logger,
	}

	router.POST("/login", h.login)

	authed := router.Group("/", authMiddleware(deps.Auth))
	{
		authed.POST("/logout", h.logout)

		authed.GET("/products", h.listProducts)
		authed.GET("/categories", h.listCategories)

		authed.GET("/cart", h.getCart)
		authed.POST("/cart/items", h.addCartItem)
		authed.PUT("/cart/items/:productId", h.setCartItemQuantity)
		authed.DELETE("/cart/items/:productId", h.removeCartItem)
		authed.DELETE("/cart", h.clearCart)

		authed.POST("/checkout", h.checkout)

		authed.GET("/sales", h.listSales)
		authed.GET("/reports/summary", h.reportSummary)
		authed.GET("/reports/top-products", h.reportTopProducts)

		admin := authed.Group("/", requireRole("admin"))
		{
			admin.POST("/products", h.createProduct)
			admin.PUT("/products/:id", h.updateProduct)
			admin.DELETE("/products/:id", h.deleteProduct)
		}
	}

	return router
}
