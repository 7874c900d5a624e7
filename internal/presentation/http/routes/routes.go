package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/keinsta/si-bills-api/internal/config"
	domainRepo "github.com/keinsta/si-bills-api/internal/domain/repository"
	"github.com/keinsta/si-bills-api/internal/presentation/http/handler"
	"github.com/keinsta/si-bills-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Bill *handler.BillHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerBillRoutes(v1, h, deps)
	}

	return router
}

func registerBillRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	bills := v1.Group("/bills")
	{
		bills.GET("", h.Bill.List)
	}

	bill := v1.Group("/bill")
	{
		// Bill submission uses idempotency middleware so a retried
		// submission does not burn a second serial number
		bill.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Bill.Create)
		bill.GET("/:serialNumber", h.Bill.GetBySerial)
		bill.GET("/:serialNumber/pdf", h.Bill.GetPDF)
		bill.GET("/:serialNumber/print", h.Bill.GetPrintLayout)
	}
}
