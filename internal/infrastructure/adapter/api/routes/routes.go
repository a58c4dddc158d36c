package routes

import (
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every API handler
type Handlers struct {
	Transactions *handler.TransactionHandler
	Payments     *handler.PaymentHandler
	Events       *handler.EventHandler
	Admin        *handler.AdminHandler
}

// NewHandlers builds the handlers over one set of views
func NewHandlers(views handler.Views, logger coreport.Logger, cfg handler.Config) Handlers {
	return Handlers{
		Transactions: handler.NewTransactionHandler(views, logger, cfg.ReadTimeout),
		Payments:     handler.NewPaymentHandler(views, logger),
		Events:       handler.NewEventHandler(views, logger, cfg.ReadTimeout),
		Admin:        handler.NewAdminHandler(views, logger),
	}
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	// Scanner screen
	router.POST("/scan", h.Payments.Scan)
	router.GET("/scan", h.Payments.ScanStatus)
	router.DELETE("/scan", h.Payments.ResetScan)

	// Payment entry
	payments := router.Group("/payments")
	{
		payments.POST("", h.Payments.Pay)
		payments.GET("/route", h.Payments.DecodeRoute)
	}

	// History and detail screens
	transactions := router.Group("/transactions")
	{
		transactions.GET("", h.Transactions.List)
		transactions.GET("/stream", h.Transactions.StreamList)
		transactions.GET("/latest", h.Transactions.Latest)
		transactions.GET("/latest/stream", h.Transactions.StreamLatest)
		transactions.GET("/:id", h.Transactions.Get)
		transactions.GET("/:id/stream", h.Transactions.StreamOne)
	}

	events := router.Group("/events")
	{
		events.POST("", h.Events.Log)
		events.GET("", h.Events.List)
		events.DELETE("", h.Events.Clear)
	}

	router.POST("/admin/recreate", h.Admin.Recreate)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, views handler.Views, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
	router.Use(middleware.Visits(views.Activity))
}

// NewRouter builds a router with every middleware and route in place
func NewRouter(views handler.Views, logger coreport.Logger, timeProvider coreport.TimeProvider, cfg handler.Config) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, views, logger, timeProvider)
	SetupRoutes(router, NewHandlers(views, logger, cfg))
	return router
}
