package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "carrental/internal/config"
	h "carrental/internal/http/handlers"
	"carrental/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) (*gin.Engine, error) {
	if err := h.Setup(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	adminOnly := middleware.RequireRoles("admin")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Catalog
		cars := api.Group("/cars")
		cars.GET("", h.GetCars)
		cars.POST("", adminOnly, h.CreateCar)
		cars.PUT("/:model", adminOnly, h.UpdateCarRate)
		cars.DELETE("/:model", adminOnly, h.DeleteCar)

		// Bookings (admin console)
		bookings := api.Group("/bookings")
		bookings.GET("", adminOnly, h.GetBookings)
		bookings.DELETE("/:id", adminOnly, h.DeleteBooking)
		bookings.GET("/:id/receipt", h.GetBookingReceiptPDF)

		// Customer booking flow
		api.POST("/quotes", h.GetQuote)
		flows := api.Group("/flows")
		flows.POST("", h.StartFlow)
		flows.PUT("/:id", h.UpdateFlowDraft)
		flows.POST("/:id/submit", h.SubmitFlow)
		flows.POST("/:id/pay", h.PayFlow)
		flows.GET("/:id/receipt", h.GetFlowReceipt)
		flows.DELETE("/:id", h.CancelFlow)
	}

	return r, nil
}
