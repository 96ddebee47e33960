package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"homeserve/handlers"
	"homeserve/middleware"
)

// CORSMiddleware returns the CORS policy for the browser client.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		api.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		api.GET("/profile", hb.Auth.Profile)
		api.PUT("/profile", hb.Auth.UpdateProfile)
		api.DELETE("/revoke", hb.Auth.Revoke)
	}
}

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	services := r.Group("/api/services")
	{
		services.GET("/search", hb.Catalog.SearchServices)
		services.GET("/:id", hb.Catalog.GetService)
		services.GET("/:id/slots", hb.Catalog.GetServiceSlots)
		services.GET("/:id/restrictions", hb.Catalog.GetServiceRestrictions)
	}

	packages := r.Group("/api/packages")
	{
		packages.GET("", hb.Catalog.ListPackages)
		packages.GET("/:id", hb.Catalog.GetPackage)
		packages.GET("/:id/slots", hb.Catalog.GetPackageSlots)
	}

	r.POST("/api/zones/check", hb.Catalog.CheckZone)
}

// RegisterBookingRoutes registers the booking workflow endpoints. All of
// them require authentication.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.POST("/:id/confirm", hb.Booking.ConfirmPayment)
		api.POST("/:id/cancel", hb.Booking.CancelBooking)
		api.POST("/:id/complete", hb.Booking.CompleteBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
