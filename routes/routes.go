package routes

import (
	"net/http"
	"time"

	"hivewellness/handlers"
	"hivewellness/middleware"
	"hivewellness/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers client portal endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.POST("/register", hb.Client.Register)
		api.POST("/login", hb.Client.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware("client"))
		api.GET("/id/:id", hb.Client.GetByID)
		api.PUT("/update/:id", hb.Client.Update)
		api.PUT("/fcm-token/:id", hb.Client.UpdateFCMToken)
	}
}

// RegisterTherapistRoutes registers therapist portal endpoints.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/therapists")
	{
		api.POST("/register", hb.Therapist.Register)
		api.POST("/login", hb.Therapist.Login)

		// Public profile lookup for the booking portal.
		api.GET("/id/:id", hb.Therapist.GetByID)
		api.GET("/availability/:id", hb.Therapist.GetAvailability)

		// Endpoints that modify therapist data require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware("therapist"))
		protected.PATCH("/update/:id", hb.Therapist.Update)
		protected.PUT("/availability/:id", hb.Therapist.SetAvailability)
	}
}

// RegisterBookingRoutes sets up the availability query and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// The availability query is public: the WordPress-embedded widget calls it
	// before the visitor has an account.
	r.GET("/api/availability", hb.Booking.GetAvailability)

	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware("client", "therapist"))
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.DELETE("/:id", hb.Booking.CancelBooking)
		bookingGroup.GET("/client/:id", hb.Booking.ListClientBookings)
		bookingGroup.GET("/therapist/:id", hb.Booking.ListTherapistBookings)
	}
}

// RegisterMessageRoutes sets up the client<->therapist messaging endpoints.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	msgGroup := r.Group("/api/messages")
	{
		msgGroup.Use(middleware.JWTAuthMiddleware("client", "therapist"))
		msgGroup.POST("", hb.Message.Send)
		msgGroup.GET("/thread/:clientId/:therapistId", hb.Message.Thread)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterClientRoutes(r, hb)
	RegisterTherapistRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterHealthRoute(r)
}
