package routes

import (
	"net/http"
	"time"

	"autodetail/handlers"
	"autodetail/middleware"
	"autodetail/models"
	"autodetail/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and session endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/session", hb.User.CreateSessionHandler)
		auth.POST("/revoke", middleware.JWTAuthMiddleware(hb.UserRepo), hb.User.RevokeSessionHandler)
	}

	users := r.Group("/api/users")
	{
		users.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		users.GET("/me", hb.User.GetMeHandler)
		users.POST("/me/role", hb.User.SelectRoleHandler)
		users.PATCH("/me", hb.User.UpdateMeHandler)
		users.DELETE("/me", hb.User.DeleteMeHandler)
	}
}

// RegisterWebhookRoutes registers the Clerk event receiver. Authentication is
// the svix signature, not a session.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/webhooks/clerk", hb.Webhook.ClerkWebhookHandler)
}

// RegisterBusinessRoutes registers business profile, schedule and staff
// endpoints. Reads are public; writes are owner-only.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		// Public browsing endpoints.
		api.GET("", hb.Business.ListBusinessesHandler)
		api.GET("/:id", hb.Business.GetBusinessHandler)
		api.GET("/:id/availability", hb.Availability.GetDayHandler)
		api.GET("/:id/availability/range", hb.Availability.GetRangeHandler)
		api.GET("/:id/availability/slots", hb.Availability.GetSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.GET("/mine", hb.Business.GetMyBusinessHandler)
		protected.GET("/:id/appointments", hb.Booking.ListBusinessAppointmentsHandler)

		owner := protected.Group("")
		owner.Use(middleware.RequireRole(models.RoleOwner))
		owner.POST("", hb.Business.CreateBusinessHandler)
		owner.PATCH("/:id", hb.Business.UpdateBusinessHandler)
		owner.DELETE("/:id", hb.Business.DeleteBusinessHandler)
		owner.PUT("/:id/hours", hb.Business.SetHoursHandler)
		owner.GET("/:id/overrides", hb.Business.ListOverridesHandler)
		owner.PUT("/:id/overrides/:date", hb.Business.SetOverrideHandler)
		owner.DELETE("/:id/overrides/:date", hb.Business.DeleteOverrideHandler)
		owner.GET("/:id/special-days", hb.Business.ListSpecialDaysHandler)
		owner.PUT("/:id/special-days/:date", hb.Business.SetSpecialDayHandler)
		owner.DELETE("/:id/special-days/:date", hb.Business.DeleteSpecialDayHandler)
		owner.POST("/:id/staff", hb.Business.AddStaffHandler)
		owner.PUT("/:id/staff/:staffId", hb.Business.UpdateStaffHandler)
		owner.DELETE("/:id/staff/:staffId", hb.Business.RemoveStaffHandler)
	}
}

// RegisterBookingRoutes registers the appointment lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Booking.CreateAppointmentHandler)
		api.GET("", hb.Booking.ListMyAppointmentsHandler)
		api.POST("/:id/confirm", hb.Booking.ConfirmAppointmentHandler)
		api.POST("/:id/cancel", hb.Booking.CancelAppointmentHandler)
		api.POST("/:id/complete", hb.Booking.CompleteAppointmentHandler)
		api.POST("/:id/reschedule", hb.Booking.RescheduleAppointmentHandler)
	}
}

// RegisterVehicleRoutes registers vehicle and service-history endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Vehicle.CreateVehicleHandler)
		api.GET("", hb.Vehicle.ListVehiclesHandler)
		api.GET("/:id", hb.Vehicle.GetVehicleHandler)
		api.PATCH("/:id", hb.Vehicle.UpdateVehicleHandler)
		api.DELETE("/:id", hb.Vehicle.DeleteVehicleHandler)
		api.POST("/:id/photo", hb.Vehicle.UploadPhotoHandler)
		api.GET("/:id/history", hb.Vehicle.ServiceHistoryHandler)
	}
}

// RegisterAssistantRoutes registers the chat assistant endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/chat", hb.Assistant.ChatHandler)
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
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "svix-id", "svix-timestamp", "svix-signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterHealthRoute(r)
}
