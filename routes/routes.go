package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"davi/handlers"
	"davi/middleware"
	"davi/utils"
)

// RegisterAuthRoutes registers specialist login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Tenant.LoginHandler)
	}
}

// RegisterDashboardRoutes registers the endpoints the specialist dashboard
// consumes. All of them require a valid session token.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.TenantAuthMiddleware(hb.TenantRepo))
	{
		api.POST("/schedule/generate", hb.Schedule.GenerateHandler)
		api.GET("/schedule/my-slots", hb.Schedule.MySlotsGetHandler)
		api.POST("/schedule/my-slots", hb.Schedule.MySlotsCreateHandler)
		api.DELETE("/schedule/my-slots", hb.Schedule.MySlotsDeleteHandler)

		api.GET("/leads", hb.Lead.LeadsGetHandler)
		api.GET("/leads/:id", hb.Lead.LeadGetHandler)
		api.PUT("/leads/:id", hb.Lead.LeadUpdateHandler)
		api.DELETE("/leads/:id", hb.Lead.LeadDeleteHandler)

		api.GET("/appointments", hb.Booking.AppointmentsGetHandler)

		api.GET("/settings", hb.Tenant.SettingsGetHandler)
		api.PUT("/settings", hb.Tenant.SettingsPutHandler)
	}
}

// RegisterWebhookRoutes registers the endpoints called by the WhatsApp
// automation. They authenticate with the internal API key header.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/webhooks")
	api.Use(middleware.APIKeyAuthMiddleware())
	{
		api.POST("/appointments", hb.Booking.BookWebhookHandler)
		api.POST("/leads", hb.Lead.QualifyWebhookHandler)
		api.GET("/schedule/next-slots", hb.Availability.NextSlotsHandler)
		api.POST("/schedule/check-availability", hb.Availability.CheckAvailabilityHandler)
		api.GET("/specialists/by-phone/:phone", hb.Tenant.ByPhoneWebhookHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Davi", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "x-api-key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterHealthRoute(r)
}
