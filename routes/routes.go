package routes

import (
	"time"

	"salonpro/handlers"
	"salonpro/middleware"
	"salonpro/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBusinessRoutes registers owner-facing endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business")
	{
		api.POST("/register", hb.Business.RegisterHandler)
		api.POST("/login", hb.Business.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(utils.RoleBusiness))
		api.POST("/logout", hb.Business.LogoutHandler)
		api.GET("/data", hb.Business.GetDataHandler)
		api.GET("/services", hb.Business.ListServicesHandler)
		api.POST("/services", hb.Business.AddServiceHandler)
		api.PUT("/services/:id", hb.Business.UpdateServiceHandler)
		api.DELETE("/services/:id", hb.Business.DeleteServiceHandler)
		api.GET("/stylists", hb.Business.ListStylistsHandler)
		api.POST("/stylists", hb.Business.AddStylistHandler)
		api.PUT("/stylists/:id", hb.Business.UpdateStylistHandler)
		api.DELETE("/stylists/:id", hb.Business.DeleteStylistHandler)
		api.GET("/hours", hb.Business.GetHoursHandler)
		api.PUT("/hours", hb.Business.UpdateHoursHandler)
		api.GET("/appointments", hb.Business.ListAppointmentsHandler)
		api.PUT("/appointments/:id/status", hb.Business.UpdateAppointmentStatusHandler)
	}
}

// RegisterCustomerRoutes registers the customer booking flow.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customer")
	{
		api.POST("/register", hb.Customer.RegisterHandler)
		api.POST("/login", hb.Customer.LoginHandler)

		// Browsing endpoints are public so the QR landing page works
		// before the customer signs in.
		api.GET("/business/:id", hb.Customer.GetBusinessHandler)
		api.GET("/services/:businessId", hb.Customer.ListServicesHandler)
		api.GET("/stylists/:businessId", hb.Customer.ListStylistsHandler)
		api.GET("/available-slots/:businessId", hb.Booking.AvailableSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(utils.RoleCustomer))
		protected.POST("/book-appointment", hb.Booking.BookAppointmentHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(utils.RoleAdmin))
		api.GET("/businesses", hb.Admin.ListBusinessesHandler)
		api.DELETE("/businesses/:id", hb.Admin.DeleteBusinessHandler)
		api.GET("/leads", hb.Admin.ListLeadsHandler)
		api.PUT("/leads/:id", hb.Admin.UpdateLeadHandler)
		api.GET("/appointments", hb.Admin.ListAppointmentsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBusinessRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)

	r.GET("/api/qr-code/:businessId", hb.QRCode.GetQRCodeHandler)
	r.GET("/api/verify-token", middleware.JWTAuthMiddleware(""), handlers.VerifyTokenHandler)
}
