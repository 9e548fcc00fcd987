package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonpro/config"
	"salonpro/cron"
	"salonpro/database"
	adminRepoPkg "salonpro/database/repository/admin"
	appointmentRepoPkg "salonpro/database/repository/appointment"
	businessRepoPkg "salonpro/database/repository/business"
	customerRepoPkg "salonpro/database/repository/customer"
	hoursRepoPkg "salonpro/database/repository/hours"
	leadRepoPkg "salonpro/database/repository/lead"
	serviceRepoPkg "salonpro/database/repository/service"
	stylistRepoPkg "salonpro/database/repository/stylist"
	"salonpro/handlers"
	"salonpro/middleware"
	"salonpro/routes"
	"salonpro/services/admin"
	"salonpro/services/availability"
	"salonpro/services/booking"
	"salonpro/services/business"
	"salonpro/services/customer"
	"salonpro/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	rateStore := middleware.NewRateLimiterStore(config.AppConfig.MaxRequestsPerMin)
	router.Use(middleware.RateLimitMiddleware(rateStore))

	// repositories.
	bizRepo := businessRepoPkg.NewMongoBusinessRepo()
	hrsRepo := hoursRepoPkg.NewMongoHoursRepo()
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	styRepo := stylistRepoPkg.NewMongoStylistRepo()
	custRepo := customerRepoPkg.NewMongoCustomerRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	ldRepo := leadRepoPkg.NewMongoLeadRepo()
	admRepo := adminRepoPkg.NewMongoAdminRepo()

	// Reminder queue client shared by the booking service.
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	// services.
	businessService := &business.DefaultBusinessService{
		Repo:         bizRepo,
		Hours:        hrsRepo,
		Services:     svcRepo,
		Stylists:     styRepo,
		Appointments: apptRepo,
		Leads:        ldRepo,
		BaseURL:      config.AppConfig.BaseURL,
	}

	customerService := &customer.DefaultCustomerService{
		Repo:       custRepo,
		Businesses: bizRepo,
		Services:   svcRepo,
		Stylists:   styRepo,
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Hours:        hrsRepo,
		Appointments: apptRepo,
		StepMinutes:  config.AppConfig.SlotStepMinutes,
	}

	bookingService := &booking.DefaultBookingService{
		Availability:   availabilityService,
		Services:       svcRepo,
		Stylists:       styRepo,
		Customers:      custRepo,
		Appointments:   apptRepo,
		ReminderClient: reminderClient,
	}

	adminService := &admin.DefaultAdminService{
		Repo:         admRepo,
		Businesses:   bizRepo,
		Hours:        hrsRepo,
		Services:     svcRepo,
		Stylists:     styRepo,
		Appointments: apptRepo,
		Leads:        ldRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Business: handlers.NewBusinessHandler(businessService),
		Customer: handlers.NewCustomerHandler(customerService),
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Admin:    handlers.NewAdminHandler(adminService),
		QRCode:   handlers.NewQRCodeHandler(bizRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker.
	cron.InitReminderWorker(apptRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
