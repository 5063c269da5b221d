// File: davi/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"davi/config"
	"davi/cron"
	"davi/database"
	appointmentRepo "davi/database/repository/appointment"
	leadRepoPkg "davi/database/repository/lead"
	slotRepoPkg "davi/database/repository/slot"
	tenantRepoPkg "davi/database/repository/tenant"
	"davi/handlers"
	"davi/middleware"
	"davi/routes"
	"davi/services/booking"
	ai "davi/services/intelligence"
	"davi/services/lead"
	"davi/services/schedule"
	"davi/services/tasks"
	"davi/services/tenant"
	"davi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

	tenantLoc, err := time.LoadLocation(config.AppConfig.TenantTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid TENANT_TIMEZONE %q: %v", config.AppConfig.TenantTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	leadRepo := leadRepoPkg.NewMongoLeadRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	tenantRepo := tenantRepoPkg.NewMongoTenantRepo()

	// services.
	interpreter := ai.NewGeminiInterpreter(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		tenantLoc,
	)

	scheduleService := &schedule.DefaultScheduleService{
		Slots:              slotRepo,
		Interpreter:        interpreter,
		Location:           tenantLoc,
		InterpreterTimeout: time.Duration(config.AppConfig.InterpreterTimeoutSeconds) * time.Second,
		LockClient:         utils.GetCacheClient(),
	}

	reconciler := tasks.NewAsynqReconciler()
	defer reconciler.Close()

	bookingService := &booking.DefaultBookingService{
		Slots:        slotRepo,
		Leads:        leadRepo,
		Appointments: apptRepo,
		Reconcile:    reconciler,
	}

	leadService := &lead.DefaultLeadService{Repo: leadRepo}
	tenantService := &tenant.DefaultTenantService{Repo: tenantRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Schedule:     handlers.NewScheduleHandler(scheduleService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Availability: handlers.NewAvailabilityHandler(scheduleService),
		Lead:         handlers.NewLeadHandler(leadService),
		Tenant:       handlers.NewTenantHandler(tenantService),
		TenantRepo:   tenantRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reconciliation worker in the background.
	cron.InitReconcileWorker(slotRepo, apptRepo)

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
