// File: hivewellness/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hivewellness/config"
	"hivewellness/cron"
	"hivewellness/database"
	appointmentRepo "hivewellness/database/repository/appointment"
	availabilityRepo "hivewellness/database/repository/availability"
	clientRepoPkg "hivewellness/database/repository/client"
	messageRepoPkg "hivewellness/database/repository/message"
	therapistRepoPkg "hivewellness/database/repository/therapist"
	"hivewellness/handlers"
	"hivewellness/middleware"
	"hivewellness/routes"
	clientsvc "hivewellness/services/client"
	messagesvc "hivewellness/services/message"
	"hivewellness/services/notification"
	"hivewellness/services/payment"
	"hivewellness/services/scheduling"
	"hivewellness/services/tasks"
	"hivewellness/services/therapist"
	"hivewellness/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	therRepo := therapistRepoPkg.NewMongoTherapistRepo()
	cliRepo := clientRepoPkg.NewMongoClientRepo()
	msgRepo := messageRepoPkg.NewMongoMessageRepo()

	// services.
	therapistService := &therapist.DefaultTherapistService{
		Repo:  therRepo,
		Avail: availRepo,
	}
	clientService := &clientsvc.DefaultClientService{
		Repo: cliRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Clients:    cliRepo,
		Therapists: therRepo,
	}
	messageService := &messagesvc.DefaultMessageService{
		Repo:       msgRepo,
		Clients:    cliRepo,
		Therapists: therRepo,
	}

	paymentProcessor := payment.NewStripeProcessor(logger)
	reminderScheduler := tasks.NewAsynqReminderScheduler()

	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Appointments: apptRepo,
		Availability: availRepo,
		Therapists:   therRepo,
		Clients:      cliRepo,
		Payments:     paymentProcessor,
		Notifier:     notificationService,
		Reminders:    reminderScheduler,
		Cache:        utils.GetCacheClient(),
		WeekdayOnly:  config.AppConfig.WeekdayOnlyBooking,
		CacheTTL:     time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:   handlers.NewBookingHandler(schedulingEngine, logger),
		Therapist: handlers.NewTherapistHandler(therapistService),
		Client:    handlers.NewClientHandler(clientService),
		Message:   handlers.NewMessageHandler(messageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService)
	completionSweep := cron.StartCompletionSweep(apptRepo)
	defer completionSweep.Stop()

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
