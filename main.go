package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autodetail/config"
	"autodetail/database"
	appointmentRepoPkg "autodetail/database/repository/appointment"
	availabilityRepoPkg "autodetail/database/repository/availability"
	businessRepoPkg "autodetail/database/repository/business"
	userRepoPkg "autodetail/database/repository/user"
	vehicleRepoPkg "autodetail/database/repository/vehicle"
	"autodetail/handlers"
	"autodetail/middleware"
	"autodetail/routes"
	"autodetail/services/assistant"
	"autodetail/services/availability"
	"autodetail/services/booking"
	"autodetail/services/business"
	"autodetail/services/notification"
	"autodetail/services/storage"
	"autodetail/services/tasks"
	"autodetail/services/user"
	"autodetail/services/vehicle"
	"autodetail/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetContextCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()

	// Services.
	userService := &user.DefaultUserService{
		Repo:  userRepo,
		Clerk: user.NewClerkJWKSVerifier(config.AppConfig.ClerkSecretKey),
	}
	businessService := &business.DefaultBusinessService{
		Repo:             businessRepo,
		AvailabilityRepo: availabilityRepo,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		BusinessRepo:     businessRepo,
		AvailabilityRepo: availabilityRepo,
		AppointmentRepo:  appointmentRepo,
	}

	emailSender, err := notification.NewEmailSenderFromConfig(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to configure email channel: %v", err)
	}
	notificationService := &notification.DefaultNotificationService{
		UserRepo:     userRepo,
		BusinessRepo: businessRepo,
		Email:        emailSender,
		SMS:          notification.NewSMSSenderFromConfig(config.AppConfig),
	}

	redisTaskOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTasksDB,
	}
	reminderScheduler := tasks.NewReminderScheduler(redisTaskOpt)
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		AppointmentRepo: appointmentRepo,
		BusinessRepo:    businessRepo,
		VehicleRepo:     vehicleRepo,
		Availability:    availabilityService,
		Notifier:        notificationService,
		Reminders:       reminderScheduler,
	}

	reminderWorker := tasks.StartWorker(redisTaskOpt, &tasks.ReminderWorker{
		AppointmentRepo: appointmentRepo,
		Notifier:        notificationService,
	})
	defer reminderWorker.Shutdown()

	var vehicleStorage storage.StorageService
	if cloudStorage, err := storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	); err != nil {
		logger.Sugar().Warnf("main: photo storage disabled: %v", err)
	} else {
		vehicleStorage = cloudStorage
	}
	vehicleService := &vehicle.DefaultVehicleService{
		Repo:    vehicleRepo,
		Storage: vehicleStorage,
	}

	var completer assistant.Completer
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := assistant.NewGeminiClient(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: assistant chat completion disabled: %v", err)
		} else {
			completer = gemini
		}
	}
	assistantService := &assistant.DefaultAssistantService{
		Store:        assistant.NewRedisContextStore(utils.GetContextCacheClient(), 30*time.Minute),
		Completer:    completer,
		BusinessRepo: businessRepo,
		Availability: availabilityService,
		Booking:      bookingService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		User:    &handlers.UserHandler{UserService: userService},
		Webhook: &handlers.WebhookHandler{UserService: userService, SigningSecret: config.AppConfig.ClerkWebhookSecret},
		Business: &handlers.BusinessHandler{
			BusinessService: businessService,
		},
		Availability: &handlers.AvailabilityHandler{
			Availability:    availabilityService,
			BusinessService: businessService,
		},
		Booking:   &handlers.BookingHandler{BookingService: bookingService},
		Vehicle:   &handlers.VehicleHandler{VehicleService: vehicleService},
		Assistant: &handlers.AssistantHandler{AssistantService: assistantService},
	}

	routes.RegisterRoutes(router, handlerBundle)

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
