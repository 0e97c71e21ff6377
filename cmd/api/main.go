package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/config"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/handler"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/middleware"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/repository"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/database"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/email"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/payment"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/storage"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/utils"
)

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	cfg := config.LoadConfig()

	db := database.Get()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Package{},
		&models.Trip{},
		&models.Destination{},
		&models.DestinationTrip{},
		&models.Story{},
		&models.Testimonial{},
	); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	tripRepo := repository.NewTripRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	destinationTripRepo := repository.NewDestinationTripRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)

	// Storage services
	imgHost := storage.NewImageHostClient(cfg.ImageHost.APIKey, cfg.ImageHost.BaseURL)
	var archive storage.ObjectStorage
	if cfg.R2.AccountID != "" {
		r2, err := storage.NewR2Storage(cfg)
		if err != nil {
			zapLogger.Fatal("failed to initialize object storage", zap.Error(err))
		}
		archive = r2
	}
	localStore := storage.NewLocalStore(cfg.StoryUploadDir)

	// Email service
	emailService := email.NewEmailService(zapLogger)

	// Stripe service
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey, cfg.Stripe.SuccessURL, cfg.Stripe.CancelURL)

	// Services
	authService := service.NewAuthService(userRepo, emailService, zapLogger)
	userService := service.NewUserService(userRepo)
	packageService := service.NewPackageService(packageRepo)
	tripService := service.NewTripService(tripRepo)
	destinationService := service.NewDestinationService(destinationRepo, destinationTripRepo, zapLogger)
	storyService := service.NewStoryService(storyRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	uploadService := service.NewUploadService(imgHost, archive, localStore, zapLogger)
	paymentService := service.NewPaymentService(stripeService, packageRepo)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(userService, validator)
	packageHandler := handler.NewPackageHandler(packageService, validator)
	tripHandler := handler.NewTripHandler(tripService)
	destinationHandler := handler.NewDestinationHandler(destinationService)
	storyHandler := handler.NewStoryHandler(storyService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	cookieHandler := handler.NewCookieHandler(validator)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Router. The body limit sits above the largest upload ceiling so the
	// size checks in the upload service are the ones that reject, with a
	// little headroom for multipart framing.
	app := fiber.New(fiber.Config{
		BodyLimit: service.MaxHostedUploadSize + 1<<20,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://offbeattrips.in, https://www.offbeattrips.in, http://localhost:3000",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(middleware.RateLimit())

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	api.Get("/packages", packageHandler.GetPackages)
	api.Get("/packages/:slug", packageHandler.GetPackageBySlug)
	api.Get("/trips", tripHandler.GetTrips)
	api.Get("/trips/:slug", tripHandler.GetTripBySlug)
	api.Get("/destinations", destinationHandler.GetDestinations)
	api.Get("/destinations/:slug", destinationHandler.GetDestinationBySlug)
	api.Get("/destination-trips", destinationHandler.GetDestinationTrips)
	api.Get("/destination-trips/:slug", destinationHandler.GetDestinationTripBySlug)
	api.Get("/stories", storyHandler.GetStories)
	api.Get("/stories/:slug", storyHandler.GetStoryBySlug)
	api.Get("/testimonials", testimonialHandler.GetTestimonials)

	api.Get("/cookies/visit", cookieHandler.Visit)
	api.Get("/cookies/preferences", cookieHandler.GetPreferences)
	api.Post("/cookies/preferences", cookieHandler.SetPreferences)

	// Authenticated routes
	authed := api.Group("", middleware.AuthMiddleware(zapLogger))

	user := authed.Group("/user")
	user.Get("/profile", userHandler.GetMyProfile)
	user.Put("/profile", userHandler.UpdateProfile)
	user.Post("/upload-story", uploadHandler.UploadStoryImage)

	authed.Post("/packages/:slug/checkout", paymentHandler.CreatePackageCheckout)

	// Admin routes: role gate enforced at the edge, before any handler runs.
	admin := authed.Group("/admin", middleware.AdminMiddleware())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users", adminHandler.UpdateUserRole)
	admin.Put("/packages", packageHandler.UpsertPackage)
	admin.Delete("/packages/:slug", packageHandler.DeletePackage)

	authed.Post("/upload", middleware.AdminMiddleware(), uploadHandler.UploadImage)
	authed.Delete("/upload", middleware.AdminMiddleware(), uploadHandler.DeleteImage)

	zapLogger.Info("starting api server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
