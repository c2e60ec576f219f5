package app

import (
	"regive-backend/internal/admin"
	"regive-backend/internal/auth"
	"regive-backend/internal/config"
	"regive-backend/internal/database"
	"regive-backend/internal/donations"
	"regive-backend/internal/events"
	"regive-backend/internal/health"
	"regive-backend/internal/identity"
	"regive-backend/internal/jointeam"
	"regive-backend/internal/middleware"
	"regive-backend/internal/uploads"
	"regive-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. Returns the DB and Redis handles for startup checks.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
		BodyLimit:               uploads.MaxFileSize * (uploads.MaxFileCount + 1),
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
		app.Use(middleware.HealthMarker(rdb))
	}

	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	provider := &identity.HTTPClient{
		BaseURL:   cfg.IdentityBaseURL,
		APIKey:    cfg.IdentityAPIKey,
		ProjectID: cfg.IdentityProjectID,
	}
	app.Use(middleware.Authenticate(provider))

	// Health (no auth)
	healthHandlers := &health.Handlers{Rdb: rdb}
	app.Get("/_health", healthHandlers.Check)
	app.Get("/health/json", healthHandlers.JSON)

	// Auth cookie endpoints
	authHandlers := &auth.Handlers{IsProduction: cfg.Env == "production"}
	app.Post("/auth/set-token", authHandlers.SetToken)
	app.Get("/auth/logout", authHandlers.Logout)
	app.Get("/auth/me", authHandlers.Me)

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	if db != nil {
		healthHandlers.DB = dbPinger(db)

		// Donation lifecycle
		donationService := &donations.Service{DB: db}
		donationHandlers := &donations.Handlers{Service: donationService}
		donationGroup := app.Group("/api/v1/donations", middleware.RequireAuth())
		donationGroup.Post("/", donationHandlers.Submit)
		donationGroup.Get("/mine", donationHandlers.MyDonations)
		donationGroup.Get("/", middleware.RequireAdmin(), donationHandlers.ListPending)
		donationGroup.Post("/:id/collect", middleware.RequireAdmin(), donationHandlers.Collect)
		donationGroup.Delete("/:id", middleware.RequireAdmin(), donationHandlers.Discard)

		collectedGroup := app.Group("/api/v1/collected", middleware.RequireAuth(), middleware.RequireAdmin())
		collectedGroup.Get("/", donationHandlers.ListCollected)
		collectedGroup.Post("/:id/distribute", donationHandlers.Distribute)
		collectedGroup.Delete("/:id", donationHandlers.DiscardCollected)

		app.Get("/api/v1/beneficiaries", middleware.RequireAuth(), middleware.RequireAdmin(), donationHandlers.ListBeneficiaries)

		// Events + registrations
		eventService := &events.Service{DB: db}
		eventHandlers := &events.Handlers{Service: eventService}
		app.Get("/api/v1/events", middleware.RequireAuth(), eventHandlers.List)
		app.Post("/api/v1/events/register", eventHandlers.Register)
		eventAdmin := app.Group("/api/v1/events", middleware.RequireAuth(), middleware.RequireAdmin())
		eventAdmin.Post("/", eventHandlers.Create)
		eventAdmin.Get("/:id/participants", eventHandlers.Participants)
		eventAdmin.Delete("/:id", eventHandlers.Delete)

		// Volunteer intake
		joinService := &jointeam.Service{DB: db, Provider: provider}
		joinHandlers := &jointeam.Handlers{Service: joinService}
		app.Post("/api/v1/join-team", joinHandlers.Apply)
		joinAdmin := app.Group("/api/v1/join-team", middleware.RequireAuth(), middleware.RequireAdmin())
		joinAdmin.Get("/", joinHandlers.List)
		joinAdmin.Post("/:id/approve", joinHandlers.Approve)
		joinAdmin.Post("/:id/reject", joinHandlers.Reject)
		joinAdmin.Delete("/:id", joinHandlers.Delete)

		// Profiles + admin account views
		userService := &users.Service{DB: db, Provider: provider}
		userHandlers := &users.Handlers{Service: userService}
		userGroup := app.Group("/api/v1/users", middleware.RequireAuth())
		userGroup.Get("/profile", userHandlers.Profile)
		userGroup.Put("/profile", userHandlers.UpdateProfile)
		userGroup.Get("/", middleware.RequireAdmin(), userHandlers.ListAccounts)
		userGroup.Get("/admins", middleware.RequireAdmin(), userHandlers.ListAdmins)
		userGroup.Post("/:uid/promote", middleware.RequireAdmin(), userHandlers.Promote)
		userGroup.Delete("/:uid", middleware.RequireAdmin(), userHandlers.DeleteAccount)

		// Uploads
		storageClient := &uploads.HTTPClient{
			CloudName: cfg.StorageCloudName,
			APIKey:    cfg.StorageAPIKey,
			APISecret: cfg.StorageAPISecret,
			Folder:    cfg.StorageFolder,
		}
		uploadService := &uploads.Service{Client: storageClient}
		uploadHandlers := &uploads.Handlers{Service: uploadService}
		uploadGroup := app.Group("/api/v1/uploads", middleware.RequireAuth())
		uploadGroup.Post("/donation-images", uploadHandlers.DonationImages)
		uploadGroup.Post("/event-image", middleware.RequireAdmin(), uploadHandlers.EventImage)

		// Admin dashboard
		adminHandlers := &admin.Handlers{
			Donations: donationService,
			JoinTeam:  joinService,
			Users:     userService,
		}
		app.Get("/api/v1/admin/dashboard", middleware.RequireAuth(), middleware.RequireAdmin(), adminHandlers.Dashboard)
	}

	// 404 fallthrough
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	})

	return app, db, rdb, nil
}

func dbPinger(db *gorm.DB) health.DBPinger {
	sqlDB, err := db.DB()
	if err != nil {
		return nil
	}
	return sqlDB
}
