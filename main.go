package main

import (
	"context"
	"lms/authoring"
	"lms/config"
	authControllers "lms/controllers/auth"
	catalogControllers "lms/controllers/catalog"
	courseControllers "lms/controllers/course"
	dashboardControllers "lms/controllers/dashboard"
	walletControllers "lms/controllers/wallet"
	"lms/database"
	authRoutes "lms/routers/authRoutes"
	catalogRoutes "lms/routers/catalogRoutes"
	courseRoutes "lms/routers/courseRoutes"
	dashboardRoutes "lms/routers/dashboardRoutes"
	walletRoutes "lms/routers/walletRoutes"
	"lms/services"
	"lms/sessions"
	"lms/utils"
	"lms/wizard"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
)

// sectionCache uses Redis when REDIS_URL is set
func sectionCache() authoring.SectionCache {
	if config.AppConfig.RedisURL == "" {
		return authoring.NoCache{}
	}

	opts, err := redis.ParseURL(config.AppConfig.RedisURL)
	if err != nil {
		log.Printf("Warning: invalid REDIS_URL, section cache disabled: %v", err)
		return authoring.NoCache{}
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: Redis unreachable, section cache disabled: %v", err)
		return authoring.NoCache{}
	}
	return authoring.NewRedisSectionCache(rdb, config.AppConfig.SectionCacheTTL)
}

func main() {
	config.LoadConfig()
	database.ConnectDb()
	services.Initialize(config.AppConfig.APIBaseURL, config.AppConfig.APITimeout)

	policy, err := wizard.ParsePolicy(config.AppConfig.ImageFailurePolicy)
	if err != nil {
		log.Fatalf("Invalid IMAGE_FAILURE_POLICY: %v", err)
	}

	drafts := wizard.NewStore(database.Database.Db, config.AppConfig.DraftTTL)
	registrations := sessions.NewPendingStore(database.Database.Db, config.AppConfig.RegistrationTTL)

	authControllers.Setup(services.API, registrations)
	catalogControllers.Setup(services.API)
	courseControllers.Setup(services.API, drafts, sectionCache(), policy)
	dashboardControllers.Setup(services.API)
	walletControllers.Setup(services.API)

	if _, err := utils.StartCleanupScheduler(config.AppConfig.CleanupSchedule, map[string]utils.Purger{
		"course drafts":         drafts,
		"pending registrations": registrations,
	}); err != nil {
		log.Fatalf("Failed to start cleanup scheduler: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 25 << 20, // documents up to 20MB plus form overhead
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.AllowOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	api := app.Group("/api")
	authRoutes.SetupAuthRoutes(api)
	dashboardRoutes.SetupDashboardRoutes(api)
	courseRoutes.SetupCourseRoutes(api)
	courseRoutes.SetupMentorCourseRoutes(api)
	catalogRoutes.SetupCatalogRoutes(api)
	walletRoutes.SetupWalletRoutes(api)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
