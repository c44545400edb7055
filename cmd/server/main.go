package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/NureDudukovOleksandr/Kozachok/internal/config"
	"github.com/NureDudukovOleksandr/Kozachok/internal/routes"
	"github.com/NureDudukovOleksandr/Kozachok/internal/store"
	mongostore "github.com/NureDudukovOleksandr/Kozachok/internal/store/mongo"
	pgstore "github.com/NureDudukovOleksandr/Kozachok/internal/store/postgres"
	"github.com/NureDudukovOleksandr/Kozachok/pkg/logger"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logger.NewZapLogger(cfg.AppEnv)

	// 2. Connect the document store
	ctx := context.Background()
	var profileStore store.ProfileStore
	switch cfg.StoreBackend {
	case config.BackendMongo:
		client, err := mongostore.Connect(ctx, cfg.MongoURL)
		if err != nil {
			zlog.Fatal("Failed to connect to mongodb", err)
		}
		defer func() { _ = client.Disconnect(ctx) }()
		profileStore = mongostore.NewProfileStore(client.Database(cfg.MongoDatabase))
	default:
		pool, err := pgstore.Connect(ctx, cfg.DBUrl)
		if err != nil {
			zlog.Fatal("Failed to connect to database", err)
		}
		defer pool.Close()
		profileStore = pgstore.NewProfileStore(pool)
	}
	zlog.Info("Document store connected", zap.String("backend", cfg.StoreBackend))

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	routes.RegisterRoutes(app, cfg, profileStore)

	// 4. Start Server
	zlog.Info("Server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed to start", err)
	}
}
