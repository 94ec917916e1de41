package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bucket-manager/core/loader"
	"bucket-manager/core/logger"
	"bucket-manager/core/middleware/auth"
	"bucket-manager/core/middleware/rayid"
	"bucket-manager/feature/audit"
	"bucket-manager/feature/integrity"
	"bucket-manager/feature/objectstore"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "bucket-manager/docs/swagger"
)

// @title Bucket Manager API
// @version 1.0
// @description API for managing buckets and objects on S3-compatible storage.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bucket manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load configuration, logger, storage client and optional journal
		rt, err := setup(cmd)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer rt.close()
		logg := rt.logger
		zap.ReplaceGlobals(logg)
		cfg := rt.cfg

		if rt.store != nil {
			logg.Info("Operation journal enabled")
		}

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(objectstore.NewFeature(rt.client, logg, rt.journal()))
		mgr.Register(integrity.NewFeature(rt.client, cfg.Storage.Bucket, cfg.Storage.Region, logg, rt.db))
		mgr.Register(audit.NewFeature(rt.store, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		if cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		} else {
			logg.Warn("No API key configured, the API is unauthenticated")
		}

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("storage", cfg.Storage.Endpoint),
				zap.String("bucket", cfg.Storage.Bucket))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
