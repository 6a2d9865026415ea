package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	orderUseCase "github.com/amirhossein-jamali/dbexceptions/internal/domain/usecase/order"
	userUseCase "github.com/amirhossein-jamali/dbexceptions/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Connect to the database; the manager installs the exception plugin on the connection
	dbConfig := database.CreateConfigFromViperConfig(cfg)
	dbManager := database.NewManager(dbConfig, appLogger, model.All()...)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error":  err.Error(),
			"driver": dbConfig.Driver,
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	err = dbManager.MigrationManager().MigrateAll(migrateCtx)
	cancelMigrate()
	if err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	orderRepo := repository.NewOrderRepository(dbManager.DB(), appLogger)

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, appLogger)
	orderUseCaseImpl := orderUseCase.NewOrderUseCase(orderRepo, appLogger)

	// Initialize API handlers
	userHandler := handler.NewUserHandler(userUseCaseImpl, appLogger)
	orderHandler := handler.NewOrderHandler(orderUseCaseImpl, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, userHandler, orderHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":   cfg.Server.Port,
			"env":    cfg.Environment,
			"driver": dbConfig.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration; sqlite only needs a file path
	driver := strings.ToLower(cfg.Database.Driver)
	switch driver {
	case database.DriverSQLite:
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or "+config.EnvPrefix+"_DB_NAME environment variable)")
		}
	case database.DriverPostgres, database.DriverMySQL:
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host")
		}
		if cfg.Database.Port == "" {
			missingConfigs = append(missingConfigs, "database.port")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database")
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be one of: %s, %s, or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverMySQL, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if driver == database.DriverPostgres {
			sslMode := strings.ToLower(cfg.Database.SSLMode)
			if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}

		if driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite is meant for development and tests")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
