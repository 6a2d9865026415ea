package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager *Manager
	Config  *Config
	Logger  coreport.Logger
}

// NewSQLiteTestDBManager creates a test manager over a private in-memory SQLite database
func NewSQLiteTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	config := DefaultConfig(DriverSQLite)
	config.Database = ":memory:"
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	return &TestDBManager{
		Manager: NewManager(config, logger, model.All()...),
		Config:  config,
		Logger:  logger,
	}
}

// NewPostgresTestDBManager creates a test manager over the database named by the
// TEST_DB_* variables. The test is skipped when TEST_DB_HOST is not set.
func NewPostgresTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host, ok := os.LookupEnv("TEST_DB_HOST")
	if !ok {
		t.Skip("TEST_DB_HOST not set, skipping PostgreSQL integration test")
	}

	config := DefaultConfig(DriverPostgres)
	config.Host = host
	config.Port = getEnvIntOrDefault("TEST_DB_PORT", 5432)
	config.Username = getEnvOrDefault("TEST_DB_USERNAME", "postgres")
	config.Password = getEnvOrDefault("TEST_DB_PASSWORD", "postgres")
	config.Database = getEnvOrDefault("TEST_DB_DATABASE", "dbexceptions_test")
	config.SSLMode = getEnvOrDefault("TEST_DB_SSL_MODE", "disable")
	config.MaxOpenConns = 10
	config.MaxIdleConns = 5
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	return &TestDBManager{
		Manager: NewManager(config, logger, model.All()...),
		Config:  config,
		Logger:  logger,
	}
}

// Connect connects to the test database and migrates a clean schema
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect()
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { m.Close(t) })

	if err := dropAllTables(db); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := m.Manager.MigrationManager().MigrateAll(ctx); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}

	return db
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// CreateTestUser stores a user with the given email
func (m *TestDBManager) CreateTestUser(t *testing.T, email string) model.User {
	t.Helper()

	user := model.User{Email: email, Name: "Test User"}
	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// dropAllTables drops the model tables, dependents first
func dropAllTables(db *gorm.DB) error {
	models := model.All()
	tables := make([]any, 0, len(models)+1)
	for i := len(models) - 1; i >= 0; i-- {
		tables = append(tables, models[i])
	}
	tables = append(tables, &model.MigrationVersion{})

	if err := db.Migrator().DropTable(tables...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return nil
}

// Helper functions to get environment variables or defaults
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
