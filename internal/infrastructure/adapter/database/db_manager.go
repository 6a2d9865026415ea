package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/usecase/exception"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/classifier"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/metadata"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	models            []any
	db                *gorm.DB
	logger            coreport.Logger
	processor         *exception.Processor
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager. models are the gorm models
// whose constraints failures are attributed to.
func NewManager(config *Config, logger coreport.Logger, models ...any) *Manager {
	return &Manager{
		config: config,
		models: models,
		logger: logger,
	}
}

// Connect establishes a database connection and installs the exception plugin
func (m *Manager) Connect() (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	var err error
	var gormDB *gorm.DB

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			time.Sleep(m.config.RetryDelay)
		}

		gormDB, err = gorm.Open(m.dialector(), &gorm.Config{
			Logger:      NewDatabaseLogger(m.logger, m.config.LogLevel),
			PrepareStmt: m.config.Driver != DriverSQLite,
		})
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	if m.config.InMemory() {
		// every connection to an in-memory database sees its own empty database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	}
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	if err := m.installExceptions(gormDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":          m.config.Driver,
		"host":            m.config.Host,
		"port":            m.config.Port,
		"name":            m.config.Database,
		"max_open_conns":  m.config.MaxOpenConns,
		"max_idle_conns":  m.config.MaxIdleConns,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.models...)
	m.connectionMonitor = NewConnectionPoolMonitor(gormDB, m.logger)

	if err := m.connectionMonitor.Start(30 * time.Second); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	return m.db, nil
}

// installExceptions wires the failure processor for the connected dialect into gorm
func (m *Manager) installExceptions(db *gorm.DB) error {
	errorClassifier, err := classifier.ForDialect(db.Dialector.Name())
	if err != nil {
		return err
	}

	model := metadata.FromDB(db, m.config.DefaultSchema, m.models...)
	// unparsable models would otherwise only surface on the first constraint failure
	if _, err := model.EntityTypes(); err != nil {
		return fmt.Errorf("invalid model metadata: %w", err)
	}
	m.processor = exception.NewProcessor(errorClassifier, model, m.logger)

	if err := db.Use(NewExceptionPlugin(m.processor)); err != nil {
		return fmt.Errorf("failed to install exception plugin: %w", err)
	}
	return nil
}

func (m *Manager) dialector() gorm.Dialector {
	dsn := m.config.DSN()
	switch m.config.Driver {
	case DriverMySQL:
		return gormmysql.Open(dsn)
	case DriverSQLite:
		return sqlite.Open(dsn)
	default:
		return postgres.Open(dsn)
	}
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Processor returns the failure processor installed on the connection
func (m *Manager) Processor() *exception.Processor {
	return m.processor
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}
