package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/dbexceptions/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConnectRejectsUnparsableModels(t *testing.T) {
	config := DefaultConfig(DriverSQLite)
	config.Database = ":memory:"
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	manager := NewManager(config, logger.NewNoopLogger(), 42)

	db, err := manager.Connect()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid model metadata")
	assert.Nil(t, db)
	assert.Nil(t, manager.DB())
	assert.Nil(t, manager.Processor())
}

func TestConnectionPoolMonitor(t *testing.T) {
	db := NewSQLiteTestDBManager(t, logger.NewNoopLogger()).Connect(t)
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Maybe()

	monitor := NewConnectionPoolMonitor(db, log)
	assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())

	require.NoError(t, monitor.Start(time.Hour))
	metrics := monitor.GetMetrics()
	assert.Equal(t, "sqlite", metrics.Dialect)
	assert.Equal(t, 1, metrics.MaxOpenConnections)

	monitor.Stop()
	monitor.Stop()
}
