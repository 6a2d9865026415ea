package migration

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestMigrateAll(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	manager := NewMigrationManager(db, logger.NewNoopLogger(), model.All()...)

	version, err := manager.GetCurrentVersion(ctx)
	require.Error(t, err, "version table does not exist yet")
	assert.Empty(t, version)

	require.NoError(t, manager.MigrateAll(ctx))

	version, err = manager.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)

	assert.True(t, db.Migrator().HasTable(&model.User{}))
	assert.True(t, db.Migrator().HasIndex(&model.User{}, "ux_users_email"))

	// second run is a no-op
	require.NoError(t, manager.MigrateAll(ctx))
	var count int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var recorded model.MigrationVersion
	require.NoError(t, db.First(&recorded).Error)
	assert.Equal(t, "sqlite", recorded.Dialect)
	assert.Equal(t, "users,orders", recorded.Tables)
}

func TestGetCurrentVersionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMigrationManager(openSQLite(t), logger.NewNoopLogger()).GetCurrentVersion(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
