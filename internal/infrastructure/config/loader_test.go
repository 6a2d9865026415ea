package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromViperDefaults(t *testing.T) {
	conf, err := LoadFromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, Development, conf.Environment)
	assert.Equal(t, "postgres", conf.Database.Driver)
	assert.Equal(t, 8080, conf.Server.Port)
	assert.Equal(t, 5*time.Second, conf.Database.QueryTimeout)
	assert.Equal(t, 30*time.Minute, conf.Database.ConnMaxLifetime)
	assert.Equal(t, time.Second, conf.Database.RetryDelay)
	assert.Equal(t, "info", conf.Logger.Level)
}

func TestLoadFromViperEnvironmentOverrides(t *testing.T) {
	t.Setenv("DBX_ENV", "Test")
	t.Setenv("DBX_DB_DRIVER", "sqlite")
	t.Setenv("DBX_DB_NAME", "shop.db")
	t.Setenv("DBX_DB_DEFAULT_SCHEMA", "main")
	t.Setenv("DBX_DB_MAX_OPEN_CONNS", "1")
	t.Setenv("DBX_DB_RETRY_ATTEMPTS", "not-a-number")

	v := viper.New()
	v.Set("database.driver", "postgres")
	v.Set("database.retryAttempts", 5)

	conf, err := LoadFromViper(v)
	require.NoError(t, err)

	assert.Equal(t, Test, conf.Environment)
	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, "shop.db", conf.Database.Database)
	assert.Equal(t, "main", conf.Database.DefaultSchema)
	assert.Equal(t, 1, conf.Database.MaxOpenConns)
	assert.Equal(t, 5, conf.Database.RetryAttempts, "malformed numbers are ignored")
}
