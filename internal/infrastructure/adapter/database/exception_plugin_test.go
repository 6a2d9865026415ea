package database

import (
	"errors"
	"testing"

	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/model"
	usecasemocks "github.com/amirhossein-jamali/dbexceptions/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestExceptionPluginOnSQLite(t *testing.T) {
	testDB := NewSQLiteTestDBManager(t, logger.NewNoopLogger())
	db := testDB.Connect(t)
	require.NotNil(t, testDB.Manager.Processor())

	existing := testDB.CreateTestUser(t, "taken@example.com")

	t.Run("Duplicate email", func(t *testing.T) {
		duplicate := model.User{Email: "taken@example.com", Name: "Copy"}

		err := db.Create(&duplicate).Error

		var unique *domainerr.UniqueConstraintError
		require.ErrorAs(t, err, &unique)
		assert.Equal(t, []any{&duplicate}, unique.Entries)
		// SQLite messages name columns, not constraints
		assert.False(t, unique.Resolved())
		assert.Contains(t, unique.Err.Error(), "UNIQUE constraint failed")
		assert.Equal(t, domainerr.CodeUniqueConstraint, domainerr.ErrorCode(err))
	})

	t.Run("Duplicate within a batch", func(t *testing.T) {
		batch := []model.User{
			{Email: "one@example.com", Name: "One"},
			{Email: "one@example.com", Name: "Again"},
		}

		err := db.Create(&batch).Error

		var unique *domainerr.UniqueConstraintError
		require.ErrorAs(t, err, &unique)
		require.Len(t, unique.Entries, 2)
		assert.Same(t, &batch[0], unique.Entries[0])
	})

	t.Run("Unknown user", func(t *testing.T) {
		order := model.Order{UserID: existing.ID + 1000, Reference: "ORD-404", Quantity: 1}

		err := db.Create(&order).Error

		var reference *domainerr.ReferenceConstraintError
		require.ErrorAs(t, err, &reference)
		assert.Equal(t, []any{&order}, reference.Entries)
	})

	t.Run("Null through raw SQL", func(t *testing.T) {
		err := db.Exec("INSERT INTO users (email, name, created_at, updated_at) VALUES (NULL, 'x', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)").Error

		var null *domainerr.CannotInsertNullError
		require.ErrorAs(t, err, &null)
		assert.Empty(t, null.Entries)
	})

	t.Run("Deleting a referenced user", func(t *testing.T) {
		owner := testDB.CreateTestUser(t, "owner@example.com")
		require.NoError(t, db.Create(&model.Order{UserID: owner.ID, Reference: "ORD-1", Quantity: 1}).Error)

		err := db.Delete(&owner).Error

		assert.True(t, domainerr.IsReferenceConstraintError(err))
		var count int64
		require.NoError(t, db.Model(&model.User{}).Where("id = ?", owner.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Unrelated failures pass through", func(t *testing.T) {
		var user model.User
		err := db.Where("email = ?", "nobody@example.com").First(&user).Error
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.False(t, domainerr.IsDatabaseError(err))

		err = db.Exec("SELEC 1").Error
		require.Error(t, err)
		assert.False(t, domainerr.IsDatabaseError(err))
	})

	t.Run("Successful writes are untouched", func(t *testing.T) {
		user := model.User{Email: "fresh@example.com", Name: "Fresh"}
		require.NoError(t, db.Create(&user).Error)
		assert.NotZero(t, user.ID)
	})
}

func TestExceptionPluginReplacesError(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(":memory:")), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	processor := usecasemocks.NewMockFailureProcessor(t)
	plugin := NewExceptionPlugin(processor)
	require.NoError(t, db.Use(plugin))
	assert.Equal(t, "dbexceptions", plugin.Name())
	assert.ErrorIs(t, db.Use(plugin), gorm.ErrRegistered)

	replaced := errors.New("replaced")

	order := model.Order{UserID: 99, Reference: "ORD-1", Quantity: 1}
	processor.EXPECT().SaveChangesFailed(mock.Anything, []any{&order}).Return(replaced).Once()
	assert.Same(t, replaced, db.Create(&order).Error)

	processor.EXPECT().CommandFailed(mock.Anything).Return(replaced).Once()
	assert.Same(t, replaced, db.Exec("INSERT INTO orders (user_id) VALUES (1)").Error)
}

func TestStatementEntries(t *testing.T) {
	user := &model.User{Email: "a@example.com"}
	users := []model.User{{Email: "a@example.com"}, {Email: "b@example.com"}}
	pointers := []*model.User{user}
	updates := map[string]any{"name": "x"}

	testCases := []struct {
		name     string
		stmt     *gorm.Statement
		expected []any
	}{
		{"Nil statement", nil, nil},
		{"No destination", &gorm.Statement{}, nil},
		{"Single struct", &gorm.Statement{Dest: user}, []any{user}},
		{"Slice of structs", &gorm.Statement{Dest: &users}, []any{&users[0], &users[1]}},
		{"Slice of pointers", &gorm.Statement{Dest: pointers}, []any{user}},
		{"Map update reports the model", &gorm.Statement{Dest: updates, Model: user}, []any{user}},
		{"Map without model", &gorm.Statement{Dest: updates}, []any{updates}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, statementEntries(tc.stmt))
		})
	}
}
