package classifier

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassifySQLState(t *testing.T) {
	testCases := []struct {
		code     string
		expected domainerr.DatabaseError
		ok       bool
	}{
		{"22001", domainerr.MaxLength, true},
		{"22003", domainerr.NumericOverflow, true},
		{"23502", domainerr.CannotInsertNull, true},
		{"23505", domainerr.UniqueConstraint, true},
		{"23503", domainerr.ReferenceConstraint, true},
		{"23514", 0, false}, // check_violation
		{"42601", 0, false}, // syntax_error
		{"01004", 0, false}, // string_data_right_truncation warning
		{"", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			category, ok := ClassifySQLState(tc.code)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, category)
		})
	}
}

func TestPostgresClassify(t *testing.T) {
	classifier := NewPostgres()

	t.Run("pgx error wrapped by gorm", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "ux_users_email"`}

		classification, ok := classifier.Classify(fmt.Errorf("create user: %w", pgErr))

		require.True(t, ok)
		assert.Equal(t, domainerr.UniqueConstraint, classification.Category)
		assert.Same(t, pgErr, classification.DriverError)
		assert.Contains(t, classification.Message(), "ux_users_email")
	})

	t.Run("lib/pq error", func(t *testing.T) {
		pqErr := &pq.Error{Code: "23503", Message: `insert or update on table "orders" violates foreign key constraint "fk_orders_user"`}

		classification, ok := classifier.Classify(pqErr)

		require.True(t, ok)
		assert.Equal(t, domainerr.ReferenceConstraint, classification.Category)
		assert.Contains(t, classification.Message(), "fk_orders_user")
	})

	t.Run("unknown SQLSTATE", func(t *testing.T) {
		_, ok := classifier.Classify(&pgconn.PgError{Code: "42601", Message: "syntax error"})
		assert.False(t, ok)
	})

	t.Run("not a postgres error", func(t *testing.T) {
		_, ok := classifier.Classify(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestClassifySQLiteCode(t *testing.T) {
	testCases := []struct {
		name     string
		primary  int
		extended int
		expected domainerr.DatabaseError
		ok       bool
	}{
		{"Too big", 18, 18, domainerr.MaxLength, true},
		{"Not null", 19, 1299, domainerr.CannotInsertNull, true},
		{"Unique", 19, 2067, domainerr.UniqueConstraint, true},
		{"Primary key", 19, 1555, domainerr.UniqueConstraint, true},
		{"Foreign key", 19, 787, domainerr.ReferenceConstraint, true},
		{"Check", 19, 275, 0, false},
		{"Restrict trigger", 19, 1811, 0, false},
		{"Plain constraint", 19, 19, 0, false},
		{"Busy", 5, 5, 0, false},
		{"Foreign key code under other primary", 1, 787, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category, ok := ClassifySQLiteCode(tc.primary, tc.extended)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, category)
		})
	}
}

func TestSQLiteClassifyMattn(t *testing.T) {
	classifier := NewSQLite()
	sqliteErr := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}

	classification, ok := classifier.Classify(fmt.Errorf("insert: %w", sqliteErr))

	require.True(t, ok)
	assert.Equal(t, domainerr.CannotInsertNull, classification.Category)

	_, ok = classifier.Classify(sqlite3.Error{Code: sqlite3.ErrBusy, ExtendedCode: sqlite3.ErrBusyRecovery})
	assert.False(t, ok)
}

func TestSQLiteClassifyModernc(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY, email TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE UNIQUE INDEX ux_users_email ON users (email)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO users (id, email) VALUES (1, 'a@example.com')`)
	require.NoError(t, err)

	classifier := NewSQLite()

	_, err = db.Exec(`INSERT INTO users (id, email) VALUES (2, 'a@example.com')`)
	require.Error(t, err)
	classification, ok := classifier.Classify(err)
	require.True(t, ok)
	assert.Equal(t, domainerr.UniqueConstraint, classification.Category)

	_, err = db.Exec(`INSERT INTO users (id, email) VALUES (1, 'b@example.com')`)
	require.Error(t, err)
	classification, ok = classifier.Classify(err)
	require.True(t, ok)
	assert.Equal(t, domainerr.UniqueConstraint, classification.Category)

	_, err = db.Exec(`INSERT INTO users (id, email) VALUES (3, NULL)`)
	require.Error(t, err)
	classification, ok = classifier.Classify(err)
	require.True(t, ok)
	assert.Equal(t, domainerr.CannotInsertNull, classification.Category)

	_, err = db.Exec(`SELEC 1`)
	require.Error(t, err)
	_, ok = classifier.Classify(err)
	assert.False(t, ok)
}

func TestClassifyMySQLNumber(t *testing.T) {
	testCases := []struct {
		number   uint16
		expected domainerr.DatabaseError
		ok       bool
	}{
		{1062, domainerr.UniqueConstraint, true},
		{1048, domainerr.CannotInsertNull, true},
		{1406, domainerr.MaxLength, true},
		{1264, domainerr.NumericOverflow, true},
		{1216, domainerr.ReferenceConstraint, true},
		{1217, domainerr.ReferenceConstraint, true},
		{1451, domainerr.ReferenceConstraint, true},
		{1452, domainerr.ReferenceConstraint, true},
		{1064, 0, false}, // ER_PARSE_ERROR
		{1213, 0, false}, // ER_LOCK_DEADLOCK
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d", tc.number), func(t *testing.T) {
			category, ok := ClassifyMySQLNumber(tc.number)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, category)
		})
	}
}

func TestMySQLClassify(t *testing.T) {
	mysqlErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@example.com' for key 'users.ux_users_email'"}

	classification, ok := NewMySQL().Classify(mysqlErr)

	require.True(t, ok)
	assert.Equal(t, domainerr.UniqueConstraint, classification.Category)
	assert.Contains(t, classification.Message(), "users.ux_users_email")

	_, ok = NewMySQL().Classify(&pgconn.PgError{Code: "23505"})
	assert.False(t, ok)
}

func TestGormTranslatedFallback(t *testing.T) {
	classifier, err := ForDialect("postgres")
	require.NoError(t, err)

	classification, ok := classifier.Classify(gorm.ErrDuplicatedKey)
	require.True(t, ok)
	assert.Equal(t, domainerr.UniqueConstraint, classification.Category)

	classification, ok = classifier.Classify(fmt.Errorf("save: %w", gorm.ErrForeignKeyViolated))
	require.True(t, ok)
	assert.Equal(t, domainerr.ReferenceConstraint, classification.Category)

	_, ok = classifier.Classify(gorm.ErrRecordNotFound)
	assert.False(t, ok)
}

func TestForDialect(t *testing.T) {
	for _, dialect := range []string{"postgres", "sqlite", "mysql", "SQLite3", "pgx"} {
		classifier, err := ForDialect(dialect)
		assert.NoError(t, err, dialect)
		assert.NotNil(t, classifier, dialect)
	}

	_, err := ForDialect("sqlserver")
	assert.EqualError(t, err, "unsupported database dialect: sqlserver")
}
