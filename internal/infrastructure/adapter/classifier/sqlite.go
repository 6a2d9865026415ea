package classifier

import (
	"errors"

	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/driver"
	"github.com/mattn/go-sqlite3"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

var sqliteExtendedErrors = map[int]domainerr.DatabaseError{
	sqlitelib.SQLITE_TOOBIG:                domainerr.MaxLength,
	sqlitelib.SQLITE_CONSTRAINT_NOTNULL:    domainerr.CannotInsertNull,
	sqlitelib.SQLITE_CONSTRAINT_UNIQUE:     domainerr.UniqueConstraint,
	sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY: domainerr.UniqueConstraint,
	sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY: domainerr.ReferenceConstraint,
}

// ClassifySQLiteCode maps an SQLite primary and extended result code to its category.
// Only SQLITE_CONSTRAINT and SQLITE_TOOBIG failures are considered.
func ClassifySQLiteCode(primary, extended int) (domainerr.DatabaseError, bool) {
	if primary != sqlitelib.SQLITE_CONSTRAINT && primary != sqlitelib.SQLITE_TOOBIG {
		return 0, false
	}
	category, ok := sqliteExtendedErrors[extended]
	return category, ok
}

// SQLite recognises errors from mattn/go-sqlite3 and modernc.org/sqlite
type SQLite struct{}

// NewSQLite creates an SQLite classifier
func NewSQLite() *SQLite {
	return &SQLite{}
}

// Classify implements driver.ErrorClassifier
func (SQLite) Classify(err error) (driver.Classification, bool) {
	var cgoErr sqlite3.Error
	if errors.As(err, &cgoErr) {
		return classified(ClassifySQLiteCode(int(cgoErr.Code), int(cgoErr.ExtendedCode)))(cgoErr)
	}

	var pureErr *sqlite.Error
	if errors.As(err, &pureErr) {
		// modernc reports the extended code; the primary code is its low byte
		code := pureErr.Code()
		return classified(ClassifySQLiteCode(code&0xff, code))(pureErr)
	}

	return driver.Classification{}, false
}
