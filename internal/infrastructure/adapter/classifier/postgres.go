package classifier

import (
	"errors"

	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/driver"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
var sqlStateErrors = map[string]domainerr.DatabaseError{
	pgerrcode.StringDataRightTruncationDataException: domainerr.MaxLength,
	pgerrcode.NumericValueOutOfRange:                 domainerr.NumericOverflow,
	pgerrcode.NotNullViolation:                       domainerr.CannotInsertNull,
	pgerrcode.UniqueViolation:                        domainerr.UniqueConstraint,
	pgerrcode.ForeignKeyViolation:                    domainerr.ReferenceConstraint,
}

// ClassifySQLState maps a PostgreSQL SQLSTATE to its category
func ClassifySQLState(code string) (domainerr.DatabaseError, bool) {
	category, ok := sqlStateErrors[code]
	return category, ok
}

// Postgres recognises errors from pgx (*pgconn.PgError) and lib/pq (*pq.Error)
type Postgres struct{}

// NewPostgres creates a PostgreSQL classifier
func NewPostgres() *Postgres {
	return &Postgres{}
}

// Classify implements driver.ErrorClassifier
func (Postgres) Classify(err error) (driver.Classification, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classified(ClassifySQLState(pgErr.Code))(pgErr)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classified(ClassifySQLState(string(pqErr.Code)))(pqErr)
	}

	return driver.Classification{}, false
}

// classified pairs a table lookup with the driver error it was computed from
func classified(category domainerr.DatabaseError, ok bool) func(error) (driver.Classification, bool) {
	return func(driverErr error) (driver.Classification, bool) {
		if !ok {
			return driver.Classification{}, false
		}
		return driver.Classification{Category: category, DriverError: driverErr}, true
	}
}
