package classifier

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/driver"
)

// Dialect names as reported by gorm dialectors
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
	DialectMySQL    = "mysql"
)

// ForDialect returns the classifier for a database engine, falling back to
// gorm's translated errors
func ForDialect(dialect string) (driver.ErrorClassifier, error) {
	var engine driver.ErrorClassifier

	switch strings.ToLower(dialect) {
	case DialectPostgres, "postgresql", "pgx":
		engine = NewPostgres()
	case DialectSQLite, "sqlite3":
		engine = NewSQLite()
	case DialectMySQL, "mariadb":
		engine = NewMySQL()
	default:
		return nil, fmt.Errorf("unsupported database dialect: %s", dialect)
	}

	return Chain{engine, GormTranslated{}}, nil
}
