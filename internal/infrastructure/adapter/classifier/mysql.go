package classifier

import (
	"errors"

	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/driver"
	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers
const (
	erDupEntry           = 1062
	erBadNullError       = 1048
	erDataTooLong        = 1406
	erWarnDataOutOfRange = 1264
	erNoReferencedRow    = 1216
	erRowIsReferenced    = 1217
	erRowIsReferenced2   = 1451
	erNoReferencedRow2   = 1452
)

var mysqlErrors = map[uint16]domainerr.DatabaseError{
	erDupEntry:           domainerr.UniqueConstraint,
	erBadNullError:       domainerr.CannotInsertNull,
	erDataTooLong:        domainerr.MaxLength,
	erWarnDataOutOfRange: domainerr.NumericOverflow,
	erNoReferencedRow:    domainerr.ReferenceConstraint,
	erRowIsReferenced:    domainerr.ReferenceConstraint,
	erRowIsReferenced2:   domainerr.ReferenceConstraint,
	erNoReferencedRow2:   domainerr.ReferenceConstraint,
}

// ClassifyMySQLNumber maps a MySQL server error number to its category
func ClassifyMySQLNumber(number uint16) (domainerr.DatabaseError, bool) {
	category, ok := mysqlErrors[number]
	return category, ok
}

// MySQL recognises *mysql.MySQLError from go-sql-driver/mysql
type MySQL struct{}

// NewMySQL creates a MySQL classifier
func NewMySQL() *MySQL {
	return &MySQL{}
}

// Classify implements driver.ErrorClassifier
func (MySQL) Classify(err error) (driver.Classification, bool) {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return classified(ClassifyMySQLNumber(mysqlErr.Number))(mysqlErr)
	}
	return driver.Classification{}, false
}
