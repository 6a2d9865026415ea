package classifier

import (
	"errors"

	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/driver"
	"gorm.io/gorm"
)

// GormTranslated recognises the errors gorm substitutes for driver errors
// when TranslateError is enabled. The driver message is lost by then, so
// these failures are never attributed to a constraint.
type GormTranslated struct{}

// Classify implements driver.ErrorClassifier
func (GormTranslated) Classify(err error) (driver.Classification, bool) {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return driver.Classification{Category: domainerr.UniqueConstraint, DriverError: gorm.ErrDuplicatedKey}, true
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return driver.Classification{Category: domainerr.ReferenceConstraint, DriverError: gorm.ErrForeignKeyViolated}, true
	default:
		return driver.Classification{}, false
	}
}

// Chain tries each classifier in order and returns the first classification
type Chain []driver.ErrorClassifier

// Classify implements driver.ErrorClassifier
func (c Chain) Classify(err error) (driver.Classification, bool) {
	for _, classifier := range c {
		if classification, ok := classifier.Classify(err); ok {
			return classification, true
		}
	}
	return driver.Classification{}, false
}
