package exception

import (
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
)

// Option customises a failure built by Create
type Option func(*domainerr.Constraint)

// WithConstraint attributes a unique or reference failure to the given constraint.
// It has no effect on categories that carry no constraint identity.
func WithConstraint(details entity.ConstraintDetails) Option {
	return func(c *domainerr.Constraint) {
		c.ConstraintName = details.Name
		c.ConstraintProperties = append([]string(nil), details.Properties...)
		c.SchemaQualifiedTableName = details.SchemaQualifiedTableName
	}
}

// Create builds the typed failure for category, wrapping cause.
// An unknown category yields cause unchanged.
func Create(category domainerr.DatabaseError, cause error, entries []any, opts ...Option) error {
	failure := domainerr.Failure{Err: cause, Entries: entries}

	var constraint domainerr.Constraint
	for _, opt := range opts {
		opt(&constraint)
	}

	switch category {
	case domainerr.UniqueConstraint:
		return &domainerr.UniqueConstraintError{Failure: failure, Constraint: constraint}
	case domainerr.ReferenceConstraint:
		return &domainerr.ReferenceConstraintError{Failure: failure, Constraint: constraint}
	case domainerr.CannotInsertNull:
		return &domainerr.CannotInsertNullError{Failure: failure}
	case domainerr.MaxLength:
		return &domainerr.MaxLengthExceededError{Failure: failure}
	case domainerr.NumericOverflow:
		return &domainerr.NumericOverflowError{Failure: failure}
	default:
		return cause
	}
}
