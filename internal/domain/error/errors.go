package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeUniqueConstraint    = 4090
	CodeReferenceConstraint = 4091
	CodeCannotInsertNull    = 4220
	CodeMaxLengthExceeded   = 4221
	CodeNumericOverflow     = 4222
	CodeInvalidRequest      = 4000

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// DatabaseError is the portable category of a classified driver failure
type DatabaseError int

const (
	// UniqueConstraint is a unique index or primary key violation
	UniqueConstraint DatabaseError = iota + 1
	// CannotInsertNull is a NOT NULL violation
	CannotInsertNull
	// MaxLength is a value too long for its column
	MaxLength
	// NumericOverflow is a numeric value out of the column's range
	NumericOverflow
	// ReferenceConstraint is a foreign key violation
	ReferenceConstraint
)

var databaseErrorNames = map[DatabaseError]string{
	UniqueConstraint:    "unique_constraint",
	CannotInsertNull:    "cannot_insert_null",
	MaxLength:           "max_length",
	NumericOverflow:     "numeric_overflow",
	ReferenceConstraint: "reference_constraint",
}

// String returns the snake_case name of the category
func (e DatabaseError) String() string {
	if name, ok := databaseErrorNames[e]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether e is one of the five known categories
func (e DatabaseError) Valid() bool {
	_, ok := databaseErrorNames[e]
	return ok
}

// Base error types
var (
	// ErrUniqueConstraint is matched by every UniqueConstraintError
	ErrUniqueConstraint = errors.New("unique constraint violated")

	// ErrCannotInsertNull is matched by every CannotInsertNullError
	ErrCannotInsertNull = errors.New("cannot insert null")

	// ErrMaxLengthExceeded is matched by every MaxLengthExceededError
	ErrMaxLengthExceeded = errors.New("maximum length exceeded")

	// ErrNumericOverflow is matched by every NumericOverflowError
	ErrNumericOverflow = errors.New("numeric overflow")

	// ErrReferenceConstraint is matched by every ReferenceConstraintError
	ErrReferenceConstraint = errors.New("reference constraint violated")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

var categorySentinels = map[DatabaseError]error{
	UniqueConstraint:    ErrUniqueConstraint,
	CannotInsertNull:    ErrCannotInsertNull,
	MaxLength:           ErrMaxLengthExceeded,
	NumericOverflow:     ErrNumericOverflow,
	ReferenceConstraint: ErrReferenceConstraint,
}

// Sentinel returns the base error matched by results of the given category
func (e DatabaseError) Sentinel() error {
	return categorySentinels[e]
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUniqueConstraint):
		return CodeUniqueConstraint
	case errors.Is(err, ErrReferenceConstraint):
		return CodeReferenceConstraint
	case errors.Is(err, ErrCannotInsertNull):
		return CodeCannotInsertNull
	case errors.Is(err, ErrMaxLengthExceeded):
		return CodeMaxLengthExceeded
	case errors.Is(err, ErrNumericOverflow):
		return CodeNumericOverflow
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// Failure holds what every classified database failure carries
type Failure struct {
	// Err is the original driver failure
	Err error
	// Entries are the entities being saved when the failure happened, empty outside a save
	Entries []any
}

// Unwrap returns the original driver failure
func (f *Failure) Unwrap() error {
	return f.Err
}

func (f *Failure) cause() string {
	if f.Err == nil {
		return "<nil>"
	}
	return f.Err.Error()
}

func (f *Failure) logFields(category DatabaseError) map[string]any {
	fields := map[string]any{
		"error_type": category.String(),
		"entries":    len(f.Entries),
		"error_code": ErrorCode(category.Sentinel()),
	}
	if f.Err != nil {
		fields["error"] = f.Err.Error()
	}
	return fields
}

// Constraint identifies the named constraint a failure was attributed to
type Constraint struct {
	// ConstraintName is empty when the constraint could not be resolved
	ConstraintName string
	// ConstraintProperties lists the constrained properties in key order, nil when unresolved
	ConstraintProperties []string
	// SchemaQualifiedTableName is the table owning the constraint, empty when unresolved
	SchemaQualifiedTableName string
}

// Resolved reports whether the constraint was attributed
func (c Constraint) Resolved() bool {
	return c.ConstraintName != ""
}

func (c Constraint) describe() string {
	if !c.Resolved() {
		return ""
	}
	return fmt.Sprintf(" (constraint %s on %s [%s])",
		c.ConstraintName, c.SchemaQualifiedTableName, strings.Join(c.ConstraintProperties, ", "))
}

func (c Constraint) addLogFields(fields map[string]any) map[string]any {
	if c.Resolved() {
		fields["constraint"] = c.ConstraintName
		fields["table"] = c.SchemaQualifiedTableName
		fields["columns"] = c.ConstraintProperties
	}
	return fields
}

// UniqueConstraintError is raised when a unique index or primary key is violated
type UniqueConstraintError struct {
	Failure
	Constraint
}

// Error implements the error interface for UniqueConstraintError
func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("%s%s: %s", ErrUniqueConstraint, e.describe(), e.cause())
}

// Is checks if the target error is an ErrUniqueConstraint
func (e *UniqueConstraintError) Is(target error) bool {
	return target == ErrUniqueConstraint
}

// LogFields returns a map of fields for structured logging
func (e *UniqueConstraintError) LogFields() map[string]any {
	return e.addLogFields(e.logFields(UniqueConstraint))
}

// ReferenceConstraintError is raised when a foreign key is violated
type ReferenceConstraintError struct {
	Failure
	Constraint
}

// Error implements the error interface for ReferenceConstraintError
func (e *ReferenceConstraintError) Error() string {
	return fmt.Sprintf("%s%s: %s", ErrReferenceConstraint, e.describe(), e.cause())
}

// Is checks if the target error is an ErrReferenceConstraint
func (e *ReferenceConstraintError) Is(target error) bool {
	return target == ErrReferenceConstraint
}

// LogFields returns a map of fields for structured logging
func (e *ReferenceConstraintError) LogFields() map[string]any {
	return e.addLogFields(e.logFields(ReferenceConstraint))
}

// CannotInsertNullError is raised when NULL is written to a non-nullable column
type CannotInsertNullError struct {
	Failure
}

// Error implements the error interface for CannotInsertNullError
func (e *CannotInsertNullError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCannotInsertNull, e.cause())
}

// Is checks if the target error is an ErrCannotInsertNull
func (e *CannotInsertNullError) Is(target error) bool {
	return target == ErrCannotInsertNull
}

// LogFields returns a map of fields for structured logging
func (e *CannotInsertNullError) LogFields() map[string]any {
	return e.logFields(CannotInsertNull)
}

// MaxLengthExceededError is raised when a value is too long for its column
type MaxLengthExceededError struct {
	Failure
}

// Error implements the error interface for MaxLengthExceededError
func (e *MaxLengthExceededError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMaxLengthExceeded, e.cause())
}

// Is checks if the target error is an ErrMaxLengthExceeded
func (e *MaxLengthExceededError) Is(target error) bool {
	return target == ErrMaxLengthExceeded
}

// LogFields returns a map of fields for structured logging
func (e *MaxLengthExceededError) LogFields() map[string]any {
	return e.logFields(MaxLength)
}

// NumericOverflowError is raised when a numeric value is out of range for its column
type NumericOverflowError struct {
	Failure
}

// Error implements the error interface for NumericOverflowError
func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNumericOverflow, e.cause())
}

// Is checks if the target error is an ErrNumericOverflow
func (e *NumericOverflowError) Is(target error) bool {
	return target == ErrNumericOverflow
}

// LogFields returns a map of fields for structured logging
func (e *NumericOverflowError) LogFields() map[string]any {
	return e.logFields(NumericOverflow)
}

// Category returns the category of the first classified failure in err's chain
func Category(err error) (DatabaseError, bool) {
	for category, sentinel := range categorySentinels {
		if errors.Is(err, sentinel) {
			return category, true
		}
	}
	return 0, false
}

// ConstraintOf returns the attribution carried by a unique or reference failure in err's chain
func ConstraintOf(err error) (Constraint, bool) {
	var unique *UniqueConstraintError
	if errors.As(err, &unique) {
		return unique.Constraint, true
	}
	var reference *ReferenceConstraintError
	if errors.As(err, &reference) {
		return reference.Constraint, true
	}
	return Constraint{}, false
}

// IsUniqueConstraintError checks if the error is a unique constraint violation
func IsUniqueConstraintError(err error) bool {
	return errors.Is(err, ErrUniqueConstraint)
}

// IsReferenceConstraintError checks if the error is a foreign key violation
func IsReferenceConstraintError(err error) bool {
	return errors.Is(err, ErrReferenceConstraint)
}

// IsCannotInsertNullError checks if the error is a NOT NULL violation
func IsCannotInsertNullError(err error) bool {
	return errors.Is(err, ErrCannotInsertNull)
}

// IsMaxLengthExceededError checks if the error is a value-too-long failure
func IsMaxLengthExceededError(err error) bool {
	return errors.Is(err, ErrMaxLengthExceeded)
}

// IsNumericOverflowError checks if the error is a numeric overflow
func IsNumericOverflowError(err error) bool {
	return errors.Is(err, ErrNumericOverflow)
}

// IsDatabaseError checks if the error is any classified database failure
func IsDatabaseError(err error) bool {
	_, ok := Category(err)
	return ok
}
