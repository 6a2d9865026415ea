package driver

import (
	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
)

// Classification is the result of recognising a driver failure
type Classification struct {
	Category domainerr.DatabaseError
	// DriverError is the engine-specific error found in the failure chain
	DriverError error
}

// Message returns the raw driver message used for constraint matching
func (c Classification) Message() string {
	if c.DriverError == nil {
		return ""
	}
	return c.DriverError.Error()
}

// ErrorClassifier maps engine-specific driver errors to portable categories
type ErrorClassifier interface {
	// Classify returns false when err carries no driver error this classifier understands
	Classify(err error) (Classification, bool)
}

// ClassifierFunc adapts a function to ErrorClassifier
type ClassifierFunc func(err error) (Classification, bool)

// Classify calls f(err)
func (f ClassifierFunc) Classify(err error) (Classification, bool) {
	return f(err)
}
