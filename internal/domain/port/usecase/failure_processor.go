package usecase

// FailureProcessor turns raw driver failures into typed database failures.
// Both methods return err unchanged when it is nil, already typed or not recognised.
type FailureProcessor interface {
	// CommandFailed handles a failure raised by a single command
	CommandFailed(err error) error

	// SaveChangesFailed handles a failure raised while saving entries
	SaveChangesFailed(err error, entries []any) error
}
