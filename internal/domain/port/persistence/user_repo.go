package persistence

import (
	"context"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
)

// UserRepository defines the methods to store users
type UserRepository interface {
	// Create stores a new user and sets its ID and CreatedAt
	//
	// Possible errors:
	// - *UniqueConstraintError: If the email is already registered
	// - *MaxLengthExceededError: If a column limit is exceeded
	Create(ctx context.Context, user *entity.User) error
}
