package usecase

import (
	"context"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
)

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// CreateUser registers a user with the given email and name
	CreateUser(ctx context.Context, email, name string) (*entity.User, error)
}
