package user

import (
	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/persistence"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(userRepo persistence.UserRepository, logger coreport.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}
