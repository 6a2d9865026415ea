package repository

import (
	"context"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM.
// The connection is expected to carry the exception plugin, so write
// failures already arrive as typed database failures.
type UserRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Email: user.Email,
		Name:  user.Name,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		r.logger.Debug("Database error when creating user", map[string]any{
			"email": user.Email,
			"error": err.Error(),
		})
		return err
	}

	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	return nil
}
