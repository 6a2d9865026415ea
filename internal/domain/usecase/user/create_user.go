package user

import (
	"context"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
	errs "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
)

// CreateUser registers a new user. Duplicate emails are not checked up front:
// the unique index reports them and the typed failure is returned as is.
func (u *UserUseCase) CreateUser(ctx context.Context, email, name string) (*entity.User, error) {
	user, err := entity.NewUser(email, name)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		fields := map[string]any{
			"email": user.Email,
			"error": err.Error(),
		}
		if constraint, ok := errs.ConstraintOf(err); ok && constraint.Resolved() {
			fields["constraint"] = constraint.ConstraintName
		}
		u.logger.Error("Failed to create user", fields)
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
	})

	return user, nil
}
