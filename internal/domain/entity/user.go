package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
)

// User is a registered customer
type User struct {
	ID        uint64
	Email     string
	Name      string
	CreatedAt time.Time
}

// NewUser creates a user. Only the shape of the email is checked here;
// uniqueness and column limits are left to the database.
func NewUser(email, name string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidRequest
	}
	return &User{
		Email: strings.ToLower(email),
		Name:  strings.TrimSpace(name),
	}, nil
}
