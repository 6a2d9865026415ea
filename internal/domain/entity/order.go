package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
)

// Order is a purchase placed by a user
type Order struct {
	ID        uint64
	UserID    uint64
	Reference string
	Quantity  int32
	CreatedAt time.Time
}

// NewOrder creates an order. The user reference is checked by the database.
func NewOrder(userID uint64, reference string, quantity int32) (*Order, error) {
	if userID == 0 || reference == "" || quantity <= 0 {
		return nil, errs.ErrInvalidRequest
	}
	return &Order{
		UserID:    userID,
		Reference: reference,
		Quantity:  quantity,
	}, nil
}
