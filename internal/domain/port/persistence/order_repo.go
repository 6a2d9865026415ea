package persistence

import (
	"context"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
)

// OrderRepository defines the methods to store orders
type OrderRepository interface {
	// Create stores a new order and sets its ID and CreatedAt
	//
	// Possible errors:
	// - *ReferenceConstraintError: If the user does not exist
	// - *UniqueConstraintError: If the reference is already used
	// - *NumericOverflowError: If the quantity does not fit its column
	Create(ctx context.Context, order *entity.Order) error
}
