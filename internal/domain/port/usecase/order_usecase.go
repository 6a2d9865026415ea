package usecase

import (
	"context"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
)

// OrderUseCase defines methods for order-related business operations
type OrderUseCase interface {
	// PlaceOrder stores an order for an existing user
	PlaceOrder(ctx context.Context, userID uint64, reference string, quantity int32) (*entity.Order, error)
}
