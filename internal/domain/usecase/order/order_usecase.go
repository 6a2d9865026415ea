package order

import (
	"context"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/persistence"
)

// OrderUseCase handles order-related business logic
type OrderUseCase struct {
	orderRepo persistence.OrderRepository
	logger    coreport.Logger
}

// NewOrderUseCase creates a new OrderUseCase
func NewOrderUseCase(orderRepo persistence.OrderRepository, logger coreport.Logger) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// PlaceOrder stores an order. The user is not looked up first;
// a missing user surfaces as a reference constraint failure.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, userID uint64, reference string, quantity int32) (*entity.Order, error) {
	order, err := entity.NewOrder(userID, reference, quantity)
	if err != nil {
		return nil, err
	}

	if err := o.orderRepo.Create(ctx, order); err != nil {
		o.logger.Error("Failed to place order", map[string]any{
			"userId":    userID,
			"reference": reference,
			"error":     err.Error(),
		})
		return nil, err
	}

	o.logger.Info("Order placed", map[string]any{
		"orderId": order.ID,
		"userId":  userID,
	})

	return order, nil
}
