package repository

import (
	"context"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// OrderRepository implements OrderRepository interface using GORM
type OrderRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, logger coreport.Logger) *OrderRepository {
	return &OrderRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new order
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := model.Order{
		UserID:    order.UserID,
		Reference: order.Reference,
		Quantity:  order.Quantity,
	}

	if err := r.db.WithContext(ctx).Create(&orderModel).Error; err != nil {
		r.logger.Debug("Database error when creating order", map[string]any{
			"user_id":   order.UserID,
			"reference": order.Reference,
			"error":     err.Error(),
		})
		return err
	}

	order.ID = orderModel.ID
	order.CreatedAt = orderModel.CreatedAt
	return nil
}
