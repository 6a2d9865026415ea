package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
	logger       coreport.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(orderUseCase usecase.OrderUseCase, logger coreport.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

// PlaceOrder handles the POST /orders endpoint
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var request dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Debug("Invalid place order request", map[string]any{
			"error": err.Error(),
		})
		_ = c.Error(domainerr.ErrInvalidRequest)
		return
	}

	order, err := h.orderUseCase.PlaceOrder(c.Request.Context(), request.UserID, request.Reference, request.Quantity)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Reference: order.Reference,
		Quantity:  order.Quantity,
		CreatedAt: order.CreatedAt,
	})
}
