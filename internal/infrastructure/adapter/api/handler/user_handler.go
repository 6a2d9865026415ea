package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateUser handles the POST /users endpoint
func (h *UserHandler) CreateUser(c *gin.Context) {
	var request dto.CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Debug("Invalid create user request", map[string]any{
			"error": err.Error(),
		})
		_ = c.Error(domainerr.ErrInvalidRequest)
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), request.Email, request.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	})
}
