package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/dbexceptions/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(userUseCase *usecasemocks.MockUserUseCase, orderUseCase *usecasemocks.MockOrderUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()

	router := gin.New()
	router.Use(middleware.ErrorHandler(log))
	router.POST("/users", NewUserHandler(userUseCase, log).CreateUser)
	router.POST("/orders", NewOrderHandler(orderUseCase, log).PlaceOrder)
	return router
}

func perform(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestCreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userUseCase := usecasemocks.NewMockUserUseCase(t)
		router := setupRouter(userUseCase, usecasemocks.NewMockOrderUseCase(t))

		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		userUseCase.EXPECT().CreateUser(mock.Anything, "a@example.com", "Alice").
			Return(&entity.User{ID: 7, Email: "a@example.com", Name: "Alice", CreatedAt: created}, nil).Once()

		w := perform(t, router, "/users", `{"email":"a@example.com","name":"Alice"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, uint64(7), response.ID)
		assert.Equal(t, "a@example.com", response.Email)
		assert.True(t, created.Equal(response.CreatedAt))
	})

	t.Run("Duplicate email", func(t *testing.T) {
		userUseCase := usecasemocks.NewMockUserUseCase(t)
		router := setupRouter(userUseCase, usecasemocks.NewMockOrderUseCase(t))

		failure := &domainerr.UniqueConstraintError{
			Failure: domainerr.Failure{Err: errors.New("duplicate key")},
			Constraint: domainerr.Constraint{
				ConstraintName:           "ux_users_email",
				SchemaQualifiedTableName: "public.users",
				ConstraintProperties:     []string{"Email"},
			},
		}
		userUseCase.EXPECT().CreateUser(mock.Anything, "a@example.com", "").Return(nil, failure).Once()

		w := perform(t, router, "/users", `{"email":"a@example.com"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		response := decodeError(t, w)
		assert.Equal(t, domainerr.CodeUniqueConstraint, response.Code)
		assert.Equal(t, "unique_constraint", response.Category)
		assert.Equal(t, "ux_users_email", response.Constraint)
		assert.Equal(t, "public.users", response.Table)
		assert.Equal(t, []string{"Email"}, response.Columns)
	})

	t.Run("Missing email", func(t *testing.T) {
		router := setupRouter(usecasemocks.NewMockUserUseCase(t), usecasemocks.NewMockOrderUseCase(t))

		w := perform(t, router, "/users", `{"name":"Alice"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decodeError(t, w).Code)
	})

	t.Run("Unexpected failure", func(t *testing.T) {
		userUseCase := usecasemocks.NewMockUserUseCase(t)
		router := setupRouter(userUseCase, usecasemocks.NewMockOrderUseCase(t))
		userUseCase.EXPECT().CreateUser(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).Once()

		w := perform(t, router, "/users", `{"email":"a@example.com"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		response := decodeError(t, w)
		assert.Equal(t, domainerr.CodeInternalServer, response.Code)
		assert.Empty(t, response.Category)
	})
}

func TestPlaceOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		orderUseCase := usecasemocks.NewMockOrderUseCase(t)
		router := setupRouter(usecasemocks.NewMockUserUseCase(t), orderUseCase)

		orderUseCase.EXPECT().PlaceOrder(mock.Anything, uint64(1), "ORD-1", int32(2)).
			Return(&entity.Order{ID: 3, UserID: 1, Reference: "ORD-1", Quantity: 2}, nil).Once()

		w := perform(t, router, "/orders", `{"userId":1,"reference":"ORD-1","quantity":2}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response dto.OrderResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, uint64(3), response.ID)
		assert.Equal(t, "ORD-1", response.Reference)
	})

	t.Run("Unknown user", func(t *testing.T) {
		orderUseCase := usecasemocks.NewMockOrderUseCase(t)
		router := setupRouter(usecasemocks.NewMockUserUseCase(t), orderUseCase)

		failure := &domainerr.ReferenceConstraintError{Failure: domainerr.Failure{Err: errors.New("fk")}}
		orderUseCase.EXPECT().PlaceOrder(mock.Anything, uint64(9), "ORD-1", int32(1)).Return(nil, failure).Once()

		w := perform(t, router, "/orders", `{"userId":9,"reference":"ORD-1","quantity":1}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		response := decodeError(t, w)
		assert.Equal(t, "reference_constraint", response.Category)
		assert.Empty(t, response.Constraint)
	})

	t.Run("Quantity overflow", func(t *testing.T) {
		orderUseCase := usecasemocks.NewMockOrderUseCase(t)
		router := setupRouter(usecasemocks.NewMockUserUseCase(t), orderUseCase)

		failure := &domainerr.NumericOverflowError{Failure: domainerr.Failure{Err: errors.New("smallint out of range")}}
		orderUseCase.EXPECT().PlaceOrder(mock.Anything, uint64(1), "ORD-2", int32(70000)).Return(nil, failure).Once()

		w := perform(t, router, "/orders", `{"userId":1,"reference":"ORD-2","quantity":70000}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, domainerr.CodeNumericOverflow, decodeError(t, w).Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router := setupRouter(usecasemocks.NewMockUserUseCase(t), usecasemocks.NewMockOrderUseCase(t))

		w := perform(t, router, "/orders", `{"userId":"one"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
