package routes

import (
	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	orderHandler *handler.OrderHandler,
) {
	// POST /users
	router.POST("/users", userHandler.CreateUser)

	// POST /orders
	router.POST("/orders", orderHandler.PlaceOrder)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Logger wraps ErrorHandler so logged status codes include rendered errors
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
}
