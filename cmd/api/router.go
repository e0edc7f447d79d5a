package main

import (
	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.POST("/books", c.BookHandler.StoreBooks)
	router.GET("/books", c.BookHandler.ListBooks)
	router.GET("/health", c.HealthHandler.Health)

	return router
}
