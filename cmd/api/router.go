package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/container"
)

// SetupRouter wires global middleware and the full route table.
// Paths are kept byte-for-byte compatible with the legacy API, including the
// camelCase segments.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.RateLimit(rate.Limit(50), 100),
	)

	router.GET("/health", healthCheckHandler(c))

	authorRoutes := router.Group("/author")
	{
		authorRoutes.GET("", c.AuthorHandler.ListAll)
		authorRoutes.POST("", c.AuthorHandler.Create)
		authorRoutes.GET("/:authorId", c.AuthorHandler.GetByID)
		authorRoutes.PUT("/:authorId", c.AuthorHandler.UpdateByID)
		authorRoutes.DELETE("/:authorId", c.AuthorHandler.DeleteByID)
		authorRoutes.GET("/name/:name", c.AuthorHandler.ListByName)
	}

	bookRoutes := router.Group("/book")
	{
		bookRoutes.GET("", c.BookHandler.ListAll)
		bookRoutes.POST("", c.BookHandler.Create)
		bookRoutes.GET("/:bookId", c.BookHandler.GetByID)
		bookRoutes.PUT("/:bookId", c.BookHandler.UpdateByID)
		bookRoutes.DELETE("/:bookId", c.BookHandler.DeleteByID)
		bookRoutes.GET("/getAfterDate/:date", c.BookHandler.ListPublishedAfter)
		bookRoutes.GET("/title/:title", c.BookHandler.ListByTitle)
		bookRoutes.GET("/createdBy/:authorId", c.BookHandler.ListByAuthor)
		bookRoutes.PUT("/:bookId/assignAuthorToBook/:authorId", c.BookHandler.AssignAuthor)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		response.OK(ctx, gin.H{"status": "healthy", "version": c.Config.App.Version})
	}
}
