package route

import (
	"time"

	"bookstore/controller"
	mw "bookstore/middlewares"

	"github.com/gin-gonic/gin"
)

// Public wires the unauthenticated surface. The write-ish public endpoints
// (upvotes, chat) sit behind a per-IP rate limit.
func Public(router *gin.Engine) {
	api := router.Group("/api")

	api.POST("/auth/register", controller.RegisterUser)
	api.POST("/auth/login", controller.Login)
	api.POST("/auth/logout", controller.Logout)

	api.GET("/books", controller.ListBooks)
	api.GET("/books/:id", controller.GetBook)
	api.GET("/search/books", controller.SearchBooks)
	api.GET("/genre/:genre", controller.BooksByGenre)
	api.GET("/trending", controller.TrendingBooks)
	api.GET("/stats", controller.Stats)

	// Same surface per category collection; unknown categories are 404ed by
	// the controller.
	byCategory := api.Group("/categories/:category")
	byCategory.GET("/books", controller.ListBooks)
	byCategory.GET("/books/:id", controller.GetBook)

	api.GET("/requests", controller.ListRequests)
	api.GET("/requests/:id", controller.GetRequest)
	api.POST("/requests", controller.CreateRequest)

	api.GET("/book-requests", controller.ListBookRequests)
	api.GET("/book-requests/:id", controller.GetBookRequest)
	api.POST("/book-requests", controller.CreateBookRequest)

	limited := api.Group("/")
	limited.Use(mw.NewRateLimiter(60, time.Minute).Middleware())
	limited.POST("/books/:id/download", controller.DownloadBook)
	limited.POST("/requests/:id/upvote", controller.UpvoteRequest)
	limited.POST("/book-requests/:id/upvote", controller.UpvoteBookRequest)
	limited.POST("/ai/chat", controller.Chat)
}
