package route

import (
	"bookstore/controller"
	mw "bookstore/middlewares"

	"github.com/gin-gonic/gin"
)

// Admin wires every mutating endpoint behind the auth + admin-email gate.
// The gate runs before any handler, so a denied request never touches the
// database.
func Admin(router *gin.Engine) {
	admin := router.Group("/api")
	admin.Use(mw.RequireAuth(), mw.RequireAdmin())

	admin.POST("/books", controller.CreateBook)
	admin.PUT("/books/:id", controller.UpdateBook)
	admin.PATCH("/books/:id", controller.PatchBook)
	admin.DELETE("/books/:id", controller.DeleteBook)
	admin.DELETE("/books", controller.BulkDeleteBooks)
	admin.POST("/books/:id/cover", controller.UploadCover)
	admin.POST("/bulk-import", controller.BulkImportBooks)

	byCategory := admin.Group("/categories/:category")
	byCategory.POST("/books", controller.CreateBook)
	byCategory.PUT("/books/:id", controller.UpdateBook)
	byCategory.PATCH("/books/:id", controller.PatchBook)
	byCategory.DELETE("/books/:id", controller.DeleteBook)
	byCategory.DELETE("/books", controller.BulkDeleteBooks)
	byCategory.POST("/books/:id/cover", controller.UploadCover)
	byCategory.POST("/bulk-import", controller.BulkImportBooks)

	admin.PATCH("/requests/:id/status", controller.UpdateRequestStatus)
	admin.DELETE("/requests/:id", controller.DeleteRequest)

	admin.POST("/book-requests/:id/approve", controller.ApproveBookRequest)
	admin.POST("/book-requests/:id/reject", controller.RejectBookRequest)
	admin.POST("/book-requests/:id/fulfill", controller.FulfillBookRequest)
	admin.POST("/book-requests/:id/reopen", controller.ReopenBookRequest)
	admin.DELETE("/book-requests/:id", controller.DeleteBookRequest)
}
