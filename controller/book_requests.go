package controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"bookstore/database"
	"bookstore/models"
	"bookstore/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// The /api/book-requests sub-API predates /api/requests and keys its documents
// by bookName/requestedBy instead of title/requesterEmail. Both are served;
// see DESIGN.md.
const bookRequestsCollection = "bookrequests"

func CreateBookRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input struct {
		BookName    string `json:"bookName"`
		Author      string `json:"author"`
		ISBN        string `json:"isbn"`
		RequestedBy string `json:"requestedBy"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	input.BookName = strings.TrimSpace(input.BookName)
	input.Author = strings.TrimSpace(input.Author)
	input.ISBN = strings.TrimSpace(input.ISBN)
	input.RequestedBy = strings.TrimSpace(input.RequestedBy)

	if input.BookName == "" || input.Author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bookName and author are required"})
		return
	}
	if !models.EmailRX.MatchString(input.RequestedBy) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "requestedBy must be a valid email address"})
		return
	}

	request := models.BookRequest{
		ID:          bson.NewObjectID(),
		BookName:    input.BookName,
		Author:      input.Author,
		ISBN:        input.ISBN,
		RequestedBy: input.RequestedBy,
		Status:      models.StatusPending,
		Upvotes:     0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if _, err := database.Collection(bookRequestsCollection).InsertOne(ctx, request); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating book request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": request})
}

func ListBookRequests(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	page, limit := utils.ParsePagination(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "10"))
	skip := (page - 1) * limit

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
			return
		}
		filter["status"] = status
	}
	if email := strings.TrimSpace(c.Query("requestedBy")); email != "" {
		filter["requestedBy"] = email
	}

	collection := database.Collection(bookRequestsCollection)

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("Error counting documents:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	findOptions := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting book requests"})
		return
	}
	defer cursor.Close(ctx)

	requests := []models.BookRequest{}
	if err = cursor.All(ctx, &requests); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error parsing book requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       requests,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func GetBookRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book request not found"})
		return
	}

	var request models.BookRequest
	err = database.Collection(bookRequestsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book request not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting book request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": request})
}

func UpvoteBookRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book request not found"})
		return
	}

	var request models.BookRequest
	err = database.Collection(bookRequestsCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"upvotes": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book request not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error upvoting book request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"upvotes": request.Upvotes}})
}

// transitionBookRequest applies a status with the response stamps. notes is
// written to adminNotes when non-empty.
func transitionBookRequest(c *gin.Context, status, notes string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book request not found"})
		return
	}

	update := StatusUpdateDoc(status, notes, c.GetString("email"), time.Now())

	var request models.BookRequest
	err = database.Collection(bookRequestsCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book request not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating book request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": request})
}

func ApproveBookRequest(c *gin.Context) {
	transitionBookRequest(c, models.StatusApproved, "")
}

func RejectBookRequest(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	body.Reason = strings.TrimSpace(body.Reason)
	if body.Reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A rejection reason is required"})
		return
	}
	transitionBookRequest(c, models.StatusRejected, body.Reason)
}

func FulfillBookRequest(c *gin.Context) {
	transitionBookRequest(c, models.StatusFulfilled, "")
}

// ReopenBookRequest resets a responded request back to pending and clears the
// response stamps.
func ReopenBookRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book request not found"})
		return
	}

	var request models.BookRequest
	err = database.Collection(bookRequestsCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		StatusUpdateDoc(models.StatusPending, "", "", time.Now()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book request not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating book request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": request})
}

func DeleteBookRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book request not found"})
		return
	}

	result, err := database.Collection(bookRequestsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting book request"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Book request deleted"})
}
