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

const requestsCollection = "requests"

// RequestInput is the creation body for /api/requests.
type RequestInput struct {
	Title          string `json:"title"`
	Author         string `json:"author"`
	ISBN           string `json:"isbn"`
	Description    string `json:"description"`
	Genre          string `json:"genre"`
	PublishYear    int    `json:"publishYear"`
	RequesterEmail string `json:"requesterEmail"`
	RequesterName  string `json:"requesterName"`
}

// ValidateRequestInput trims the input in place and returns the field errors.
func ValidateRequestInput(in *RequestInput) map[string]string {
	errs := map[string]string{}
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.ISBN = strings.TrimSpace(in.ISBN)
	in.Description = strings.TrimSpace(in.Description)
	in.Genre = strings.TrimSpace(in.Genre)
	in.RequesterEmail = strings.TrimSpace(in.RequesterEmail)
	in.RequesterName = strings.TrimSpace(in.RequesterName)

	if in.Title == "" {
		errs["title"] = "must be provided"
	}
	if in.Author == "" {
		errs["author"] = "must be provided"
	}
	if !models.EmailRX.MatchString(in.RequesterEmail) {
		errs["requesterEmail"] = "must be a valid email address"
	}
	return errs
}

func CreateRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input RequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if errs := ValidateRequestInput(&input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": errs})
		return
	}

	request := models.Request{
		ID:             bson.NewObjectID(),
		Title:          input.Title,
		Author:         input.Author,
		ISBN:           input.ISBN,
		Description:    input.Description,
		Genre:          input.Genre,
		PublishYear:    input.PublishYear,
		RequesterEmail: input.RequesterEmail,
		RequesterName:  input.RequesterName,
		Status:         models.StatusPending,
		Upvotes:        0,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if _, err := database.Collection(requestsCollection).InsertOne(ctx, request); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": request})
}

func ListRequests(c *gin.Context) {
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
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		filter["requesterEmail"] = email
	}

	collection := database.Collection(requestsCollection)

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("Error counting documents:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	findOptions := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "upvotes", Value: -1}, {Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting requests"})
		return
	}
	defer cursor.Close(ctx)

	requests := []models.Request{}
	if err = cursor.All(ctx, &requests); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error parsing requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       requests,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func GetRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Request not found"})
		return
	}

	var request models.Request
	err = database.Collection(requestsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Request not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": request})
}

// UpvoteRequest is public and unauthenticated. Every call adds exactly one;
// repeat voters are not deduplicated.
func UpvoteRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Request not found"})
		return
	}

	var request models.Request
	err = database.Collection(requestsCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"upvotes": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Request not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error upvoting request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"upvotes": request.Upvotes}})
}

// StatusUpdateDoc builds the transition update. Resetting to pending clears
// the response stamps and notes; approve/fulfill clear any stale rejection
// notes unless the transition carries new ones.
func StatusUpdateDoc(status, notes, adminEmail string, now time.Time) bson.M {
	if status == models.StatusPending {
		return bson.M{
			"$set": bson.M{
				"status":     models.StatusPending,
				"updated_at": now,
			},
			"$unset": bson.M{
				"respondedBy": "",
				"respondedAt": "",
				"adminNotes":  "",
			},
		}
	}

	set := bson.M{
		"status":      status,
		"respondedBy": adminEmail,
		"respondedAt": now,
		"updated_at":  now,
	}
	if notes != "" {
		set["adminNotes"] = notes
		return bson.M{"$set": set}
	}
	return bson.M{
		"$set":   set,
		"$unset": bson.M{"adminNotes": ""},
	}
}

// UpdateRequestStatus is the admin transition endpoint. Any status in the set
// is accepted, pending included, so a responded request can be reset. A
// rejection must carry a reason, stored as adminNotes. Repeat transitions
// simply overwrite the state and stamps.
func UpdateRequestStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Request not found"})
		return
	}

	var body struct {
		Status     string `json:"status"`
		AdminNotes string `json:"adminNotes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	body.AdminNotes = strings.TrimSpace(body.AdminNotes)
	if !models.ValidStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}
	if body.Status == models.StatusRejected && body.AdminNotes == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A rejection reason is required"})
		return
	}

	update := StatusUpdateDoc(body.Status, body.AdminNotes, c.GetString("email"), time.Now())

	var request models.Request
	err = database.Collection(requestsCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Request not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": request})
}

func DeleteRequest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Request not found"})
		return
	}

	result, err := database.Collection(requestsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting request"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Request deleted"})
}
