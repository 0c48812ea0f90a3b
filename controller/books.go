package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"bookstore/database"
	"bookstore/models"
	"bookstore/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var s3Client *s3.Client

func InitS3Client() {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Println(err)
		return
	}
	s3Client = s3.NewFromConfig(cfg)
}

// bookCollection resolves the collection for the request: the category route
// param when present, the default books collection otherwise. Unknown
// categories are a 404.
func bookCollection(c *gin.Context) (*mongo.Collection, bool) {
	category := c.Param("category")
	if category == "" {
		return database.Collection(models.DefaultCollection), true
	}
	name, ok := models.CategoryCollection(category)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Unknown category"})
		return nil, false
	}
	return database.Collection(name), true
}

// BuildBookFilter translates list query parameters into a bson filter.
// Unparseable numeric values are ignored rather than rejected.
func BuildBookFilter(q url.Values) bson.M {
	filter := bson.M{}
	if genre := strings.TrimSpace(q.Get("genre")); genre != "" {
		filter["genre"] = bson.M{"$regex": "^" + regexp.QuoteMeta(genre) + "$", "$options": "i"}
	}
	if author := strings.TrimSpace(q.Get("author")); author != "" {
		filter["author"] = bson.M{"$regex": regexp.QuoteMeta(author), "$options": "i"}
	}
	if language := strings.TrimSpace(q.Get("language")); language != "" {
		filter["language"] = language
	}
	if featured := q.Get("featured"); featured != "" {
		filter["featured"] = featured == "true"
	}
	price := bson.M{}
	if min, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		price["$gte"] = min
	}
	if max, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		price["$lte"] = max
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return filter
}

// SortOption maps the sort query value to a mongo sort document. The default
// is newest first.
func SortOption(key string) bson.D {
	switch key {
	case "price":
		return bson.D{{Key: "price", Value: 1}}
	case "rating":
		return bson.D{{Key: "rating", Value: -1}}
	case "views":
		return bson.D{{Key: "views", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

func ListBooks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, ok := bookCollection(c)
	if !ok {
		return
	}

	page, limit := utils.ParsePagination(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "10"))
	skip := (page - 1) * limit

	filter := BuildBookFilter(c.Request.URL.Query())

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("Error counting documents:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	findOptions := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(SortOption(c.Query("sort")))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting books"})
		return
	}
	defer cursor.Close(ctx)

	books := []models.Book{}
	if err = cursor.All(ctx, &books); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error parsing books"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       books,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func GetBook(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, ok := bookCollection(c)
	if !ok {
		return
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	// Fetching a book counts as a view. $inc keeps concurrent reads from
	// losing counts.
	var book models.Book
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&book)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting book"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": book})
}

// PrepareNewBook normalizes a book before its first insert: fresh id and
// timestamps, clamped rating, derived availability, and zeroed counters
// regardless of what the caller supplied.
func PrepareNewBook(book *models.Book) {
	book.ID = bson.NewObjectID()
	book.Rating = models.ClampRating(book.Rating)
	book.Available = book.Copies > 0
	book.Views = 0
	book.Downloads = 0
	book.CreatedAt = time.Now()
	book.UpdatedAt = time.Now()
}

func CreateBook(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, ok := bookCollection(c)
	if !ok {
		return
	}

	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	validate := validator.New()
	if err := validate.Struct(book); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed: " + err.Error()})
		return
	}

	count, err := collection.CountDocuments(ctx, bson.M{"isbn": book.ISBN})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to check existing ISBN"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "A book with this ISBN already exists"})
		return
	}

	PrepareNewBook(&book)

	if _, err := collection.InsertOne(ctx, book); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error adding book"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": book})
}

func UpdateBook(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, ok := bookCollection(c)
	if !ok {
		return
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	validate := validator.New()
	if err := validate.Struct(book); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed: " + err.Error()})
		return
	}

	book.Rating = models.ClampRating(book.Rating)
	book.Available = book.Copies > 0

	// Full replace over the mutable fields; counters and created_at survive.
	update := bson.M{"$set": bson.M{
		"name":         book.Name,
		"author":       book.Author,
		"isbn":         book.ISBN,
		"image_link":   book.ImageLink,
		"amazon_link":  book.AmazonLink,
		"description":  book.Description,
		"genre":        book.Genre,
		"pages":        book.Pages,
		"publishDate":  book.PublishDate,
		"publisher":    book.Publisher,
		"language":     book.Language,
		"price":        book.Price,
		"discount":     book.Discount,
		"tags":         book.Tags,
		"rating":       book.Rating,
		"reviewCount":  book.ReviewCount,
		"copies":       book.Copies,
		"availability": book.Available,
		"featured":     book.Featured,
		"updated_at":   time.Now(),
	}}

	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating book"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Book updated"})
}

func PatchBook(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, ok := bookCollection(c)
	if !ok {
		return
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	var patch models.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	validate := validator.New()
	if err := validate.Struct(patch); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed: " + err.Error()})
		return
	}

	set := patch.Fields()
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No updatable fields provided"})
		return
	}
	set["updated_at"] = time.Now()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating book"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Book updated"})
}

func DeleteBook(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, ok := bookCollection(c)
	if !ok {
		return
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	result, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting book"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Book deleted"})
}

func BulkDeleteBooks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, ok := bookCollection(c)
	if !ok {
		return
	}

	var body struct {
		IDs []string `json:"ids" validate:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	validate := validator.New()
	if err := validate.Struct(body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ids is required"})
		return
	}

	objectIDs := make([]bson.ObjectID, 0, len(body.IDs))
	for _, raw := range body.IDs {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid id: " + raw})
			return
		}
		objectIDs = append(objectIDs, id)
	}

	result, err := collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting books"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Deleted %d books", result.DeletedCount),
		"data":    gin.H{"deleted": result.DeletedCount},
	})
}

func BulkImportBooks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, ok := bookCollection(c)
	if !ok {
		return
	}

	var books []models.Book
	if err := c.ShouldBindJSON(&books); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if len(books) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No books provided"})
		return
	}

	validate := validator.New()
	toInsert := make([]interface{}, 0, len(books))
	skipped := 0
	seen := map[string]bool{}

	for i := range books {
		book := &books[i]
		if err := validate.Struct(book); err != nil {
			skipped++
			continue
		}
		// Duplicate ISBNs, in the payload or already stored, are skipped.
		if seen[book.ISBN] {
			skipped++
			continue
		}
		count, err := collection.CountDocuments(ctx, bson.M{"isbn": book.ISBN})
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to check existing ISBN"})
			return
		}
		if count > 0 {
			skipped++
			continue
		}
		seen[book.ISBN] = true
		PrepareNewBook(book)
		toInsert = append(toInsert, book)
	}

	inserted := 0
	if len(toInsert) > 0 {
		result, err := collection.InsertMany(ctx, toInsert)
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error importing books"})
			return
		}
		inserted = len(result.InsertedIDs)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Imported %d books, skipped %d", inserted, skipped),
		"data":    gin.H{"inserted": inserted, "skipped": skipped},
	})
}

func DownloadBook(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, ok := bookCollection(c)
	if !ok {
		return
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"downloads": 1}})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error recording download"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Download recorded"})
}

// UploadCover stores a cover image in S3 and writes its public URL into the
// book's image_link.
func UploadCover(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, ok := bookCollection(c)
	if !ok {
		return
	}

	if s3Client == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Image storage is not configured"})
		return
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No image file provided"})
		return
	}
	fileContent, err := file.Open()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error reading upload"})
		return
	}
	defer fileContent.Close()

	bucketName := os.Getenv("BUCKET_NAME")
	region := os.Getenv("AWS_REGION")
	s3Key := fmt.Sprintf("covers/%s/%s", id.Hex(), file.Filename)

	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Key:    aws.String(s3Key),
		Bucket: aws.String(bucketName),
		Body:   fileContent,
	})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading cover"})
		return
	}

	coverURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucketName, region, s3Key)

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"image_link": coverURL, "updated_at": time.Now()}},
	)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating book"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"image_link": coverURL}})
}

// fanOutFind runs the same filter over every book collection and merges the
// results, keeping total counts accurate for the pagination envelope. less
// orders the merged slice before the page is cut.
func fanOutFind(ctx context.Context, filter bson.M, sortDoc bson.D, page, limit int, less func(a, b models.Book) bool) ([]models.Book, int64, error) {
	var merged []models.Book
	var total int64

	for _, name := range models.AllBookCollections() {
		collection := database.Collection(name)

		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return nil, 0, err
		}
		total += count
		if count == 0 {
			continue
		}

		// Each collection only needs the first page*limit candidates.
		findOptions := options.Find().
			SetLimit(int64(page * limit)).
			SetSort(sortDoc)

		cursor, err := collection.Find(ctx, filter, findOptions)
		if err != nil {
			return nil, 0, err
		}
		var books []models.Book
		err = cursor.All(ctx, &books)
		cursor.Close(ctx)
		if err != nil {
			return nil, 0, err
		}
		merged = append(merged, books...)
	}

	sort.Slice(merged, func(i, j int) bool { return less(merged[i], merged[j]) })

	start := (page - 1) * limit
	if start >= len(merged) {
		return []models.Book{}, total, nil
	}
	end := start + limit
	if end > len(merged) {
		end = len(merged)
	}
	return merged[start:end], total, nil
}

func SearchBooks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing 'q' query parameter"})
		return
	}

	page, limit := utils.ParsePagination(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "10"))

	// Case-insensitive substring match across name, author and description.
	pattern := regexp.QuoteMeta(q)
	rx := bson.M{"$regex": pattern, "$options": "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": rx},
		{"author": rx},
		{"description": rx},
	}}

	books, total, err := fanOutFind(ctx, filter, bson.D{{Key: "created_at", Value: -1}}, page, limit,
		func(a, b models.Book) bool { return a.CreatedAt.After(b.CreatedAt) })
	if err != nil {
		log.Println("Mongo find error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error searching books"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       books,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func BooksByGenre(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	genre := strings.TrimSpace(c.Param("genre"))
	if genre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing genre"})
		return
	}

	page, limit := utils.ParsePagination(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "10"))

	filter := bson.M{"genre": bson.M{"$regex": "^" + regexp.QuoteMeta(genre) + "$", "$options": "i"}}

	books, total, err := fanOutFind(ctx, filter, bson.D{{Key: "created_at", Value: -1}}, page, limit,
		func(a, b models.Book) bool { return a.CreatedAt.After(b.CreatedAt) })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting books"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       books,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func TrendingBooks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, limit := utils.ParsePagination("1", c.DefaultQuery("limit", "10"))

	books, _, err := fanOutFind(ctx, bson.M{}, bson.D{{Key: "views", Value: -1}}, 1, limit,
		func(a, b models.Book) bool { return a.Views > b.Views })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting trending books"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": books})
}

func Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	byCategory := gin.H{}
	var totalBooks, totalViews, totalDownloads int64

	for _, name := range models.AllBookCollections() {
		collection := database.Collection(name)

		count, err := collection.CountDocuments(ctx, bson.M{})
		if err != nil {
			log.Println("Error counting documents:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		byCategory[models.CollectionSlug(name)] = count
		totalBooks += count

		cursor, err := collection.Aggregate(ctx, mongo.Pipeline{
			bson.D{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: nil},
				{Key: "views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
				{Key: "downloads", Value: bson.D{{Key: "$sum", Value: "$downloads"}}},
			}}},
		})
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		var sums []struct {
			Views     int64 `bson:"views"`
			Downloads int64 `bson:"downloads"`
		}
		err = cursor.All(ctx, &sums)
		cursor.Close(ctx)
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		if len(sums) > 0 {
			totalViews += sums[0].Views
			totalDownloads += sums[0].Downloads
		}
	}

	pendingRequests, err := database.Collection(requestsCollection).
		CountDocuments(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	pendingBookRequests, err := database.Collection(bookRequestsCollection).
		CountDocuments(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalBooks":          totalBooks,
			"totalViews":          totalViews,
			"totalDownloads":      totalDownloads,
			"byCategory":          byCategory,
			"pendingRequests":     pendingRequests,
			"pendingBookRequests": pendingBookRequests,
		},
	})
}
