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
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const usersCollection = "users"

func RegisterUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	validate := validator.New()
	if err := validate.Struct(user); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed: " + err.Error()})
		return
	}

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	collection := database.Collection(usersCollection)
	count, err := collection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to check existing user"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "A user with this email already exists"})
		return
	}

	hashed, err := utils.HashPass(user.Password)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error hashing password"})
		return
	}

	user.ID = bson.NewObjectID()
	user.Password = hashed
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if _, err := collection.InsertOne(ctx, user); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error adding user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"email": user.Email, "name": user.Name},
	})
}

func Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var userLogin models.UserLogin
	if err := c.ShouldBindJSON(&userLogin); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	validate := validator.New()
	if err := validate.Struct(userLogin); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	userLogin.Email = strings.ToLower(strings.TrimSpace(userLogin.Email))

	var user models.User
	err := database.Collection(usersCollection).FindOne(ctx, bson.M{"email": userLogin.Email}).Decode(&user)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	if err := utils.ComparePass(userLogin.Password, user.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := utils.SignedToken(user.Email, user.Name)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating token"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "Bearer",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"token": token, "email": user.Email, "name": user.Name},
	})
}

func Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "Bearer",
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-1 * time.Second),
		MaxAge:   -1,
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
