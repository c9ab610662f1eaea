package auth

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"sanchaari/db"
	"sanchaari/middleware"
	"sanchaari/models"
	"sanchaari/rdx"
	"sanchaari/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Redis hash holding the latest token per user, so logout can invalidate it.
const tokenHash = "tokens"

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func validateRegistration(c credentials) string {
	if len(c.Username) < 3 || len(c.Username) > 50 {
		return "Username must be between 3 and 50 characters"
	}
	if len(c.Password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if msg := validateRegistration(input); msg != "" {
		utils.Error(w, http.StatusBadRequest, msg)
		return
	}

	// Check if user already exists
	err := db.UserCollection.FindOne(r.Context(), bson.M{"username": input.Username}).Err()
	if err == nil {
		utils.Error(w, http.StatusConflict, "Username already exists")
		return
	} else if err != mongo.ErrNoDocuments {
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for user %s: %v", input.Username, err)
		utils.Error(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		UserID:    uuid.NewString(),
		Username:  input.Username,
		Password:  string(hashedPassword),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := db.UserCollection.InsertOne(r.Context(), user); err != nil {
		// The unique index closes the race between the existence check and
		// the insert.
		if mongo.IsDuplicateKeyError(err) {
			utils.Error(w, http.StatusConflict, "Username already exists")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	if err := rdx.RdxSet(fmt.Sprintf("users:%s", user.UserID), user.Username); err != nil {
		log.Printf("Failed to cache username: %v", err)
	}

	utils.JSON(w, http.StatusCreated, utils.M{
		"id":         user.UserID,
		"username":   user.Username,
		"created_at": user.CreatedAt,
	})
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"username": input.Username}).Decode(&storedUser)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	tokenString, err := middleware.GenerateToken(storedUser.UserID, storedUser.Username)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := rdx.RdxHset(tokenHash, storedUser.UserID, tokenString); err != nil {
		log.Printf("Failed to cache token: %v", err)
	}

	_, err = db.UserCollection.UpdateOne(r.Context(),
		bson.M{"userid": storedUser.UserID},
		bson.M{"$set": bson.M{"last_login": time.Now().UTC()}},
	)
	if err != nil {
		log.Printf("Failed to update last login for %s: %v", storedUser.Username, err)
	}

	utils.JSON(w, http.StatusOK, utils.M{"token": tokenString})
}
