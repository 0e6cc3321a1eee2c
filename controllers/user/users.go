package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dammyprolific/shopWithDammy/auth"
	"github.com/dammyprolific/shopWithDammy/models"
	"github.com/dammyprolific/shopWithDammy/serializers"
	"github.com/dammyprolific/shopWithDammy/store"
)

// purchaseHistoryLimit caps the order-history items embedded in user_info.
const purchaseHistoryLimit = 10

type createUserInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	City      string `json:"city"`
	State     string `json:"state"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// CreateUser registers an account. The password is bcrypt-hashed before it
// is stored and never appears in any response.
func CreateUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := models.User{
			Username:  input.Username,
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			City:      input.City,
			State:     input.State,
			Address:   input.Address,
			Phone:     input.Phone,
		}
		if err := user.SetPassword(input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		if err := users.Create(&user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "username or email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User created successfully",
			"user":    serializers.NewRegisteredUser(&user),
		})
	}
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and issues an access token.
func Login(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required."})
			return
		}

		user, err := users.GetByUsername(input.Username)
		if errors.Is(err, store.ErrNotFound) || (err == nil && !user.CheckPassword(input.Password)) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access": token})
	}
}

// GetUsername returns just the authenticated caller's username.
func GetUsername(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		user, err := users.GetByID(userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	}
}

// UserInfo returns the caller's profile plus their recent purchases.
func UserInfo(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		user, err := users.GetByID(userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		purchased, err := users.PurchasedItems(userID, purchaseHistoryLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchase history"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewUser(user, purchased))
	}
}
