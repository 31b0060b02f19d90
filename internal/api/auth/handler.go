package auth

import (
	"net/http"
	"time"

	"museum-api/config"
	"museum-api/database"
	"museum-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// Register creates an Unconfirmed user with an empty profile and hands
// back a confirmation code. The code value comes from a UUID plus a
// unique index; there is no regenerate-until-unique loop.
func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isPasswordStrong(input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters long and contain both letters and numbers"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := users.User{
		Name:        input.Name,
		Password:    string(hashedPassword),
		AccessLevel: users.AccessUnconfirmed,
		Profile:     &users.UserProfile{PagePreference: 5},
	}

	code := users.ConfirmationCode{
		Code:      uuid.NewString(),
		ExpiresAt: time.Now().Add(config.CODE_TTL),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		code.UserID = user.ID
		return tx.Create(&code).Error
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Name may already be taken"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":               user.ID,
		"name":             user.Name,
		"confirmationCode": code.Code,
		"expiresAt":        code.ExpiresAt,
	})
}

func Login(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	err := database.DB.Where("name = ?", input.Name).First(&user).Error
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"access":  user.AccessLevel,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       tokenString,
		"id":          user.ID,
		"name":        user.Name,
		"accessLevel": user.AccessLevel,
	})
}

// Confirm redeems a registration code. Unknown or expired codes both
// come back as 404; an expired code is deleted on the spot rather than
// waiting for the sweeper.
func Confirm(c *gin.Context) {
	value := c.Param("code")

	var code users.ConfirmationCode
	if err := database.DB.Where("code = ?", value).First(&code).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown confirmation code"})
		return
	}

	if code.Expired(time.Now()) {
		database.DB.Delete(&code)
		c.JSON(http.StatusNotFound, gin.H{"error": "Confirmation code has expired"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&users.User{}).
			Where("id = ? AND access_level = ?", code.UserID, users.AccessUnconfirmed).
			Update("access_level", users.AccessRegular).Error; err != nil {
			return err
		}
		return tx.Delete(&code).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account confirmed"})
}
