package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"museum-api/config"
	"museum-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and stashes the principal
// (user_id, name, access) on the context. jwt/v5 applies no leeway, so
// an expired token is rejected the moment it expires.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtKey := []byte(config.JWT_SECRET)
		if len(jwtKey) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtKey, nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		if name, ok := claims["name"].(string); ok {
			c.Set("name", name)
		}
		if userIDFloat, ok := claims["user_id"].(float64); ok {
			c.Set("user_id", uint(userIDFloat))
		}
		if accessFloat, ok := claims["access"].(float64); ok {
			c.Set("access", users.AccessLevel(accessFloat))
		}
		c.Next()
	}
}

// RequireAccess gates a route group on a minimum access level.
func RequireAccess(min users.AccessLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("access")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access level not found in token"})
			c.Abort()
			return
		}

		level, ok := value.(users.AccessLevel)
		if !ok || !level.AtLeast(min) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Principal returns the acting user's id and access level from the
// token claims set by AuthMiddleware.
func Principal(c *gin.Context) (uint, users.AccessLevel) {
	userID := c.GetUint("user_id")
	level := users.AccessUnconfirmed
	if value, exists := c.Get("access"); exists {
		if l, ok := value.(users.AccessLevel); ok {
			level = l
		}
	}
	return userID, level
}

// CanMutate reports whether the acting principal may modify a record
// with the given owning-user reference: the owner may, and so may any
// admin.
func CanMutate(c *gin.Context, ownerID *uint) bool {
	userID, level := Principal(c)
	if level.AtLeast(users.AccessAdmin) {
		return true
	}
	return ownerID != nil && *ownerID == userID
}
