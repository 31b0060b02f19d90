package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"museum-api/config"
	"museum-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		userID, level := Principal(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "access": level})
	})
	r.GET("/admin", AuthMiddleware(), RequireAccess(users.AccessAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func signedToken(t *testing.T, userID uint, level users.AccessLevel, exp time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"name":    "tester",
		"access":  level,
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return signed
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := testRouter()

	t.Run("missing header", func(t *testing.T) {
		w := get(r, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing bearer prefix", func(t *testing.T) {
		token := signedToken(t, 1, users.AccessRegular, time.Now().Add(time.Hour))
		w := get(r, "/protected", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := get(r, "/protected", "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is rejected with no grace period", func(t *testing.T) {
		token := signedToken(t, 1, users.AccessRegular, time.Now().Add(-time.Second))
		w := get(r, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token exposes the principal", func(t *testing.T) {
		token := signedToken(t, 7, users.AccessRegular, time.Now().Add(time.Hour))
		w := get(r, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": 1, "exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := other.SignedString([]byte("different-secret"))
		require.NoError(t, err)
		w := get(r, "/protected", "Bearer "+signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAccess(t *testing.T) {
	r := testRouter()

	t.Run("regular user is refused on admin routes", func(t *testing.T) {
		token := signedToken(t, 1, users.AccessRegular, time.Now().Add(time.Hour))
		w := get(r, "/admin", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token := signedToken(t, 1, users.AccessAdmin, time.Now().Add(time.Hour))
		w := get(r, "/admin", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
