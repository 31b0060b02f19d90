package users_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"museum-api/config"
	"museum-api/database"
	routes "museum-api/internal/app/http"
	"museum-api/internal/domain/catalog"
	domain "museum-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
	config.JWT_SECRET = "test-secret"
	config.CODE_TTL = time.Hour

	r := gin.New()
	routes.RegisterRoutes(r)
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, name string, level domain.AccessLevel) domain.User {
	user := domain.User{Name: name, Password: "irrelevant", AccessLevel: level}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func authToken(t *testing.T, user domain.User) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"access":  user.AccessLevel,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return signed
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		buf, _ := json.Marshal(body)
		reader = bytes.NewBuffer(buf)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndConfirm(t *testing.T) {
	r, db := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"name":     "new_member",
		"password": "letters123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["confirmationCode"].(string)
	require.NotEmpty(t, code)

	var user domain.User
	require.NoError(t, db.Preload("Profile").Where("name = ?", "new_member").First(&user).Error)
	assert.Equal(t, domain.AccessUnconfirmed, user.AccessLevel)
	require.NotNil(t, user.Profile)
	assert.EqualValues(t, 5, user.Profile.PagePreference)

	t.Run("duplicate name is rejected", func(t *testing.T) {
		dup := doJSON(r, http.MethodPost, "/api/users/register", "", map[string]interface{}{
			"name":     "new_member",
			"password": "letters123",
		})
		assert.Equal(t, http.StatusConflict, dup.Code)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		weak := doJSON(r, http.MethodPost, "/api/users/register", "", map[string]interface{}{
			"name":     "someone_else",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, weak.Code)
	})

	t.Run("confirming lifts the user to Regular and burns the code", func(t *testing.T) {
		confirm := doJSON(r, http.MethodGet, "/api/users/confirm/"+code, "", nil)
		require.Equal(t, http.StatusOK, confirm.Code)

		var confirmed domain.User
		require.NoError(t, db.First(&confirmed, user.ID).Error)
		assert.Equal(t, domain.AccessRegular, confirmed.AccessLevel)

		var codes int64
		db.Model(&domain.ConfirmationCode{}).Where("user_id = ?", user.ID).Count(&codes)
		assert.Zero(t, codes)
	})

	t.Run("unknown code returns 404", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/users/confirm/nope", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestConfirmExpiredCode(t *testing.T) {
	r, db := setupRouter(t)
	user := createUser(t, db, "latecomer", domain.AccessUnconfirmed)

	code := domain.ConfirmationCode{
		UserID:    user.ID,
		Code:      "stale-code",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&code).Error)

	w := doJSON(r, http.MethodGet, "/api/users/confirm/stale-code", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var still domain.User
	require.NoError(t, db.First(&still, user.ID).Error)
	assert.Equal(t, domain.AccessUnconfirmed, still.AccessLevel)

	// The expired code is removed on sight.
	var count int64
	db.Model(&domain.ConfirmationCode{}).Where("code = ?", "stale-code").Count(&count)
	assert.Zero(t, count)
}

func TestLogin(t *testing.T) {
	r, _ := setupRouter(t)

	register := doJSON(r, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"name":     "visitor",
		"password": "letters123",
	})
	require.Equal(t, http.StatusCreated, register.Code)

	t.Run("valid credentials yield a usable token", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login", "", map[string]interface{}{
			"name":     "visitor",
			"password": "letters123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		token, _ := resp["token"].(string)
		require.NotEmpty(t, token)

		list := doJSON(r, http.MethodGet, "/api/artists", token, nil)
		assert.Equal(t, http.StatusOK, list.Code)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login", "", map[string]interface{}{
			"name":     "visitor",
			"password": "wrong-pass1",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetUserDetails(t *testing.T) {
	r, db := setupRouter(t)
	user := createUser(t, db, "collector", domain.AccessRegular)
	require.NoError(t, db.Create(&domain.UserProfile{UserID: user.ID, Location: "Vienna", PagePreference: 5}).Error)

	artist := catalog.Artist{FirstName: "Gustav", LastName: "Klimt", UserID: &user.ID}
	require.NoError(t, db.Create(&artist).Error)
	require.NoError(t, db.Create(&catalog.Painting{Title: "The Kiss", CreationYear: 1908, Height: 1.8, ArtistID: &artist.ID, UserID: &user.ID}).Error)

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), authToken(t, user), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.EqualValues(t, 1, out["artistCount"])
	assert.EqualValues(t, 1, out["paintingCount"])
	assert.EqualValues(t, 0, out["museumCount"])
	assert.Equal(t, "Vienna", out["userProfile"].(map[string]interface{})["location"])
}

func TestUpdateProfileOwnership(t *testing.T) {
	r, db := setupRouter(t)
	owner := createUser(t, db, "owner", domain.AccessRegular)
	other := createUser(t, db, "other", domain.AccessRegular)

	body := map[string]interface{}{
		"bio":            "painter",
		"location":       "Madrid",
		"pagePreference": 10,
	}

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/users/%d/profile", owner.ID), authToken(t, other), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	ok := doJSON(r, http.MethodPut, fmt.Sprintf("/api/users/%d/profile", owner.ID), authToken(t, owner), body)
	require.Equal(t, http.StatusOK, ok.Code)

	var profile domain.UserProfile
	require.NoError(t, db.First(&profile, owner.ID).Error)
	assert.Equal(t, "Madrid", profile.Location)
	assert.EqualValues(t, 10, profile.PagePreference)
}

func TestDeleteUserReferentialPolicy(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "the_admin", domain.AccessAdmin)
	user := createUser(t, db, "doomed", domain.AccessRegular)

	require.NoError(t, db.Create(&domain.UserProfile{UserID: user.ID, PagePreference: 5}).Error)
	require.NoError(t, db.Create(&domain.ConfirmationCode{UserID: user.ID, Code: "doomed-code", ExpiresAt: time.Now().Add(time.Hour)}).Error)

	artist := catalog.Artist{FirstName: "Marc", LastName: "Chagall", UserID: &user.ID}
	require.NoError(t, db.Create(&artist).Error)
	museum := catalog.Museum{Name: "Hermitage", Address: "St Petersburg", UserID: &user.ID}
	require.NoError(t, db.Create(&museum).Error)
	painting := catalog.Painting{Title: "Over the Town", CreationYear: 1918, Height: 0.45, ArtistID: &artist.ID, UserID: &user.ID}
	require.NoError(t, db.Create(&painting).Error)
	exhibition := catalog.Exhibition{ArtistID: artist.ID, MuseumID: museum.ID, StartDate: time.Now(), EndDate: time.Now(), UserID: &user.ID}
	require.NoError(t, db.Create(&exhibition).Error)

	t.Run("non-admin cannot delete users", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), authToken(t, user), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), authToken(t, admin), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Profile and codes cascade away.
	var profiles, codes int64
	db.Model(&domain.UserProfile{}).Where("user_id = ?", user.ID).Count(&profiles)
	db.Model(&domain.ConfirmationCode{}).Where("user_id = ?", user.ID).Count(&codes)
	assert.Zero(t, profiles)
	assert.Zero(t, codes)

	// Owned records survive with a nulled owner.
	var keptArtist catalog.Artist
	require.NoError(t, db.First(&keptArtist, artist.ID).Error)
	assert.Nil(t, keptArtist.UserID)

	var keptPainting catalog.Painting
	require.NoError(t, db.First(&keptPainting, painting.ID).Error)
	assert.Nil(t, keptPainting.UserID)

	var keptMuseum catalog.Museum
	require.NoError(t, db.First(&keptMuseum, museum.ID).Error)
	assert.Nil(t, keptMuseum.UserID)

	var keptExhibition catalog.Exhibition
	require.NoError(t, db.Where("artist_id = ?", artist.ID).First(&keptExhibition).Error)
	assert.Nil(t, keptExhibition.UserID)
}

func TestBulkSeedAndDelete(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "the_admin", domain.AccessAdmin)
	regular := createUser(t, db, "pleb", domain.AccessRegular)

	t.Run("non-admin is refused", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/artists/3", authToken(t, regular), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("seeding artists inserts the requested count", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/artists/5", authToken(t, admin), nil)
		require.Equal(t, http.StatusCreated, w.Code)

		var count int64
		db.Model(&catalog.Artist{}).Count(&count)
		assert.EqualValues(t, 5, count)
	})

	t.Run("seeded paintings reference seeded artists", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/paintings/4", authToken(t, admin), nil)
		require.Equal(t, http.StatusCreated, w.Code)

		var orphans int64
		db.Model(&catalog.Painting{}).Where("artist_id IS NULL").Count(&orphans)
		assert.Zero(t, orphans)
	})

	t.Run("unknown resource returns 400", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/frescoes/2", authToken(t, admin), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bulk delete wipes the table and reports the count", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/users/paintings", authToken(t, admin), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Deleted 4 paintings")

		var count int64
		db.Model(&catalog.Painting{}).Count(&count)
		assert.Zero(t, count)
	})
}
