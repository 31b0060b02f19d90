package users

import (
	"net/http"
	"strconv"
	"time"

	"museum-api/database"
	"museum-api/internal/app/http/middleware"
	"museum-api/internal/domain/catalog"
	domain "museum-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/users/:id
func GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var user domain.User
	if err := database.DB.Preload("Profile").First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	out := UserDetailsDTO{
		ID:          user.ID,
		Name:        user.Name,
		AccessLevel: user.AccessLevel,
		Profile:     user.Profile,
	}
	database.DB.Model(&catalog.Artist{}).Where("user_id = ?", user.ID).Count(&out.ArtistCount)
	database.DB.Model(&catalog.Painting{}).Where("user_id = ?", user.ID).Count(&out.PaintingCount)
	database.DB.Model(&catalog.Museum{}).Where("user_id = ?", user.ID).Count(&out.MuseumCount)
	database.DB.Model(&catalog.Exhibition{}).Where("user_id = ?", user.ID).Count(&out.ExhibitionCount)

	c.JSON(http.StatusOK, out)
}

// PUT /api/users/:id/profile
func UpdateProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user domain.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	owner := user.ID
	if !middleware.CanMutate(c, &owner) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You may only edit your own profile"})
		return
	}

	if req.PagePreference <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Page preference must be positive"})
		return
	}

	profile := domain.UserProfile{
		UserID:         user.ID,
		Bio:            req.Bio,
		Location:       req.Location,
		Gender:         domain.Gender(req.Gender),
		MaritalStatus:  domain.MaritalStatus(req.MaritalStatus),
		PagePreference: req.PagePreference,
	}
	if req.Birthday != nil {
		birthday, err := time.Parse(time.RFC3339, *req.Birthday)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Birthday must be RFC 3339"})
			return
		}
		profile.Birthday = &birthday
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// PUT /api/users/:id/access
// Admin-only access-level change, the server-side end of the admin
// panel's confirm/promote controls.
func UpdateAccess(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req AccessUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := database.DB.Model(&domain.User{}).
		Where("id = ?", id).
		Update("access_level", req.AccessLevel)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update access level"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Access level updated"})
}

// deleteUser removes a user and applies the two referential policies in
// one transaction: codes and profile go with the user, owned catalog
// records survive with a nulled owner.
func deleteUser(c *gin.Context, id int) {
	var user domain.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&domain.ConfirmationCode{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&domain.UserProfile{}).Error; err != nil {
			return err
		}
		for _, model := range []interface{}{
			&catalog.Artist{}, &catalog.Painting{}, &catalog.Museum{}, &catalog.Exhibition{},
		} {
			if err := tx.Model(model).Where("user_id = ?", user.ID).Update("user_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.Status(http.StatusNoContent)
}
