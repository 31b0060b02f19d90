package users

import (
	"fmt"
	"net/http"
	"strconv"

	"museum-api/database"
	"museum-api/internal/domain/catalog"
	"museum-api/internal/seed"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxBulkCount = 10000

// POST /api/users/:id/:count
// The first segment names a table to seed ("artists", "paintings",
// "museums", "exhibitions", "users"); it rides the :id wildcard shared
// with the single-user routes.
func BulkSeed(c *gin.Context) {
	resource := c.Param("id")
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil || count <= 0 || count > maxBulkCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Count must be between 1 and %d", maxBulkCount)})
		return
	}

	var seedErr error
	switch resource {
	case "users":
		seedErr = seed.Users(database.DB, count)
	case "artists":
		seedErr = seed.Artists(database.DB, count)
	case "paintings":
		seedErr = seed.Paintings(database.DB, count)
	case "museums":
		seedErr = seed.Museums(database.DB, count)
	case "exhibitions":
		seedErr = seed.Exhibitions(database.DB, count)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown resource %q", resource)})
		return
	}

	if seedErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Seeding %s failed: %v", resource, seedErr)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Seeded %d %s", count, resource)})
}

// DELETE /api/users/:id
// A numeric id deletes that user; a resource name wipes the table. Both
// share one route because the wildcard owns the whole segment.
func DeleteUserOrTable(c *gin.Context) {
	param := c.Param("id")
	if id, err := strconv.Atoi(param); err == nil {
		deleteUser(c, id)
		return
	}

	var model interface{}
	switch param {
	case "artists":
		model = &catalog.Artist{}
	case "paintings":
		model = &catalog.Painting{}
	case "museums":
		model = &catalog.Museum{}
	case "exhibitions":
		model = &catalog.Exhibition{}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown resource %q", param)})
		return
	}

	result := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Deleting %s failed: %v", param, result.Error)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Deleted %d %s", result.RowsAffected, param)})
}
