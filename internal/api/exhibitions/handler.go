package exhibitions

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"museum-api/database"
	"museum-api/internal/app/http/middleware"
	"museum-api/internal/domain/catalog"
	"museum-api/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func pairParams(c *gin.Context) (uint, uint, bool) {
	artistID, err1 := strconv.Atoi(c.Param("id"))
	museumID, err2 := strconv.Atoi(c.Param("museumId"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artist or museum id"})
		return 0, 0, false
	}
	return uint(artistID), uint(museumID), true
}

// GET /api/exhibitions
func ListExhibitions(c *gin.Context) {
	var exhibitions []catalog.Exhibition
	err := database.DB.Order("artist_id, museum_id").Find(&exhibitions).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibitions are unavailable"})
		return
	}

	out := make([]ExhibitionDTO, 0, len(exhibitions))
	for _, e := range exhibitions {
		out = append(out, toExhibitionDTO(e))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/exhibitions/page/:page/:pageSize
func GetExhibitionPage(c *gin.Context) {
	page, err1 := strconv.Atoi(c.Param("page"))
	pageSize, err2 := strconv.Atoi(c.Param("pageSize"))
	if err1 != nil || err2 != nil || page < 0 || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page or page size"})
		return
	}

	var exhibitions []catalog.Exhibition
	err := database.DB.Order("artist_id, museum_id").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&exhibitions).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibitions are unavailable"})
		return
	}

	out := make([]ExhibitionDTO, 0, len(exhibitions))
	for _, e := range exhibitions {
		out = append(out, toExhibitionDTO(e))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/exhibitions/count/:pageSize
func GetExhibitionPageCount(c *gin.Context) {
	pageSize, err := strconv.Atoi(c.Param("pageSize"))
	if err != nil || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page size"})
		return
	}

	var total int64
	if err := database.DB.Model(&catalog.Exhibition{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibitions are unavailable"})
		return
	}

	c.JSON(http.StatusOK, (total+int64(pageSize)-1)/int64(pageSize))
}

// GET /api/exhibitions/:id/:museumId
func GetExhibition(c *gin.Context) {
	artistID, museumID, ok := pairParams(c)
	if !ok {
		return
	}

	var exhibition catalog.Exhibition
	err := database.DB.
		Preload("Artist").
		Preload("Museum").
		Where("artist_id = ? AND museum_id = ?", artistID, museumID).
		First(&exhibition).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}

	c.JSON(http.StatusOK, exhibition)
}

// POST /api/exhibitions
// The (artist, museum) pair is the primary key: a second exhibition for
// an existing pair is rejected, never silently merged.
func CreateExhibition(c *gin.Context) {
	var dto ExhibitionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middleware.Principal(c)
	now := time.Now()
	exhibition := catalog.Exhibition{
		ArtistID:  dto.ArtistID,
		MuseumID:  dto.MuseumID,
		StartDate: now,
		EndDate:   now,
		UserID:    &userID,
	}
	if dto.StartDate != nil {
		exhibition.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		exhibition.EndDate = *dto.EndDate
	}

	if errs := validation.ValidateExhibition(database.DB, &exhibition); !errs.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs.Message()})
		return
	}

	var count int64
	database.DB.Model(&catalog.Exhibition{}).
		Where("artist_id = ? AND museum_id = ?", exhibition.ArtistID, exhibition.MuseumID).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Artist %d is already exhibited at museum %d", exhibition.ArtistID, exhibition.MuseumID)})
		return
	}

	if err := database.DB.Create(&exhibition).Error; err != nil {
		// Lost a race on the composite key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Artist %d is already exhibited at museum %d", exhibition.ArtistID, exhibition.MuseumID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exhibition"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/exhibitions/%d/%d", exhibition.ArtistID, exhibition.MuseumID))
	c.JSON(http.StatusCreated, toExhibitionDTO(exhibition))
}

// PUT /api/exhibitions/:id/:museumId
// Only the date range is mutable; the pair itself is the identity.
func UpdateExhibition(c *gin.Context) {
	artistID, museumID, ok := pairParams(c)
	if !ok {
		return
	}

	var dto ExhibitionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if dto.ArtistID != artistID || dto.MuseumID != museumID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path ids and body ids do not match"})
		return
	}

	var exhibition catalog.Exhibition
	err := database.DB.
		Where("artist_id = ? AND museum_id = ?", artistID, museumID).
		First(&exhibition).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}

	if !middleware.CanMutate(c, exhibition.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this exhibition"})
		return
	}

	if dto.StartDate != nil {
		exhibition.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		exhibition.EndDate = *dto.EndDate
	}

	if errs := validation.ValidateExhibition(database.DB, &exhibition); !errs.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs.Message()})
		return
	}

	res := database.DB.Model(&catalog.Exhibition{}).
		Where("artist_id = ? AND museum_id = ?", artistID, museumID).
		Select("start_date", "end_date").
		Updates(&exhibition)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update exhibition"})
		return
	}
	if res.RowsAffected == 0 {
		// The record was deleted between the load and the update.
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DELETE /api/exhibitions/:id/:museumId
func DeleteExhibition(c *gin.Context) {
	artistID, museumID, ok := pairParams(c)
	if !ok {
		return
	}

	var exhibition catalog.Exhibition
	err := database.DB.
		Where("artist_id = ? AND museum_id = ?", artistID, museumID).
		First(&exhibition).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}

	if !middleware.CanMutate(c, exhibition.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this exhibition"})
		return
	}

	err = database.DB.
		Where("artist_id = ? AND museum_id = ?", artistID, museumID).
		Delete(&catalog.Exhibition{}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete exhibition"})
		return
	}

	c.Status(http.StatusNoContent)
}
