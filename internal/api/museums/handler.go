package museums

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"museum-api/database"
	"museum-api/internal/app/http/middleware"
	"museum-api/internal/domain/catalog"
	"museum-api/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/museums
func ListMuseums(c *gin.Context) {
	var museums []catalog.Museum
	if err := database.DB.Order("id").Find(&museums).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Museums are unavailable"})
		return
	}

	out := make([]MuseumDTO, 0, len(museums))
	for _, m := range museums {
		out = append(out, toMuseumDTO(m))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/museums/:id/:pageSize
func GetMuseumPage(c *gin.Context) {
	page, err1 := strconv.Atoi(c.Param("id"))
	pageSize, err2 := strconv.Atoi(c.Param("pageSize"))
	if err1 != nil || err2 != nil || page < 0 || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page or page size"})
		return
	}

	var museums []catalog.Museum
	err := database.DB.Order("id").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&museums).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Museums are unavailable"})
		return
	}

	out := make([]MuseumDTO, 0, len(museums))
	for _, m := range museums {
		out = append(out, toMuseumDTO(m))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/museums/count/:pageSize
func GetMuseumPageCount(c *gin.Context) {
	pageSize, err := strconv.Atoi(c.Param("pageSize"))
	if err != nil || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page size"})
		return
	}

	var total int64
	if err := database.DB.Model(&catalog.Museum{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Museums are unavailable"})
		return
	}

	c.JSON(http.StatusOK, (total+int64(pageSize)-1)/int64(pageSize))
}

// GET /api/museums/:id
func GetMuseum(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var museum catalog.Museum
	err = database.DB.
		Preload("Exhibitions.Artist").
		First(&museum, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Museum not found"})
		return
	}

	c.JSON(http.StatusOK, museum)
}

// GET /api/museums/autocomplete?query=
func Autocomplete(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 3 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Query must be at least 3 characters"})
		return
	}

	var museums []catalog.Museum
	err := database.DB.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Limit(10).
		Find(&museums).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Museums are unavailable"})
		return
	}

	out := make([]MuseumDTO, 0, len(museums))
	for _, m := range museums {
		out = append(out, toMuseumDTO(m))
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/museums
func CreateMuseum(c *gin.Context) {
	var dto MuseumDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middleware.Principal(c)
	museum := catalog.Museum{
		Name:           dto.Name,
		Address:        dto.Address,
		FoundationDate: dto.FoundationDate,
		Architect:      dto.Architect,
		Website:        dto.Website,
		UserID:         &userID,
	}

	if errs := validation.ValidateMuseum(&museum); !errs.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs.Message()})
		return
	}

	if err := database.DB.Create(&museum).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create museum"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/museums/%d", museum.ID))
	c.JSON(http.StatusCreated, toMuseumDTO(museum))
}

// PUT /api/museums/:id
func UpdateMuseum(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var dto MuseumDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if uint(id) != dto.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path id and body id do not match"})
		return
	}

	var museum catalog.Museum
	if err := database.DB.First(&museum, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Museum not found"})
		return
	}

	if !middleware.CanMutate(c, museum.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this museum"})
		return
	}

	museum.Name = dto.Name
	museum.Address = dto.Address
	museum.FoundationDate = dto.FoundationDate
	museum.Architect = dto.Architect
	museum.Website = dto.Website

	if errs := validation.ValidateMuseum(&museum); !errs.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs.Message()})
		return
	}

	res := database.DB.Model(&catalog.Museum{}).
		Where("id = ?", id).
		Select("*").Omit("id", "created_at").
		Updates(&museum)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update museum"})
		return
	}
	if res.RowsAffected == 0 {
		// The record was deleted between the load and the update.
		c.JSON(http.StatusNotFound, gin.H{"error": "Museum not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DELETE /api/museums/:id
func DeleteMuseum(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var museum catalog.Museum
	if err := database.DB.First(&museum, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Museum not found"})
		return
	}

	if !middleware.CanMutate(c, museum.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this museum"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("museum_id = ?", museum.ID).
			Delete(&catalog.Exhibition{}).Error; err != nil {
			return err
		}
		return tx.Delete(&museum).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete museum"})
		return
	}

	c.Status(http.StatusNoContent)
}
