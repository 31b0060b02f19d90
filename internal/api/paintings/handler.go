package paintings

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
)

// GET /api/paintings
func ListPaintings(c *gin.Context) {
	var paintings []catalog.Painting
	if err := database.DB.Order("id").Find(&paintings).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paintings are unavailable"})
		return
	}

	out := make([]PaintingDTO, 0, len(paintings))
	for _, p := range paintings {
		out = append(out, toPaintingDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/paintings/:id/:pageSize
func GetPaintingPage(c *gin.Context) {
	page, err1 := strconv.Atoi(c.Param("id"))
	pageSize, err2 := strconv.Atoi(c.Param("pageSize"))
	if err1 != nil || err2 != nil || page < 0 || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page or page size"})
		return
	}

	var paintings []catalog.Painting
	err := database.DB.Order("id").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&paintings).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paintings are unavailable"})
		return
	}

	out := make([]PaintingDTO, 0, len(paintings))
	for _, p := range paintings {
		out = append(out, toPaintingDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/paintings/count/:pageSize
func GetPaintingPageCount(c *gin.Context) {
	pageSize, err := strconv.Atoi(c.Param("pageSize"))
	if err != nil || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page size"})
		return
	}

	var total int64
	if err := database.DB.Model(&catalog.Painting{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paintings are unavailable"})
		return
	}

	c.JSON(http.StatusOK, (total+int64(pageSize)-1)/int64(pageSize))
}

// GET /api/paintings/:id
func GetPainting(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var painting catalog.Painting
	if err := database.DB.Preload("Artist").First(&painting, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}

	c.JSON(http.StatusOK, painting)
}

// GET /api/paintings/autocomplete?query=
func AutocompleteTitle(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 3 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Query must be at least 3 characters"})
		return
	}

	var paintings []catalog.Painting
	err := database.DB.
		Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query)+"%").
		Limit(10).
		Find(&paintings).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paintings are unavailable"})
		return
	}

	out := make([]PaintingDTO, 0, len(paintings))
	for _, p := range paintings {
		out = append(out, toPaintingDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/paintings/autocomplete-artist?query=
// Searches artists rather than paintings; the painting forms use it to
// pick the artist reference.
func AutocompleteArtist(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 3 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Query must be at least 3 characters"})
		return
	}

	var artists []catalog.Artist
	err := database.DB.
		Where("LOWER(first_name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Limit(10).
		Find(&artists).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artists are unavailable"})
		return
	}

	out := make([]ArtistDTO, 0, len(artists))
	for _, a := range artists {
		out = append(out, toArtistDTO(a))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/paintings/filter?year=
func FilterByCreationYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	var paintings []catalog.Painting
	err = database.DB.
		Where("creation_year > ?", year).
		Limit(100).
		Find(&paintings).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paintings are unavailable"})
		return
	}

	out := make([]PaintingDTO, 0, len(paintings))
	for _, p := range paintings {
		out = append(out, toPaintingDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/paintings
func CreatePainting(c *gin.Context) {
	var dto PaintingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middleware.Principal(c)
	painting := catalog.Painting{
		Title:        dto.Title,
		CreationYear: dto.CreationYear,
		Height:       dto.Height,
		Subject:      dto.Subject,
		Medium:       dto.Medium,
		Description:  dto.Description,
		ArtistID:     dto.ArtistID,
		UserID:       &userID,
	}

	if errs := validation.ValidatePainting(database.DB, &painting); !errs.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs.Message()})
		return
	}

	if err := database.DB.Create(&painting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create painting"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/paintings/%d", painting.ID))
	c.JSON(http.StatusCreated, toPaintingDTO(painting))
}

// PUT /api/paintings/:id
func UpdatePainting(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var dto PaintingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if uint(id) != dto.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path id and body id do not match"})
		return
	}

	var painting catalog.Painting
	if err := database.DB.First(&painting, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}

	if !middleware.CanMutate(c, painting.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this painting"})
		return
	}

	painting.Title = dto.Title
	painting.CreationYear = dto.CreationYear
	painting.Height = dto.Height
	painting.Subject = dto.Subject
	painting.Medium = dto.Medium
	painting.Description = dto.Description
	painting.ArtistID = dto.ArtistID

	if errs := validation.ValidatePainting(database.DB, &painting); !errs.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs.Message()})
		return
	}

	res := database.DB.Model(&catalog.Painting{}).
		Where("id = ?", id).
		Select("*").Omit("id", "created_at").
		Updates(&painting)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
		return
	}
	if res.RowsAffected == 0 {
		// The record was deleted between the load and the update.
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DELETE /api/paintings/:id
func DeletePainting(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var painting catalog.Painting
	if err := database.DB.First(&painting, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}

	if !middleware.CanMutate(c, painting.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this painting"})
		return
	}

	if err := database.DB.Delete(&painting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete painting"})
		return
	}

	c.Status(http.StatusNoContent)
}
