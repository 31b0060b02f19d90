package artists

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"museum-api/database"
	"museum-api/internal/app/http/middleware"
	"museum-api/internal/domain/catalog"
	"museum-api/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/artists
func ListArtists(c *gin.Context) {
	var artists []catalog.Artist
	if err := database.DB.Order("id").Find(&artists).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artists are unavailable"})
		return
	}

	out := make([]ArtistDTO, 0, len(artists))
	for _, a := range artists {
		out = append(out, toArtistDTO(a))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/artists/:id/:pageSize
// The first segment is the page index; it shares the :id wildcard with
// the single-record route because gin allows one name per position.
func GetArtistPage(c *gin.Context) {
	page, err1 := strconv.Atoi(c.Param("id"))
	pageSize, err2 := strconv.Atoi(c.Param("pageSize"))
	if err1 != nil || err2 != nil || page < 0 || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page or page size"})
		return
	}

	var artists []catalog.Artist
	err := database.DB.Order("id").
		Offset(page * pageSize).
		Limit(pageSize).
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

// GET /api/artists/count/:pageSize
func GetArtistPageCount(c *gin.Context) {
	pageSize, err := strconv.Atoi(c.Param("pageSize"))
	if err != nil || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page size"})
		return
	}

	var total int64
	if err := database.DB.Model(&catalog.Artist{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artists are unavailable"})
		return
	}

	c.JSON(http.StatusOK, (total+int64(pageSize)-1)/int64(pageSize))
}

// GET /api/artists/:id
func GetArtist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var artist catalog.Artist
	err = database.DB.
		Preload("Paintings").
		Preload("Exhibitions.Museum").
		First(&artist, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	c.JSON(http.StatusOK, artist)
}

// GET /api/artists/autocomplete?query=
func Autocomplete(c *gin.Context) {
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

// GET /api/artists/getbypaintingage
func GetByPaintingAge(c *gin.Context) {
	rows, err := averageByColumn(database.DB, "creation_year")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artists are unavailable"})
		return
	}

	out := make([]ArtistByPaintingAgeDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ArtistByPaintingAgeDTO{ArtistDTO: r.toDTO(), AveragePaintingAge: r.Average})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/artists/getbypaintingheight
func GetByPaintingHeight(c *gin.Context) {
	rows, err := averageByColumn(database.DB, "height")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artists are unavailable"})
		return
	}

	out := make([]ArtistByPaintingHeightDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ArtistByPaintingHeightDTO{ArtistDTO: r.toDTO(), AveragePaintingHeight: r.Average})
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/artists
func CreateArtist(c *gin.Context) {
	var dto ArtistDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middleware.Principal(c)
	artist := catalog.Artist{
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		BirthDate:  dto.BirthDate,
		BirthPlace: dto.BirthPlace,
		Education:  dto.Education,
		Movement:   dto.Movement,
		UserID:     &userID,
	}

	if errs := validation.ValidateArtist(&artist); !errs.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs.Message()})
		return
	}

	if err := database.DB.Create(&artist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/artists/%d", artist.ID))
	c.JSON(http.StatusCreated, toArtistDTO(artist))
}

// PUT /api/artists/:id
func UpdateArtist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var dto ArtistDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if uint(id) != dto.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path id and body id do not match"})
		return
	}

	var artist catalog.Artist
	if err := database.DB.First(&artist, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	if !middleware.CanMutate(c, artist.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this artist"})
		return
	}

	artist.FirstName = dto.FirstName
	artist.LastName = dto.LastName
	artist.BirthDate = dto.BirthDate
	artist.BirthPlace = dto.BirthPlace
	artist.Education = dto.Education
	artist.Movement = dto.Movement

	if errs := validation.ValidateArtist(&artist); !errs.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs.Message()})
		return
	}

	res := database.DB.Model(&catalog.Artist{}).
		Where("id = ?", id).
		Select("*").Omit("id", "created_at").
		Updates(&artist)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}
	if res.RowsAffected == 0 {
		// The record was deleted between the load and the update.
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DELETE /api/artists/:id
// Paintings keep existing with a nulled artist reference; the artist's
// exhibitions go with it.
func DeleteArtist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var artist catalog.Artist
	if err := database.DB.First(&artist, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	if !middleware.CanMutate(c, artist.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this artist"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&catalog.Painting{}).
			Where("artist_id = ?", artist.ID).
			Update("artist_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("artist_id = ?", artist.ID).
			Delete(&catalog.Exhibition{}).Error; err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist"})
		return
	}

	c.Status(http.StatusNoContent)
}

// POST /api/artists/:id/museumList
// Pairs the artist with each museum in the body by creating exhibition
// records. A pair that already exists fails the whole request; the
// composite key never silently duplicates.
func AddMuseumsToArtist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req ArtistMuseumListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var artist catalog.Artist
	if err := database.DB.First(&artist, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	if !middleware.CanMutate(c, artist.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this artist"})
		return
	}

	userID, _ := middleware.Principal(c)
	now := time.Now()
	start, end := now, now
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, museumID := range req.MuseumID {
			exhibition := catalog.Exhibition{
				ArtistID:  artist.ID,
				MuseumID:  museumID,
				StartDate: start,
				EndDate:   end,
				UserID:    &userID,
			}
			if errs := validation.ValidateExhibition(tx, &exhibition); !errs.OK() {
				return fmt.Errorf("%s", errs.Message())
			}
			if err := tx.Create(&exhibition).Error; err != nil {
				return fmt.Errorf("artist %d is already exhibited at museum %d", artist.ID, museumID)
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Added %d museums to artist %d", len(req.MuseumID), artist.ID)})
}
