package artists

import (
	"time"

	"museum-api/internal/domain/catalog"
)

// ArtistDTO is the flat projection used on every collection endpoint.
// It carries no painting or exhibition lists, which keeps the cyclic
// Artist/Painting/Exhibition/Museum graph out of responses.
type ArtistDTO struct {
	ID         uint      `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	BirthDate  time.Time `json:"birthDate"`
	BirthPlace string    `json:"birthPlace"`
	Education  string    `json:"education"`
	Movement   string    `json:"movement"`
	UserID     *uint     `json:"userId,omitempty"`
}

type ArtistByPaintingAgeDTO struct {
	ArtistDTO
	AveragePaintingAge float64 `json:"averagePaintingAge"`
}

type ArtistByPaintingHeightDTO struct {
	ArtistDTO
	AveragePaintingHeight float64 `json:"averagePaintingHeight"`
}

type ArtistMuseumListRequest struct {
	MuseumID  []uint     `json:"museumId" binding:"required"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func toArtistDTO(a catalog.Artist) ArtistDTO {
	return ArtistDTO{
		ID:         a.ID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		BirthDate:  a.BirthDate,
		BirthPlace: a.BirthPlace,
		Education:  a.Education,
		Movement:   a.Movement,
		UserID:     a.UserID,
	}
}
