package exhibitions

import (
	"time"

	"museum-api/internal/domain/catalog"
)

type ExhibitionDTO struct {
	ArtistID  uint       `json:"artistId"`
	MuseumID  uint       `json:"museumId"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	UserID    *uint      `json:"userId,omitempty"`
}

func toExhibitionDTO(e catalog.Exhibition) ExhibitionDTO {
	start, end := e.StartDate, e.EndDate
	return ExhibitionDTO{
		ArtistID:  e.ArtistID,
		MuseumID:  e.MuseumID,
		StartDate: &start,
		EndDate:   &end,
		UserID:    e.UserID,
	}
}
