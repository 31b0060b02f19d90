package paintings

import (
	"time"

	"museum-api/internal/domain/catalog"
)

// PaintingDTO carries the artist as a bare id. Serializing the full
// Artist here would pull its paintings list back in and recurse.
type PaintingDTO struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	CreationYear int     `json:"creationYear"`
	Height       float64 `json:"height"`
	Subject      string  `json:"subject"`
	Medium       string  `json:"medium"`
	Description  string  `json:"description,omitempty"`
	ArtistID     *uint   `json:"artistId,omitempty"`
	UserID       *uint   `json:"userId,omitempty"`
}

type ArtistDTO struct {
	ID         uint      `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	BirthDate  time.Time `json:"birthDate"`
	BirthPlace string    `json:"birthPlace"`
	Education  string    `json:"education"`
	Movement   string    `json:"movement"`
}

func toPaintingDTO(p catalog.Painting) PaintingDTO {
	return PaintingDTO{
		ID:           p.ID,
		Title:        p.Title,
		CreationYear: p.CreationYear,
		Height:       p.Height,
		Subject:      p.Subject,
		Medium:       p.Medium,
		Description:  p.Description,
		ArtistID:     p.ArtistID,
		UserID:       p.UserID,
	}
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
	}
}
