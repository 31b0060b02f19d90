package museums

import (
	"time"

	"museum-api/internal/domain/catalog"
)

type MuseumDTO struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	FoundationDate time.Time `json:"foundationDate"`
	Architect      string    `json:"architect"`
	Website        string    `json:"website"`
	UserID         *uint     `json:"userId,omitempty"`
}

func toMuseumDTO(m catalog.Museum) MuseumDTO {
	return MuseumDTO{
		ID:             m.ID,
		Name:           m.Name,
		Address:        m.Address,
		FoundationDate: m.FoundationDate,
		Architect:      m.Architect,
		Website:        m.Website,
		UserID:         m.UserID,
	}
}
