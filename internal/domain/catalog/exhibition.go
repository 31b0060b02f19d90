package catalog

import (
	"time"

	"museum-api/internal/domain/users"
)

// Exhibition is the join record between an Artist and a Museum. The
// composite primary key guarantees at most one exhibition per
// (artist, museum) pair.
type Exhibition struct {
	ArtistID uint    `gorm:"primaryKey;autoIncrement:false" json:"artistId"`
	MuseumID uint    `gorm:"primaryKey;autoIncrement:false" json:"museumId"`
	Artist   *Artist `json:"artist,omitempty"`
	Museum   *Museum `json:"museum,omitempty"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	UserID *uint       `gorm:"index" json:"userId,omitempty"`
	User   *users.User `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
