package catalog

import (
	"time"

	"museum-api/internal/domain/users"
)

// Painting keeps a nullable ArtistID at the schema level so that an
// artist delete can null it out, but validation requires a resolvable
// artist on every write.
type Painting struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Title        string  `json:"title"`
	CreationYear int     `json:"creationYear"`
	Height       float64 `json:"height"`
	Subject      string  `json:"subject"`
	Medium       string  `json:"medium"`
	Description  string  `json:"description,omitempty"`

	ArtistID *uint   `gorm:"index" json:"artistId,omitempty"`
	Artist   *Artist `gorm:"constraint:OnDelete:SET NULL" json:"artist,omitempty"`

	UserID *uint       `gorm:"index" json:"userId,omitempty"`
	User   *users.User `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
