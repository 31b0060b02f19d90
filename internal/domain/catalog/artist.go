package catalog

import (
	"time"

	"museum-api/internal/domain/users"
)

type Artist struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	BirthDate  time.Time `json:"birthDate"`
	BirthPlace string    `json:"birthPlace"`
	Education  string    `json:"education"`
	Movement   string    `json:"movement"`

	Paintings   []Painting   `gorm:"foreignKey:ArtistID" json:"paintings,omitempty"`
	Exhibitions []Exhibition `gorm:"foreignKey:ArtistID" json:"exhibitions,omitempty"`

	UserID *uint       `gorm:"index" json:"userId,omitempty"`
	User   *users.User `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
