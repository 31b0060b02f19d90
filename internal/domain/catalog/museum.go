package catalog

import (
	"time"

	"museum-api/internal/domain/users"
)

type Museum struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	FoundationDate time.Time `json:"foundationDate"`
	Architect      string    `json:"architect"`
	Website        string    `json:"website"`

	Exhibitions []Exhibition `gorm:"foreignKey:MuseumID" json:"exhibitions,omitempty"`

	UserID *uint       `gorm:"index" json:"userId,omitempty"`
	User   *users.User `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
