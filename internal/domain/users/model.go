package users

import "time"

type AccessLevel int64

const (
	AccessUnconfirmed AccessLevel = iota
	AccessRegular
	AccessAdmin
)

type User struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null;uniqueIndex:idx_users_name" json:"name"`
	Password    string      `gorm:"not null" json:"-"`
	AccessLevel AccessLevel `gorm:"not null;default:0" json:"accessLevel"`

	Profile *UserProfile `gorm:"foreignKey:UserID" json:"userProfile,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (l AccessLevel) AtLeast(min AccessLevel) bool {
	return l >= min
}
