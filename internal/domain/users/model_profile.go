package users

import "time"

type Gender int64

const (
	GenderUnspecified Gender = iota
	GenderFemale
	GenderMale
	GenderOther
)

type MaritalStatus int64

const (
	MaritalUnspecified MaritalStatus = iota
	MaritalSingle
	MaritalMarried
	MaritalDivorced
	MaritalWidowed
)

// UserProfile shares its primary key with the owning User and never
// outlives it.
type UserProfile struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"userId"`

	Bio            string        `json:"bio"`
	Location       string        `json:"location"`
	Birthday       *time.Time    `json:"birthday,omitempty"`
	Gender         Gender        `json:"gender"`
	MaritalStatus  MaritalStatus `json:"maritalStatus"`
	PagePreference int64         `gorm:"not null;default:5" json:"pagePreference"`
}
