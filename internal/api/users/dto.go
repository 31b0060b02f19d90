package users

import (
	domain "museum-api/internal/domain/users"
)

// UserDetailsDTO is the admin/details projection: the profile plus how
// many records of each kind the user owns.
type UserDetailsDTO struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	AccessLevel domain.AccessLevel  `json:"accessLevel"`
	Profile     *domain.UserProfile `json:"userProfile,omitempty"`

	ArtistCount     int64 `json:"artistCount"`
	PaintingCount   int64 `json:"paintingCount"`
	MuseumCount     int64 `json:"museumCount"`
	ExhibitionCount int64 `json:"exhibitionCount"`
}

type ProfileUpdateRequest struct {
	Bio            string  `json:"bio"`
	Location       string  `json:"location"`
	Birthday       *string `json:"birthday"`
	Gender         int64   `json:"gender"`
	MaritalStatus  int64   `json:"maritalStatus"`
	PagePreference int64   `json:"pagePreference"`
}

type AccessUpdateRequest struct {
	AccessLevel domain.AccessLevel `json:"accessLevel" binding:"min=0,max=2"`
}
