package users

import "time"

// ConfirmationCode is handed out at registration and redeemed once to
// lift the user from Unconfirmed to Regular. Expired codes are removed
// by the cleanup sweeper.
type ConfirmationCode struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"userId"`
	User      User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Code      string `gorm:"not null;uniqueIndex:idx_confirmation_codes_code" json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"-"`
}

func (c ConfirmationCode) Expired(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}
