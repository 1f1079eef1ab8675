package users

import "time"

// RevokedToken marks a session token ended by logout before its expiry.
type RevokedToken struct {
	TokenID   string    `gorm:"type:varchar(36);primaryKey"`
	AdminID   string    `gorm:"type:varchar(36);index"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}
