package users

import (
	"time"

	"portfolio-admin/internal/domain/record"
)

const RoleAdmin = "admin"

// Admin is an account allowed into the admin panel.
type Admin struct {
	record.Base
	Username     string     `gorm:"not null;uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"not null;default:'admin'" json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}
