package portfolio

import "portfolio-admin/internal/domain/record"

type Certification struct {
	record.Base
	Name         string `gorm:"not null" json:"name" binding:"required"`
	Issuer       string `gorm:"not null" json:"issuer" binding:"required"`
	Year         string `json:"year"`
	CredentialID string `json:"credential_id,omitempty"`
	Icon         string `json:"icon"`
	SortOrder    int    `gorm:"not null;default:0;index" json:"sort_order"`
}
