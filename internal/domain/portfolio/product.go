package portfolio

import "portfolio-admin/internal/domain/record"

type Product struct {
	record.Base
	Title       string   `gorm:"not null" json:"title" binding:"required"`
	Description string   `gorm:"type:text;not null" json:"description" binding:"required"`
	Category    string   `json:"category"`
	Users       string   `json:"users,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Features    []string `gorm:"type:text;serializer:json" json:"features"`
	Status      string   `gorm:"not null;default:'active'" json:"status"`
	DemoURL     string   `json:"demo_url,omitempty"`
	SortOrder   int      `gorm:"not null;default:0;index" json:"sort_order"`
}
