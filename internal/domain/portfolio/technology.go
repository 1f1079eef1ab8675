package portfolio

import "portfolio-admin/internal/domain/record"

type Technology struct {
	record.Base
	Name      string `gorm:"not null" json:"name" binding:"required"`
	BgColor   string `json:"bg_color"`
	TextColor string `json:"text_color"`
	SortOrder int    `gorm:"not null;default:0;index" json:"sort_order"`
}
