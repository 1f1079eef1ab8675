package portfolio

import "portfolio-admin/internal/domain/record"

type Skill struct {
	record.Base
	Name      string `gorm:"not null" json:"name" binding:"required"`
	Level     int    `gorm:"not null" json:"level" binding:"required,min=1,max=100"`
	Icon      string `json:"icon"`
	ColorFrom string `json:"color_from"`
	ColorTo   string `json:"color_to"`
	SortOrder int    `gorm:"not null;default:0;index" json:"sort_order"`
}
