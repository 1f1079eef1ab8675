package portfolio

import "portfolio-admin/internal/domain/record"

type Experience struct {
	record.Base
	Title        string   `gorm:"not null" json:"title" binding:"required"`
	Company      string   `gorm:"not null" json:"company" binding:"required"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Description  string   `gorm:"type:text" json:"description"`
	Achievements []string `gorm:"type:text;serializer:json" json:"achievements"`
	Skills       []string `gorm:"type:text;serializer:json" json:"skills"`
	SortOrder    int      `gorm:"not null;default:0;index" json:"sort_order"`
}

func (Experience) TableName() string { return "experience" }
