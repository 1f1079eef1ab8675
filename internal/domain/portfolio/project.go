package portfolio

import "portfolio-admin/internal/domain/record"

type Project struct {
	record.Base
	Title       string   `gorm:"not null" json:"title" binding:"required"`
	Description string   `gorm:"type:text;not null" json:"description" binding:"required"`
	Tech        []string `gorm:"type:text;serializer:json" json:"tech"`
	Category    string   `json:"category"`
	Year        string   `json:"year"`
	Metrics     string   `json:"metrics,omitempty"`
	ProjectURL  string   `json:"project_url,omitempty"`
	SortOrder   int      `gorm:"not null;default:0;index" json:"sort_order"`
}
