package portfolio

import "portfolio-admin/internal/domain/record"

type Education struct {
	record.Base
	Degree       string   `gorm:"not null" json:"degree" binding:"required"`
	Field        string   `json:"field"`
	Institution  string   `gorm:"not null" json:"institution" binding:"required"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	GPA          string   `gorm:"column:gpa" json:"gpa,omitempty"`
	Achievements []string `gorm:"type:text;serializer:json" json:"achievements"`
	SortOrder    int      `gorm:"not null;default:0;index" json:"sort_order"`
}

func (Education) TableName() string { return "education" }
