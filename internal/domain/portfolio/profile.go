package portfolio

import "portfolio-admin/internal/domain/record"

// Profile is a singleton: the site has exactly one owner profile.
type Profile struct {
	record.Base
	Name        string `gorm:"not null" json:"name" binding:"required"`
	Title       string `json:"title"`
	Bio         string `gorm:"type:text" json:"bio"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	ResumeURL   string `json:"resume_url,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	LinkedinURL string `json:"linkedin_url,omitempty"`
	GithubURL   string `json:"github_url,omitempty"`
}

func (Profile) TableName() string { return "profile" }
