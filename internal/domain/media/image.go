package media

import "portfolio-admin/internal/domain/record"

// Image records one uploaded file and where it is served from.
type Image struct {
	record.Base
	Bucket       string `gorm:"not null;index" json:"bucket"`
	OriginalName string `json:"original_name"`
	Path         string `gorm:"not null" json:"path"`
	URL          string `gorm:"not null" json:"url"`
	ContentType  string `json:"content_type"`
	SizeBytes    int64  `json:"size_bytes"`
}
