package contact

import (
	"time"

	"portfolio-admin/internal/domain/record"

	"gorm.io/gorm"
)

// Submission is a message left through the public contact form.
type Submission struct {
	record.Base
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null;index" json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Status      Status    `gorm:"type:varchar(16);not null;default:'new';index" json:"status"`
	SubmittedAt time.Time `gorm:"not null;index" json:"submitted_at"`
}

func (Submission) TableName() string { return "contact_submissions" }

// BeforeCreate pins every new submission to StatusNew.
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if err := s.Base.BeforeCreate(tx); err != nil {
		return err
	}
	s.Status = StatusNew
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = tx.NowFunc()
	}
	return nil
}
