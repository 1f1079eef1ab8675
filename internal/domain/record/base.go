package record

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded by every stored record. The identifier and both
// timestamps belong to the server; values sent by clients are discarded.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// RecordID returns the persisted identifier, empty before the first save.
func (b Base) RecordID() string { return b.ID }

// Identity exposes the base for handlers working over any record type.
func (b *Base) Identity() *Base { return b }

// Reset drops client-supplied identity and timestamps.
func (b *Base) Reset() {
	b.ID = ""
	b.CreatedAt = time.Time{}
	b.UpdatedAt = time.Time{}
}
