package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// SavedQuiz is the durable record of one error-free generation result.
// IDs auto-increment and are never reused, so listing by id descending
// gives most-recent-first.
type SavedQuiz struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Source    string         `gorm:"not null" json:"source"`
	Origin    string         `gorm:"not null" json:"origin"`
	Batch     string         `gorm:"not null" json:"submission_batch"`
	Questions datatypes.JSON `json:"questions"`
	CreatedAt time.Time      `json:"created_at"`
}
