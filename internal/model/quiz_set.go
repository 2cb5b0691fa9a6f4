package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// QuizSet is a named, ordered collection of questions assembled for assessment.
// Only published sets can be taken.
type QuizSet struct {
	ID               uuid.UUID         `gorm:"type:uuid;primarykey" json:"id"`
	Title            string            `gorm:"not null" json:"title"`
	Slug             string            `gorm:"not null;uniqueIndex" json:"slug"`
	Description      string            `json:"description,omitempty"`
	Status           string            `gorm:"not null;default:'draft';index" json:"status"` // "draft", "published"
	TimeLimitMinutes *int              `json:"time_limit_minutes,omitempty"`
	Questions        []QuizSetQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizSetID"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	DeletedAt        gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (s *QuizSet) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
