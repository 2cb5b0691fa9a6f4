package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attempt is one learner's pass through one quiz set. Total is frozen at
// creation; Score is meaningful only once FinishedAt is set. Attempts are
// never deleted.
type Attempt struct {
	ID              uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizSetID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_set_id"`
	QuizSet         QuizSet        `json:"quiz_set,omitempty" gorm:"foreignKey:QuizSetID"`
	Total           int            `gorm:"not null" json:"total"`
	Score           int            `gorm:"not null;default:0" json:"score"`
	StartedAt       time.Time      `gorm:"not null" json:"started_at"`
	FinishedAt      *time.Time     `json:"finished_at,omitempty"`
	AnswersSnapshot AnswerSnapshot `gorm:"type:jsonb;not null" json:"answers_snapshot"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (a *Attempt) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Finished reports whether the attempt has been finalized.
func (a *Attempt) Finished() bool {
	return a.FinishedAt != nil
}
