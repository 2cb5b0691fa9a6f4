package model

import (
	"github.com/google/uuid"
)

// QuizSetQuestion links a question into a set at a fixed position.
type QuizSetQuestion struct {
	QuizSetID  uuid.UUID `gorm:"type:uuid;primarykey" json:"quiz_set_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;primarykey" json:"question_id"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Position   int       `gorm:"not null" json:"position"`
}
