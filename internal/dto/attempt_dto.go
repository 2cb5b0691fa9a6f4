package dto

import (
	"time"

	"github.com/google/uuid"
)

type AnswerEntryDTO struct {
	QuestionID   uuid.UUID `json:"question_id"`
	ChosenLetter string    `json:"chosen_letter"`
	Correct      *bool     `json:"correct,omitempty"`
}

// AttemptDTO is the in-progress view returned by start and resume.
type AttemptDTO struct {
	ID              uuid.UUID        `json:"id"`
	QuizSetID       uuid.UUID        `json:"quiz_set_id"`
	Total           int              `json:"total"`
	StartedAt       time.Time        `json:"started_at"`
	AnswersSnapshot []AnswerEntryDTO `json:"answers_snapshot"`
}

type AttemptSummaryDTO struct {
	ID         uuid.UUID  `json:"id"`
	QuizSetID  uuid.UUID  `json:"quiz_set_id"`
	Score      int        `json:"score"`
	Total      int        `json:"total"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type StartAttemptRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// RecordAnswerRequest captures one choice. ChosenLetter has no binding rule:
// an empty letter is a legal skipped answer.
type RecordAnswerRequest struct {
	UserID       uuid.UUID `json:"user_id" binding:"required"`
	QuestionID   uuid.UUID `json:"question_id" binding:"required"`
	ChosenLetter string    `json:"chosen_letter"`
}

type FinishAttemptRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// OptionForReviewDTO includes correctness; it is only ever attached to
// finished attempts.
type OptionForReviewDTO struct {
	Letter    string `json:"letter"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionForReviewDTO struct {
	ID          uuid.UUID            `json:"id"`
	Statement   string               `json:"statement"`
	Options     []OptionForReviewDTO `json:"options"`
	Explanation string               `json:"explanation"`
}

// AttemptResultDTO is the reviewable report of a finished attempt. Questions
// follow the snapshot order.
type AttemptResultDTO struct {
	ID         uuid.UUID              `json:"id"`
	QuizSetID  uuid.UUID              `json:"quiz_set_id"`
	SetTitle   string                 `json:"set_title"`
	SetSlug    string                 `json:"set_slug"`
	Score      int                    `json:"score"`
	Total      int                    `json:"total"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
	Answers    []AnswerEntryDTO       `json:"answers"`
	Questions  []QuestionForReviewDTO `json:"questions"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
