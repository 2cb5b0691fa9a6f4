package dto

import (
	"time"

	"github.com/google/uuid"
)

// OptionForAttemptDTO deliberately omits correctness: it is shown while an
// attempt is still in progress.
type OptionForAttemptDTO struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

type QuestionForAttemptDTO struct {
	ID        uuid.UUID             `json:"id"`
	Statement string                `json:"statement"`
	Options   []OptionForAttemptDTO `json:"options"`
	Position  int                   `json:"position"`
}

// QuizSetForAttemptDTO is the sanitized view of a published set used while
// taking it: ordered questions, no correct letters, no explanations.
type QuizSetForAttemptDTO struct {
	ID               uuid.UUID               `json:"id"`
	Title            string                  `json:"title"`
	Slug             string                  `json:"slug"`
	TimeLimitMinutes *int                    `json:"time_limit_minutes,omitempty"`
	Questions        []QuestionForAttemptDTO `json:"questions"`
}

// QuizSetSummaryDTO is one row of the published-set listing, with the live
// question count and the requesting user's most recent attempt, if any.
type QuizSetSummaryDTO struct {
	ID               uuid.UUID          `json:"id"`
	Title            string             `json:"title"`
	Slug             string             `json:"slug"`
	Description      string             `json:"description,omitempty"`
	TimeLimitMinutes *int               `json:"time_limit_minutes,omitempty"`
	QuestionCount    int                `json:"question_count"`
	CreatedAt        time.Time          `json:"created_at"`
	LastAttempt      *AttemptSummaryDTO `json:"last_attempt,omitempty"`
}
