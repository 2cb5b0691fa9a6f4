package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// AnswerEntry is one question's recorded choice within an attempt. Correct
// stays nil while the attempt is in progress and is frozen at finalization.
type AnswerEntry struct {
	QuestionID   uuid.UUID `json:"question_id"`
	ChosenLetter string    `json:"chosen_letter"`
	Correct      *bool     `json:"correct,omitempty"`
}

// AnswerSnapshot holds at most one entry per question, in the order questions
// were first answered. Stored as a JSONB column.
type AnswerSnapshot []AnswerEntry

// Set records the chosen letter for a question, last write wins. A question
// already in the snapshot keeps its position; new questions append.
func (s AnswerSnapshot) Set(questionID uuid.UUID, chosenLetter string) AnswerSnapshot {
	for i := range s {
		if s[i].QuestionID == questionID {
			s[i].ChosenLetter = chosenLetter
			s[i].Correct = nil
			return s
		}
	}
	return append(s, AnswerEntry{QuestionID: questionID, ChosenLetter: chosenLetter})
}

// Get returns the entry for a question, if recorded.
func (s AnswerSnapshot) Get(questionID uuid.UUID) (AnswerEntry, bool) {
	for _, entry := range s {
		if entry.QuestionID == questionID {
			return entry, true
		}
	}
	return AnswerEntry{}, false
}

// QuestionIDs lists the referenced question ids in snapshot order.
func (s AnswerSnapshot) QuestionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for _, entry := range s {
		ids = append(ids, entry.QuestionID)
	}
	return ids
}

func (s AnswerSnapshot) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]AnswerEntry{})
	}
	return json.Marshal(s)
}

func (s *AnswerSnapshot) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for AnswerSnapshot", value)
	}
}
