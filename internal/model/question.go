package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Option is one labeled alternative of a multiple-choice question. Letters are
// free-form strings; the catalog guarantees exactly one option per question has
// IsCorrect set.
type Option struct {
	Letter    string `json:"letter"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// OptionList is stored as a JSONB column.
type OptionList []Option

func (l OptionList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Option{})
	}
	return json.Marshal(l)
}

func (l *OptionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for OptionList", value)
	}
}

// CorrectLetter returns the letter of the option marked correct.
func (l OptionList) CorrectLetter() (string, bool) {
	for _, opt := range l {
		if opt.IsCorrect {
			return opt.Letter, true
		}
	}
	return "", false
}

type Question struct {
	ID          uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	Statement   string         `gorm:"type:text;not null" json:"statement"`
	Options     OptionList     `gorm:"type:jsonb;not null" json:"options"`
	Explanation string         `gorm:"type:text" json:"explanation"`
	Status      string         `gorm:"not null;default:'draft';index" json:"status"` // "draft", "published"
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Question) BeforeCreate(*gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
