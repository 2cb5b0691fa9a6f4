package repository

import (
	"github.com/google/uuid"
	"github.com/reeduca/simulado-api/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByIDs(ids []uuid.UUID) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FindByIDs fetches questions in one batch. Ids that no longer resolve are
// simply absent from the result.
func (r *questionRepository) FindByIDs(ids []uuid.UUID) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
