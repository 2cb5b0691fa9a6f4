package repository

import (
	"github.com/google/uuid"
	"github.com/reeduca/simulado-api/internal/model"
	"gorm.io/gorm"
)

type QuizSetRepository interface {
	FindPublishedBySlug(slug string) (*model.QuizSet, error)
	FindAllPublishedWithQuestionCount() ([]struct {
		model.QuizSet
		QuestionCount int
	}, error)
	CountQuestions(quizSetID uuid.UUID) (int64, error)
}

type quizSetRepository struct {
	db *gorm.DB
}

func NewQuizSetRepository(db *gorm.DB) QuizSetRepository {
	return &quizSetRepository{db: db}
}

func (r *quizSetRepository) FindPublishedBySlug(slug string) (*model.QuizSet, error) {
	var set model.QuizSet
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_set_questions.position ASC")
		}).
		Preload("Questions.Question").
		Where("slug = ? AND status = ?", slug, model.StatusPublished).
		First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *quizSetRepository) FindAllPublishedWithQuestionCount() ([]struct {
	model.QuizSet
	QuestionCount int
}, error) {
	var results []struct {
		model.QuizSet
		QuestionCount int
	}
	err := r.db.Model(&model.QuizSet{}).
		Select("quiz_sets.*, (SELECT COUNT(*) FROM quiz_set_questions WHERE quiz_set_questions.quiz_set_id = quiz_sets.id) as question_count").
		Where("quiz_sets.status = ?", model.StatusPublished).
		Where("quiz_sets.deleted_at IS NULL").
		Order("quiz_sets.title ASC").
		Scan(&results).Error
	return results, err
}

// CountQuestions counts linked questions live; Start freezes this number into
// the attempt's total.
func (r *quizSetRepository) CountQuestions(quizSetID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizSetQuestion{}).
		Where("quiz_set_id = ?", quizSetID).
		Count(&count).Error
	return count, err
}
