package repository

import (
	"github.com/google/uuid"
	"github.com/reeduca/simulado-api/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	Save(attempt *model.Attempt) error
	FindLatestInProgress(userID, quizSetID uuid.UUID) (*model.Attempt, error)
	FindInProgressByIDAndUser(id, userID uuid.UUID) (*model.Attempt, error)
	FindFinishedByIDAndUser(id, userID uuid.UUID) (*model.Attempt, error)
	FindAllByUserAndQuizSet(userID, quizSetID uuid.UUID) ([]model.Attempt, error)
	FindAllByUser(userID uuid.UUID) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) Save(attempt *model.Attempt) error {
	return r.db.Save(attempt).Error
}

// FindLatestInProgress returns the most recently started unfinished attempt
// for the (user, set) pair. Several may exist; only the newest is resumable.
func (r *attemptRepository) FindLatestInProgress(userID, quizSetID uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Where("user_id = ? AND quiz_set_id = ? AND finished_at IS NULL", userID, quizSetID).
		Order("started_at DESC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindInProgressByIDAndUser(id, userID uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Where("id = ? AND user_id = ? AND finished_at IS NULL", id, userID).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindFinishedByIDAndUser(id, userID uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("QuizSet").
		Where("id = ? AND user_id = ? AND finished_at IS NOT NULL", id, userID).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByUserAndQuizSet(userID, quizSetID uuid.UUID) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Where("user_id = ? AND quiz_set_id = ?", userID, quizSetID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByUser(userID uuid.UUID) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}
