package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/reeduca/simulado-api/internal/dto"
	"github.com/reeduca/simulado-api/internal/model"
	"github.com/reeduca/simulado-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService owns the attempt state machine: NotStarted -> InProgress ->
// Finished. Finished is terminal; finished attempts are read-only.
type AttemptService interface {
	Resume(userID, quizSetID uuid.UUID) (*dto.AttemptDTO, error)
	Start(userID, quizSetID uuid.UUID) (*dto.AttemptDTO, error)
	RecordAnswer(attemptID, userID, questionID uuid.UUID, chosenLetter string) error
	Finalize(attemptID, userID uuid.UUID) error
	GetResult(attemptID, userID uuid.UUID) (*dto.AttemptResultDTO, error)
}

type attemptService struct {
	quizSetRepo  repository.QuizSetRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
}

func NewAttemptService(
	quizSetRepo repository.QuizSetRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
) AttemptService {
	return &attemptService{
		quizSetRepo:  quizSetRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
	}
}

// Resume returns the most recently started in-progress attempt for the
// (user, set) pair, or nil when there is none. Read-only.
func (s *attemptService) Resume(userID, quizSetID uuid.UUID) (*dto.AttemptDTO, error) {
	attempt, err := s.attemptRepo.FindLatestInProgress(userID, quizSetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Error().Err(err).Str("quizSetID", quizSetID.String()).Msg("Resume: failed to query in-progress attempt")
		return nil, fmt.Errorf("fetching in-progress attempt: %w", err)
	}
	return attemptToDTO(attempt)
}

// Start creates a fresh attempt with the question count frozen as total. It
// never blocks on existing in-progress attempts; a retake is always allowed.
func (s *attemptService) Start(userID, quizSetID uuid.UUID) (*dto.AttemptDTO, error) {
	count, err := s.quizSetRepo.CountQuestions(quizSetID)
	if err != nil {
		log.Error().Err(err).Str("quizSetID", quizSetID.String()).Msg("Start: failed to count questions")
		return nil, fmt.Errorf("counting quiz set questions: %w", err)
	}
	if count == 0 {
		return nil, ErrEmptySet
	}

	attempt := model.Attempt{
		UserID:          userID,
		QuizSetID:       quizSetID,
		Total:           int(count),
		StartedAt:       time.Now(),
		AnswersSnapshot: model.AnswerSnapshot{},
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Str("quizSetID", quizSetID.String()).Msg("Start: failed to create attempt")
		return nil, fmt.Errorf("creating attempt: %w", err)
	}

	log.Info().Str("attemptID", attempt.ID.String()).Int("total", attempt.Total).Msg("Attempt started")
	return attemptToDTO(&attempt)
}

// RecordAnswer upserts the snapshot entry for a question, last write wins. The
// letter is accepted as-is: unknown letters score as incorrect at finalize
// time and an empty letter is a legal skip.
func (s *attemptService) RecordAnswer(attemptID, userID, questionID uuid.UUID, chosenLetter string) error {
	attempt, err := s.findInProgress(attemptID, userID)
	if err != nil {
		return err
	}

	attempt.AnswersSnapshot = attempt.AnswersSnapshot.Set(questionID, chosenLetter)
	if err := s.attemptRepo.Save(attempt); err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("RecordAnswer: failed to persist snapshot")
		return fmt.Errorf("saving answer snapshot: %w", err)
	}
	return nil
}

// Finalize scores the attempt against the catalog's options and marks it
// finished, exactly once. A second call finds no in-progress attempt and
// returns ErrAttemptNotFound, which protects against the deadline timer and a
// manual finish racing each other.
func (s *attemptService) Finalize(attemptID, userID uuid.UUID) error {
	attempt, err := s.findInProgress(attemptID, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	if len(attempt.AnswersSnapshot) == 0 {
		attempt.Score = 0
		attempt.FinishedAt = &now
		if err := s.attemptRepo.Save(attempt); err != nil {
			return fmt.Errorf("finalizing empty attempt: %w", err)
		}
		log.Info().Str("attemptID", attemptID.String()).Msg("Attempt finalized with no answers")
		return nil
	}

	questions, err := s.questionRepo.FindByIDs(attempt.AnswersSnapshot.QuestionIDs())
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("Finalize: failed to fetch questions for scoring")
		return fmt.Errorf("fetching questions for scoring: %w", err)
	}

	correctByQuestion := make(map[uuid.UUID]string, len(questions))
	for _, q := range questions {
		if letter, ok := q.Options.CorrectLetter(); ok {
			correctByQuestion[q.ID] = letter
		}
	}

	// Entries whose question no longer resolves score as not-correct; total
	// stays frozen.
	score := 0
	for i := range attempt.AnswersSnapshot {
		entry := &attempt.AnswersSnapshot[i]
		correctLetter, ok := correctByQuestion[entry.QuestionID]
		correct := ok && entry.ChosenLetter == correctLetter
		entry.Correct = &correct
		if correct {
			score++
		}
	}

	attempt.Score = score
	attempt.FinishedAt = &now
	if err := s.attemptRepo.Save(attempt); err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("Finalize: failed to persist scored attempt")
		return fmt.Errorf("finalizing attempt: %w", err)
	}

	log.Info().Str("attemptID", attemptID.String()).Int("score", score).Int("total", attempt.Total).Msg("Attempt finalized")
	return nil
}

// GetResult returns the reviewable report of a finished attempt, with the full
// questions (correctness and explanations included) in snapshot order.
func (s *attemptService) GetResult(attemptID, userID uuid.UUID) (*dto.AttemptResultDTO, error) {
	attempt, err := s.attemptRepo.FindFinishedByIDAndUser(attemptID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("GetResult: failed to load attempt")
		return nil, fmt.Errorf("fetching finished attempt: %w", err)
	}

	resp := dto.AttemptResultDTO{
		ID:         attempt.ID,
		QuizSetID:  attempt.QuizSetID,
		SetTitle:   attempt.QuizSet.Title,
		SetSlug:    attempt.QuizSet.Slug,
		Score:      attempt.Score,
		Total:      attempt.Total,
		StartedAt:  attempt.StartedAt,
		FinishedAt: *attempt.FinishedAt,
	}
	if err := copier.Copy(&resp.Answers, &attempt.AnswersSnapshot); err != nil {
		return nil, fmt.Errorf("preparing result answers: %w", err)
	}

	if len(attempt.AnswersSnapshot) == 0 {
		resp.Questions = []dto.QuestionForReviewDTO{}
		return &resp, nil
	}

	questions, err := s.questionRepo.FindByIDs(attempt.AnswersSnapshot.QuestionIDs())
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("GetResult: failed to fetch questions for review")
		return nil, fmt.Errorf("fetching questions for review: %w", err)
	}

	byID := make(map[uuid.UUID]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	resp.Questions = make([]dto.QuestionForReviewDTO, 0, len(attempt.AnswersSnapshot))
	for _, entry := range attempt.AnswersSnapshot {
		q, ok := byID[entry.QuestionID]
		if !ok {
			continue
		}
		var qDTO dto.QuestionForReviewDTO
		if err := copier.Copy(&qDTO, &q); err != nil {
			return nil, fmt.Errorf("preparing review question: %w", err)
		}
		resp.Questions = append(resp.Questions, qDTO)
	}

	return &resp, nil
}

// findInProgress is the shared guard for mutations: missing row, wrong owner
// and already-finished are indistinguishable to the caller.
func (s *attemptService) findInProgress(attemptID, userID uuid.UUID) (*model.Attempt, error) {
	attempt, err := s.attemptRepo.FindInProgressByIDAndUser(attemptID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("Failed to load in-progress attempt")
		return nil, fmt.Errorf("fetching in-progress attempt: %w", err)
	}
	return attempt, nil
}

func attemptToDTO(attempt *model.Attempt) (*dto.AttemptDTO, error) {
	var resp dto.AttemptDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		return nil, fmt.Errorf("preparing attempt response: %w", err)
	}
	if resp.AnswersSnapshot == nil {
		resp.AnswersSnapshot = []dto.AnswerEntryDTO{}
	}
	return &resp, nil
}
