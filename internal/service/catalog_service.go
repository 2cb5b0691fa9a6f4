package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/reeduca/simulado-api/internal/dto"
	"github.com/reeduca/simulado-api/internal/model"
	"github.com/reeduca/simulado-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CatalogService is the read side of the assessment catalog: published sets
// for listing and the sanitized view handed out while an attempt is running.
type CatalogService interface {
	ListPublishedSets(userID uuid.UUID) ([]dto.QuizSetSummaryDTO, error)
	GetSetForAttempt(slug string) (*dto.QuizSetForAttemptDTO, error)
	ListUserAttempts(userID, quizSetID uuid.UUID) ([]dto.AttemptSummaryDTO, error)
}

type catalogService struct {
	quizSetRepo repository.QuizSetRepository
	attemptRepo repository.AttemptRepository
}

func NewCatalogService(quizSetRepo repository.QuizSetRepository, attemptRepo repository.AttemptRepository) CatalogService {
	return &catalogService{quizSetRepo: quizSetRepo, attemptRepo: attemptRepo}
}

// ListPublishedSets returns published sets ordered by title, each with its
// live question count and, when userID is set, that user's newest attempt.
func (s *catalogService) ListPublishedSets(userID uuid.UUID) ([]dto.QuizSetSummaryDTO, error) {
	setsWithCount, err := s.quizSetRepo.FindAllPublishedWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("ListPublishedSets: failed to fetch quiz sets")
		return nil, fmt.Errorf("fetching published quiz sets: %w", err)
	}

	lastBySet := map[uuid.UUID]dto.AttemptSummaryDTO{}
	if userID != uuid.Nil {
		attempts, err := s.attemptRepo.FindAllByUser(userID)
		if err != nil {
			log.Error().Err(err).Msg("ListPublishedSets: failed to fetch user attempts")
			return nil, fmt.Errorf("fetching user attempts: %w", err)
		}
		// Attempts arrive newest first; keep the first one seen per set.
		for _, attempt := range attempts {
			if _, seen := lastBySet[attempt.QuizSetID]; seen {
				continue
			}
			lastBySet[attempt.QuizSetID] = dto.AttemptSummaryDTO{
				ID:         attempt.ID,
				QuizSetID:  attempt.QuizSetID,
				Score:      attempt.Score,
				Total:      attempt.Total,
				StartedAt:  attempt.StartedAt,
				FinishedAt: attempt.FinishedAt,
			}
		}
	}

	summaries := make([]dto.QuizSetSummaryDTO, 0, len(setsWithCount))
	for _, swc := range setsWithCount {
		summary := dto.QuizSetSummaryDTO{
			ID:               swc.QuizSet.ID,
			Title:            swc.QuizSet.Title,
			Slug:             swc.QuizSet.Slug,
			Description:      swc.QuizSet.Description,
			TimeLimitMinutes: swc.QuizSet.TimeLimitMinutes,
			QuestionCount:    swc.QuestionCount,
			CreatedAt:        swc.QuizSet.CreatedAt,
		}
		if last, ok := lastBySet[swc.QuizSet.ID]; ok {
			lastCopy := last
			summary.LastAttempt = &lastCopy
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetSetForAttempt returns a published set by slug with questions in position
// order. Correct letters and explanations are stripped: they must not leak
// before the attempt is finished. Links to unpublished or missing questions
// are skipped.
func (s *catalogService) GetSetForAttempt(slug string) (*dto.QuizSetForAttemptDTO, error) {
	set, err := s.quizSetRepo.FindPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizSetNotFound
		}
		log.Error().Err(err).Str("slug", slug).Msg("GetSetForAttempt: failed to fetch quiz set")
		return nil, fmt.Errorf("fetching quiz set %q: %w", slug, err)
	}

	resp := dto.QuizSetForAttemptDTO{
		ID:               set.ID,
		Title:            set.Title,
		Slug:             set.Slug,
		TimeLimitMinutes: set.TimeLimitMinutes,
		Questions:        make([]dto.QuestionForAttemptDTO, 0, len(set.Questions)),
	}
	for _, link := range set.Questions {
		q := link.Question
		if q.ID == uuid.Nil || q.Status != model.StatusPublished {
			continue
		}
		options := make([]dto.OptionForAttemptDTO, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, dto.OptionForAttemptDTO{Letter: opt.Letter, Text: opt.Text})
		}
		resp.Questions = append(resp.Questions, dto.QuestionForAttemptDTO{
			ID:        q.ID,
			Statement: q.Statement,
			Options:   options,
			Position:  link.Position,
		})
	}
	return &resp, nil
}

// ListUserAttempts returns the user's attempt history for a set, newest first.
func (s *catalogService) ListUserAttempts(userID, quizSetID uuid.UUID) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUserAndQuizSet(userID, quizSetID)
	if err != nil {
		log.Error().Err(err).Str("quizSetID", quizSetID.String()).Msg("ListUserAttempts: failed to fetch attempts")
		return nil, fmt.Errorf("fetching attempts: %w", err)
	}

	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if err := copier.Copy(&summary, &attempt); err != nil {
			log.Error().Err(err).Str("attemptID", attempt.ID.String()).Msg("ListUserAttempts: failed to copy attempt summary")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
