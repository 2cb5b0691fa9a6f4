package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reeduca/simulado-api/internal/dto"
	"github.com/reeduca/simulado-api/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	catalogService service.CatalogService
	attemptService service.AttemptService
}

func NewQuizController(catalogService service.CatalogService, attemptService service.AttemptService) *QuizController {
	return &QuizController{
		catalogService: catalogService,
		attemptService: attemptService,
	}
}

// ListQuizSets godoc
// @Summary List published quiz sets
// @Description Published sets ordered by title with question counts. With 'user_id', each set carries that user's most recent attempt summary.
// @Tags Quiz Sets
// @Produce json
// @Param user_id query string false "User ID (UUID) for last-attempt badges"
// @Success 200 {array} dto.QuizSetSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz-sets [get]
func (c *QuizController) ListQuizSets(ctx *gin.Context) {
	userID := uuid.Nil
	if raw := ctx.Query("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format"})
			return
		}
		userID = parsed
	}

	sets, err := c.catalogService.ListPublishedSets(userID)
	if err != nil {
		log.Error().Err(err).Msg("ListQuizSets: service error")
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sets)
}

// GetQuizSet godoc
// @Summary Get a published quiz set for taking
// @Description Questions in position order with options only; correct letters and explanations are withheld until the attempt is finished.
// @Tags Quiz Sets
// @Produce json
// @Param slug path string true "Quiz set slug"
// @Success 200 {object} dto.QuizSetForAttemptDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz set not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz-sets/{slug} [get]
func (c *QuizController) GetQuizSet(ctx *gin.Context) {
	set, err := c.catalogService.GetSetForAttempt(ctx.Param("slug"))
	if err != nil {
		log.Warn().Err(err).Str("slug", ctx.Param("slug")).Msg("GetQuizSet: service error")
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, set)
}

// ResumeAttempt godoc
// @Summary Resume an in-progress attempt
// @Description Returns the most recently started unfinished attempt for this user and set, or 204 when there is none.
// @Tags Attempts
// @Produce json
// @Param slug path string true "Quiz set slug"
// @Param user_id query string true "User ID (UUID)"
// @Success 200 {object} dto.AttemptDTO
// @Success 204 "No attempt in progress"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz set not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz-sets/{slug}/resume [get]
func (c *QuizController) ResumeAttempt(ctx *gin.Context) {
	userID, ok := c.requireUserID(ctx)
	if !ok {
		return
	}
	set, err := c.catalogService.GetSetForAttempt(ctx.Param("slug"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	attempt, err := c.attemptService.Resume(userID, set.ID)
	if err != nil {
		log.Error().Err(err).Str("slug", set.Slug).Msg("ResumeAttempt: service error")
		c.respondError(ctx, err)
		return
	}
	if attempt == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// StartAttempt godoc
// @Summary Start a new attempt
// @Description Creates a fresh attempt with the current question count frozen as total. Existing in-progress attempts are not blocking: a retake is always allowed.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param slug path string true "Quiz set slug"
// @Param request body dto.StartAttemptRequest true "User starting the attempt"
// @Success 201 {object} dto.AttemptDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz set not found"
// @Failure 422 {object} dto.ErrorResponse "Quiz set has no questions"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz-sets/{slug}/attempts [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	var req dto.StartAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	set, err := c.catalogService.GetSetForAttempt(ctx.Param("slug"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	attempt, err := c.attemptService.Start(req.UserID, set.ID)
	if err != nil {
		log.Warn().Err(err).Str("slug", set.Slug).Msg("StartAttempt: service error")
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// RecordAnswer godoc
// @Summary Record an answer
// @Description Replace-or-append the answer for one question, last write wins. An empty chosen_letter is a legal skip; letters are not validated against the options.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt_id path string true "Attempt ID (UUID)"
// @Param request body dto.RecordAnswerRequest true "Answer payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or already finished"
// @Failure 500 {object} dto.ErrorResponse
// @Router /attempts/{attempt_id}/answers [put]
func (c *QuizController) RecordAnswer(ctx *gin.Context) {
	attemptID, ok := c.parseAttemptID(ctx)
	if !ok {
		return
	}
	var req dto.RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.attemptService.RecordAnswer(attemptID, req.UserID, req.QuestionID, req.ChosenLetter); err != nil {
		log.Warn().Err(err).Str("attemptID", attemptID.String()).Msg("RecordAnswer: service error")
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// FinishAttempt godoc
// @Summary Finalize an attempt
// @Description Scores the snapshot against the catalog and marks the attempt finished, exactly once. A repeated call returns 404; clients racing the deadline timer should treat that as already-finished, not as a failure.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt_id path string true "Attempt ID (UUID)"
// @Param request body dto.FinishAttemptRequest true "User finishing the attempt"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or already finished"
// @Failure 500 {object} dto.ErrorResponse
// @Router /attempts/{attempt_id}/finish [post]
func (c *QuizController) FinishAttempt(ctx *gin.Context) {
	attemptID, ok := c.parseAttemptID(ctx)
	if !ok {
		return
	}
	var req dto.FinishAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.attemptService.Finalize(attemptID, req.UserID); err != nil {
		log.Warn().Err(err).Str("attemptID", attemptID.String()).Msg("FinishAttempt: service error")
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "finished"})
}

// GetAttemptResult godoc
// @Summary Get the result of a finished attempt
// @Description Score, total and the reviewed questions (correct letters and explanations included) in the order they were answered. In-progress attempts are not viewable as results.
// @Tags Attempts
// @Produce json
// @Param attempt_id path string true "Attempt ID (UUID)"
// @Param user_id query string true "User ID (UUID)"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or not finished"
// @Failure 500 {object} dto.ErrorResponse
// @Router /attempts/{attempt_id}/result [get]
func (c *QuizController) GetAttemptResult(ctx *gin.Context) {
	attemptID, ok := c.parseAttemptID(ctx)
	if !ok {
		return
	}
	userID, ok := c.requireUserID(ctx)
	if !ok {
		return
	}

	result, err := c.attemptService.GetResult(attemptID, userID)
	if err != nil {
		log.Warn().Err(err).Str("attemptID", attemptID.String()).Msg("GetAttemptResult: service error")
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMyAttempts godoc
// @Summary List the user's attempts for a set
// @Description Attempt summaries for this user and quiz set, newest first.
// @Tags Attempts
// @Produce json
// @Param slug path string true "Quiz set slug"
// @Param user_id query string true "User ID (UUID)"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz set not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz-sets/{slug}/my-attempts [get]
func (c *QuizController) GetMyAttempts(ctx *gin.Context) {
	userID, ok := c.requireUserID(ctx)
	if !ok {
		return
	}
	set, err := c.catalogService.GetSetForAttempt(ctx.Param("slug"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	attempts, err := c.catalogService.ListUserAttempts(userID, set.ID)
	if err != nil {
		log.Error().Err(err).Str("slug", set.Slug).Msg("GetMyAttempts: service error")
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

func (c *QuizController) parseAttemptID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("attempt_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func (c *QuizController) requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Query("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid or missing User ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (c *QuizController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttemptNotFound), errors.Is(err, service.ErrQuizSetNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrEmptySet):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
