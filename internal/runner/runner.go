// Package runner drives one question-at-a-time navigation through a quiz set
// on behalf of a presentation layer: it keeps the current index, the not yet
// flushed selection for the visible question, and a local mirror of the
// answers snapshot, calling the attempt engine on every forward move.
package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reeduca/simulado-api/internal/dto"
	"github.com/reeduca/simulado-api/internal/model"
	"github.com/reeduca/simulado-api/internal/service"
)

// Engine is the slice of the attempt engine the runner needs.
type Engine interface {
	RecordAnswer(attemptID, userID, questionID uuid.UUID, chosenLetter string) error
	Finalize(attemptID, userID uuid.UUID) error
}

// Runner is not safe for concurrent use; each session owns one.
type Runner struct {
	engine    Engine
	questions []dto.QuestionForAttemptDTO
	attemptID uuid.UUID
	userID    uuid.UUID

	// deadline is fixed at construction: resume time plus the remaining
	// limit. Zero means the set is untimed. The engine never enforces it.
	deadline time.Time

	index   int
	pending string
	mirror  model.AnswerSnapshot
}

// New builds a session over an already started (or resumed) attempt. The
// mirror seeds from the attempt's snapshot and the session lands on the first
// unanswered question, clamped to the last one.
func New(engine Engine, set *dto.QuizSetForAttemptDTO, attempt *dto.AttemptDTO, userID uuid.UUID, deadline time.Time) (*Runner, error) {
	if len(set.Questions) == 0 {
		return nil, fmt.Errorf("quiz set %q has no questions", set.Slug)
	}

	r := &Runner{
		engine:    engine,
		questions: set.Questions,
		attemptID: attempt.ID,
		userID:    userID,
		deadline:  deadline,
	}
	for _, entry := range attempt.AnswersSnapshot {
		r.mirror = r.mirror.Set(entry.QuestionID, entry.ChosenLetter)
	}

	r.index = len(attempt.AnswersSnapshot)
	if r.index > len(r.questions)-1 {
		r.index = len(r.questions) - 1
	}
	r.rehydrate()
	return r, nil
}

// Current returns the visible question.
func (r *Runner) Current() dto.QuestionForAttemptDTO {
	return r.questions[r.index]
}

func (r *Runner) Index() int { return r.index }

func (r *Runner) Total() int { return len(r.questions) }

func (r *Runner) IsFirst() bool { return r.index == 0 }

func (r *Runner) IsLast() bool { return r.index == len(r.questions)-1 }

// Pending returns the staged letter for the visible question.
func (r *Runner) Pending() string { return r.pending }

// Select stages a letter for the visible question without flushing it.
func (r *Runner) Select(letter string) {
	r.pending = letter
}

// Previous flushes the visible selection and moves back one question,
// re-hydrating the earlier choice from the local mirror rather than the store.
func (r *Runner) Previous() error {
	if err := r.flush(); err != nil {
		return err
	}
	if r.index > 0 {
		r.index--
		r.rehydrate()
	}
	return nil
}

// Next flushes the visible selection and advances.
func (r *Runner) Next() error {
	if err := r.flush(); err != nil {
		return err
	}
	if r.index < len(r.questions)-1 {
		r.index++
		r.rehydrate()
	}
	return nil
}

// Finish flushes the visible selection and finalizes the attempt.
func (r *Runner) Finish() error {
	if err := r.flush(); err != nil {
		return err
	}
	if err := r.engine.Finalize(r.attemptID, r.userID); err != nil {
		return fmt.Errorf("finalizing attempt: %w", err)
	}
	return nil
}

// FinishOnDeadline is the countdown-expiry path. It tolerates losing the race
// against a manual finish: the engine reports the second finalize as a
// not-found, which just means the attempt is already scored.
func (r *Runner) FinishOnDeadline() error {
	err := r.Finish()
	if errors.Is(err, service.ErrAttemptNotFound) {
		return nil
	}
	return err
}

// Remaining reports the countdown. ok is false for untimed sets.
func (r *Runner) Remaining(now time.Time) (time.Duration, bool) {
	if r.deadline.IsZero() {
		return 0, false
	}
	left := r.deadline.Sub(now)
	if left < 0 {
		left = 0
	}
	return left, true
}

// Expired reports whether the deadline has passed.
func (r *Runner) Expired(now time.Time) bool {
	return !r.deadline.IsZero() && !now.Before(r.deadline)
}

// flush writes the effective letter for the visible question into the mirror
// and records it with the engine. With nothing staged the letter falls back to
// the mirrored value, or to an empty skip.
func (r *Runner) flush() error {
	q := r.Current()
	letter := r.pending
	if letter == "" {
		if entry, ok := r.mirror.Get(q.ID); ok {
			letter = entry.ChosenLetter
		}
	}
	r.mirror = r.mirror.Set(q.ID, letter)
	if err := r.engine.RecordAnswer(r.attemptID, r.userID, q.ID, letter); err != nil {
		return fmt.Errorf("recording answer: %w", err)
	}
	return nil
}

func (r *Runner) rehydrate() {
	r.pending = ""
	if entry, ok := r.mirror.Get(r.Current().ID); ok {
		r.pending = entry.ChosenLetter
	}
}

// Deadline computes the value passed to New: zero for untimed sets, otherwise
// now plus the set's limit.
func Deadline(set *dto.QuizSetForAttemptDTO, now time.Time) time.Time {
	if set.TimeLimitMinutes == nil || *set.TimeLimitMinutes <= 0 {
		return time.Time{}
	}
	return now.Add(time.Duration(*set.TimeLimitMinutes) * time.Minute)
}
