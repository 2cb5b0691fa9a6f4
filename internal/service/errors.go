package service

import "errors"

// Missing attempt, wrong owner and already-finished all collapse into
// ErrAttemptNotFound so callers cannot probe whether an attempt id exists.
var (
	ErrAttemptNotFound = errors.New("attempt not found or already finished")
	ErrQuizSetNotFound = errors.New("quiz set not found")
	ErrEmptySet        = errors.New("quiz set has no questions")
)
