package service

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/reeduca/simulado-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeQuizSetRepo struct {
	setsBySlug map[string]*model.QuizSet
	counts     map[uuid.UUID]int64
	countErr   error
}

func newFakeQuizSetRepo() *fakeQuizSetRepo {
	return &fakeQuizSetRepo{
		setsBySlug: make(map[string]*model.QuizSet),
		counts:     make(map[uuid.UUID]int64),
	}
}

func (f *fakeQuizSetRepo) FindPublishedBySlug(slug string) (*model.QuizSet, error) {
	set, ok := f.setsBySlug[slug]
	if !ok || set.Status != model.StatusPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return set, nil
}

func (f *fakeQuizSetRepo) FindAllPublishedWithQuestionCount() ([]struct {
	model.QuizSet
	QuestionCount int
}, error) {
	var results []struct {
		model.QuizSet
		QuestionCount int
	}
	for _, set := range f.setsBySlug {
		if set.Status != model.StatusPublished {
			continue
		}
		results = append(results, struct {
			model.QuizSet
			QuestionCount int
		}{QuizSet: *set, QuestionCount: int(f.counts[set.ID])})
	}
	return results, nil
}

func (f *fakeQuizSetRepo) CountQuestions(quizSetID uuid.UUID) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[quizSetID], nil
}

type fakeQuestionRepo struct {
	questions map[uuid.UUID]model.Question
	err       error
	findCalls int
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uuid.UUID]model.Question)}
}

func (f *fakeQuestionRepo) FindByIDs(ids []uuid.UUID) ([]model.Question, error) {
	f.findCalls++
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Question
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeAttemptRepo struct {
	attempts  map[uuid.UUID]*model.Attempt
	createErr error
	saveErr   error
	saveCalls int
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: make(map[uuid.UUID]*model.Attempt)}
}

func cloneAttempt(a *model.Attempt) *model.Attempt {
	c := *a
	c.AnswersSnapshot = append(model.AnswerSnapshot(nil), a.AnswersSnapshot...)
	return &c
}

func (f *fakeAttemptRepo) Create(attempt *model.Attempt) error {
	if f.createErr != nil {
		return f.createErr
	}
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	f.attempts[attempt.ID] = cloneAttempt(attempt)
	return nil
}

func (f *fakeAttemptRepo) Save(attempt *model.Attempt) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.attempts[attempt.ID] = cloneAttempt(attempt)
	return nil
}

func (f *fakeAttemptRepo) FindLatestInProgress(userID, quizSetID uuid.UUID) (*model.Attempt, error) {
	var latest *model.Attempt
	for _, a := range f.attempts {
		if a.UserID != userID || a.QuizSetID != quizSetID || a.Finished() {
			continue
		}
		if latest == nil || a.StartedAt.After(latest.StartedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneAttempt(latest), nil
}

func (f *fakeAttemptRepo) FindInProgressByIDAndUser(id, userID uuid.UUID) (*model.Attempt, error) {
	a, ok := f.attempts[id]
	if !ok || a.UserID != userID || a.Finished() {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneAttempt(a), nil
}

func (f *fakeAttemptRepo) FindFinishedByIDAndUser(id, userID uuid.UUID) (*model.Attempt, error) {
	a, ok := f.attempts[id]
	if !ok || a.UserID != userID || !a.Finished() {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneAttempt(a), nil
}

func (f *fakeAttemptRepo) FindAllByUserAndQuizSet(userID, quizSetID uuid.UUID) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID && a.QuizSetID == quizSetID {
			out = append(out, *cloneAttempt(a))
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) FindAllByUser(userID uuid.UUID) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID {
			out = append(out, *cloneAttempt(a))
		}
	}
	// Match the real repository's ORDER BY started_at DESC contract.
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

func multipleChoice(correctLetter string) model.OptionList {
	opts := model.OptionList{}
	for _, letter := range []string{"A", "B", "C", "D"} {
		opts = append(opts, model.Option{Letter: letter, Text: "option " + letter, IsCorrect: letter == correctLetter})
	}
	return opts
}

type engineFixture struct {
	quizSetRepo  *fakeQuizSetRepo
	questionRepo *fakeQuestionRepo
	attemptRepo  *fakeAttemptRepo
	svc          AttemptService
	userID       uuid.UUID
	setID        uuid.UUID
}

func newEngineFixture(t *testing.T, questionCount int) *engineFixture {
	t.Helper()
	f := &engineFixture{
		quizSetRepo:  newFakeQuizSetRepo(),
		questionRepo: newFakeQuestionRepo(),
		attemptRepo:  newFakeAttemptRepo(),
		userID:       uuid.New(),
		setID:        uuid.New(),
	}
	f.quizSetRepo.counts[f.setID] = int64(questionCount)
	f.svc = NewAttemptService(f.quizSetRepo, f.questionRepo, f.attemptRepo)
	return f
}

func TestStartFreezesTotal(t *testing.T) {
	f := newEngineFixture(t, 5)

	attempt, err := f.svc.Start(f.userID, f.setID)
	require.NoError(t, err)
	assert.Equal(t, 5, attempt.Total)
	assert.Empty(t, attempt.AnswersSnapshot)

	// The count changing later must not move a frozen total.
	f.quizSetRepo.counts[f.setID] = 9
	stored := f.attemptRepo.attempts[attempt.ID]
	assert.Equal(t, 5, stored.Total)
	assert.False(t, stored.Finished())
}

func TestStartEmptySetFailsWithoutWrite(t *testing.T) {
	f := newEngineFixture(t, 0)

	_, err := f.svc.Start(f.userID, f.setID)
	require.ErrorIs(t, err, ErrEmptySet)
	assert.Empty(t, f.attemptRepo.attempts)
}

func TestRecordAnswerLastWriteWins(t *testing.T) {
	f := newEngineFixture(t, 2)
	attempt, err := f.svc.Start(f.userID, f.setID)
	require.NoError(t, err)

	q1, q2 := uuid.New(), uuid.New()
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q1, "A"))
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q2, "C"))
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q1, "B"))

	snapshot := f.attemptRepo.attempts[attempt.ID].AnswersSnapshot
	require.Len(t, snapshot, 2)
	assert.Equal(t, q1, snapshot[0].QuestionID, "re-answered question keeps its position")
	assert.Equal(t, "B", snapshot[0].ChosenLetter)
	assert.Equal(t, "C", snapshot[1].ChosenLetter)
	assert.Nil(t, snapshot[0].Correct, "correctness must not be computed before finalize")
}

func TestRecordAnswerAcceptsSkipAndUnknownAttempt(t *testing.T) {
	f := newEngineFixture(t, 1)
	attempt, err := f.svc.Start(f.userID, f.setID)
	require.NoError(t, err)

	q1 := uuid.New()
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q1, ""), "empty letter is a legal skip")

	err = f.svc.RecordAnswer(uuid.New(), f.userID, q1, "A")
	assert.ErrorIs(t, err, ErrAttemptNotFound)

	// Wrong owner collapses into the same error.
	err = f.svc.RecordAnswer(attempt.ID, uuid.New(), q1, "A")
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestFinalizeScoresAgainstCatalog(t *testing.T) {
	f := newEngineFixture(t, 2)
	q1, q2 := uuid.New(), uuid.New()
	f.questionRepo.questions[q1] = model.Question{ID: q1, Options: multipleChoice("B")}
	f.questionRepo.questions[q2] = model.Question{ID: q2, Options: multipleChoice("A")}

	attempt, err := f.svc.Start(f.userID, f.setID)
	require.NoError(t, err)
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q1, "B"))
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q2, "C"))

	require.NoError(t, f.svc.Finalize(attempt.ID, f.userID))

	stored := f.attemptRepo.attempts[attempt.ID]
	require.True(t, stored.Finished())
	assert.Equal(t, 1, stored.Score)
	assert.Equal(t, 1, f.questionRepo.findCalls, "options are fetched in one batch")

	require.Len(t, stored.AnswersSnapshot, 2)
	require.NotNil(t, stored.AnswersSnapshot[0].Correct)
	require.NotNil(t, stored.AnswersSnapshot[1].Correct)
	assert.True(t, *stored.AnswersSnapshot[0].Correct)
	assert.False(t, *stored.AnswersSnapshot[1].Correct)

	correctCount := 0
	for _, entry := range stored.AnswersSnapshot {
		if entry.Correct != nil && *entry.Correct {
			correctCount++
		}
	}
	assert.Equal(t, stored.Score, correctCount)
	assert.GreaterOrEqual(t, stored.Score, 0)
	assert.LessOrEqual(t, stored.Score, stored.Total)
}

func TestFinalizeTwiceIsRejected(t *testing.T) {
	f := newEngineFixture(t, 1)
	q1 := uuid.New()
	f.questionRepo.questions[q1] = model.Question{ID: q1, Options: multipleChoice("A")}

	attempt, err := f.svc.Start(f.userID, f.setID)
	require.NoError(t, err)
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q1, "A"))
	require.NoError(t, f.svc.Finalize(attempt.ID, f.userID))

	before := cloneAttempt(f.attemptRepo.attempts[attempt.ID])

	err = f.svc.Finalize(attempt.ID, f.userID)
	require.ErrorIs(t, err, ErrAttemptNotFound)

	after := f.attemptRepo.attempts[attempt.ID]
	assert.Equal(t, before.Score, after.Score)
	assert.Equal(t, before.FinishedAt, after.FinishedAt)
	assert.Equal(t, before.AnswersSnapshot, after.AnswersSnapshot)
}

func TestFinalizeWithoutAnswers(t *testing.T) {
	f := newEngineFixture(t, 3)
	attempt, err := f.svc.Start(f.userID, f.setID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Finalize(attempt.ID, f.userID))

	stored := f.attemptRepo.attempts[attempt.ID]
	assert.Equal(t, 0, stored.Score)
	assert.True(t, stored.Finished())
	assert.Empty(t, stored.AnswersSnapshot)
	assert.Equal(t, 0, f.questionRepo.findCalls, "no catalog fetch for an empty snapshot")
}

func TestFinalizeWithDeletedQuestion(t *testing.T) {
	f := newEngineFixture(t, 2)
	q1, gone := uuid.New(), uuid.New()
	f.questionRepo.questions[q1] = model.Question{ID: q1, Options: multipleChoice("A")}

	attempt, err := f.svc.Start(f.userID, f.setID)
	require.NoError(t, err)
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q1, "A"))
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, gone, "A"))

	require.NoError(t, f.svc.Finalize(attempt.ID, f.userID))

	stored := f.attemptRepo.attempts[attempt.ID]
	assert.Equal(t, 1, stored.Score)
	assert.Equal(t, 2, stored.Total, "total stays frozen")
	entry, ok := stored.AnswersSnapshot.Get(gone)
	require.True(t, ok)
	require.NotNil(t, entry.Correct)
	assert.False(t, *entry.Correct)
}

func TestFinalizeFailsWhenCatalogUnavailable(t *testing.T) {
	f := newEngineFixture(t, 1)
	attempt, err := f.svc.Start(f.userID, f.setID)
	require.NoError(t, err)
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, uuid.New(), "A"))

	f.questionRepo.err = errors.New("connection refused")
	err = f.svc.Finalize(attempt.ID, f.userID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAttemptNotFound)
	assert.False(t, f.attemptRepo.attempts[attempt.ID].Finished(), "a store failure must not half-finish the attempt")
}

func TestResumePicksMostRecentInProgress(t *testing.T) {
	f := newEngineFixture(t, 1)

	older := &model.Attempt{ID: uuid.New(), UserID: f.userID, QuizSetID: f.setID, Total: 1, StartedAt: time.Now().Add(-time.Hour)}
	newer := &model.Attempt{ID: uuid.New(), UserID: f.userID, QuizSetID: f.setID, Total: 1, StartedAt: time.Now()}
	require.NoError(t, f.attemptRepo.Create(older))
	require.NoError(t, f.attemptRepo.Create(newer))

	resumed, err := f.svc.Resume(f.userID, f.setID)
	require.NoError(t, err)
	require.NotNil(t, resumed)
	assert.Equal(t, newer.ID, resumed.ID)
}

func TestResumeReturnsNilWithoutAttempt(t *testing.T) {
	f := newEngineFixture(t, 1)

	resumed, err := f.svc.Resume(f.userID, f.setID)
	require.NoError(t, err)
	assert.Nil(t, resumed)
}

func TestGetResultRequiresFinishedAttempt(t *testing.T) {
	f := newEngineFixture(t, 1)
	attempt, err := f.svc.Start(f.userID, f.setID)
	require.NoError(t, err)

	_, err = f.svc.GetResult(attempt.ID, f.userID)
	assert.ErrorIs(t, err, ErrAttemptNotFound)

	require.NoError(t, f.svc.Finalize(attempt.ID, f.userID))

	_, err = f.svc.GetResult(attempt.ID, uuid.New())
	assert.ErrorIs(t, err, ErrAttemptNotFound, "foreign owner must not see the result")
}

func TestGetResultOrdersQuestionsBySnapshot(t *testing.T) {
	f := newEngineFixture(t, 3)
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	f.questionRepo.questions[q1] = model.Question{ID: q1, Statement: "first", Options: multipleChoice("A"), Explanation: "because A"}
	f.questionRepo.questions[q2] = model.Question{ID: q2, Statement: "second", Options: multipleChoice("B"), Explanation: "because B"}
	f.questionRepo.questions[q3] = model.Question{ID: q3, Statement: "third", Options: multipleChoice("C"), Explanation: "because C"}

	attempt, err := f.svc.Start(f.userID, f.setID)
	require.NoError(t, err)
	// Answered out of catalog order: q3 first.
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q3, "C"))
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q1, "B"))
	require.NoError(t, f.svc.RecordAnswer(attempt.ID, f.userID, q2, "B"))
	require.NoError(t, f.svc.Finalize(attempt.ID, f.userID))

	result, err := f.svc.GetResult(attempt.ID, f.userID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Questions, 3)
	assert.Equal(t, []uuid.UUID{q3, q1, q2}, []uuid.UUID{result.Questions[0].ID, result.Questions[1].ID, result.Questions[2].ID})
	assert.Equal(t, "because C", result.Questions[0].Explanation)

	// The review view is the one place correctness is revealed.
	foundCorrect := false
	for _, opt := range result.Questions[0].Options {
		if opt.IsCorrect {
			foundCorrect = true
			assert.Equal(t, "C", opt.Letter)
		}
	}
	assert.True(t, foundCorrect)
}
