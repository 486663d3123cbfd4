package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/qa-backend/internal/domain"
	"github.com/tbourn/qa-backend/internal/repo"
)

// ----- Fake store -----

type fakeStore struct {
	gotQuestion domain.Question
	gotAnswer   domain.Answer
	gotID       string
	deadline    bool

	err error
}

func (f *fakeStore) record(ctx context.Context) {
	_, f.deadline = ctx.Deadline()
}

func (f *fakeStore) CreateQuestion(ctx context.Context, q domain.Question) (domain.QuestionDetail, error) {
	f.record(ctx)
	f.gotQuestion = q
	if f.err != nil {
		return domain.QuestionDetail{}, f.err
	}
	return domain.QuestionDetail{QuestionID: "q1", Title: q.Title, Description: q.Description}, nil
}

func (f *fakeStore) DeleteQuestion(ctx context.Context, id string) error {
	f.record(ctx)
	f.gotID = id
	return f.err
}

func (f *fakeStore) ListQuestions(ctx context.Context) ([]domain.QuestionDetail, error) {
	f.record(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return []domain.QuestionDetail{{QuestionID: "q1"}, {QuestionID: "q2"}}, nil
}

func (f *fakeStore) CreateAnswer(ctx context.Context, a domain.Answer) (domain.AnswerDetail, error) {
	f.record(ctx)
	f.gotAnswer = a
	if f.err != nil {
		return domain.AnswerDetail{}, f.err
	}
	return domain.AnswerDetail{AnswerID: "a1", QuestionID: a.QuestionID, Content: a.Content}, nil
}

func (f *fakeStore) DeleteAnswer(ctx context.Context, id string) error {
	f.record(ctx)
	f.gotID = id
	return f.err
}

func (f *fakeStore) ListAnswers(ctx context.Context, id string) ([]domain.AnswerDetail, error) {
	f.record(ctx)
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return []domain.AnswerDetail{}, nil
}

// ----- Tests -----

func TestFromStore(t *testing.T) {
	assert.NoError(t, FromStore(nil))

	inv := &repo.Error{Kind: repo.KindInvalidIdentifier, Detail: "invalid UUID length: 10"}
	err := FromStore(inv)
	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, CodeBadRequest, be.Code)
	assert.Equal(t, "invalid UUID length: 10", be.Message)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.ErrorIs(t, err, repo.ErrInvalidIdentifier)

	oth := &repo.Error{Kind: repo.KindOther, Detail: "connection refused"}
	err = FromStore(oth)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, CodeInternal, be.Code)
	assert.Equal(t, "connection refused", be.Message)
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrBadRequest)

	err = FromStore(errors.New("unclassified"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "unclassified", err.Error())
}

func TestQuestionService_NormalizesAndForwards(t *testing.T) {
	f := &fakeStore{}
	s := NewQuestionService(f, 0)

	// "e" + combining acute accent -> precomposed "é"
	d, err := s.Create(context.Background(), domain.Question{Title: "Cafe\u0301", Description: "plain"})
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", f.gotQuestion.Title)
	assert.Equal(t, "plain", f.gotQuestion.Description)
	assert.Equal(t, "q1", d.QuestionID)
	assert.False(t, f.deadline, "no timeout configured")

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, s.Delete(context.Background(), "some-id"))
	assert.Equal(t, "some-id", f.gotID)
}

func TestQuestionService_TimeoutApplied(t *testing.T) {
	f := &fakeStore{}
	s := NewQuestionService(f, time.Second)
	_, err := s.List(context.Background())
	require.NoError(t, err)
	assert.True(t, f.deadline)
}

func TestQuestionService_MapsErrors(t *testing.T) {
	f := &fakeStore{err: &repo.Error{Kind: repo.KindOther, Detail: "boom"}}
	s := NewQuestionService(f, 0)

	_, err := s.Create(context.Background(), domain.Question{})
	assert.ErrorIs(t, err, ErrInternal)
	_, err = s.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)

	f.err = &repo.Error{Kind: repo.KindInvalidIdentifier, Detail: "bad"}
	err = s.Delete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "bad", err.Error())
}

func TestAnswerService_NormalizesAndForwards(t *testing.T) {
	f := &fakeStore{}
	s := NewAnswerService(f, 2*time.Second)

	d, err := s.Create(context.Background(), domain.Answer{QuestionID: "q9", Content: "n\u0303"})
	require.NoError(t, err)
	assert.Equal(t, "\u00f1", f.gotAnswer.Content)
	assert.Equal(t, "q9", d.QuestionID)
	assert.True(t, f.deadline)

	list, err := s.List(context.Background(), "q9")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Equal(t, "q9", f.gotID)

	require.NoError(t, s.Delete(context.Background(), "a1"))
	assert.Equal(t, "a1", f.gotID)
}

// End to end over the in-memory store: the four error-relevant properties.
func TestServices_OverMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore()
	qs := NewQuestionService(store, 0)
	as := NewAnswerService(store, 0)

	err := qs.Delete(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = as.Create(ctx, domain.Answer{QuestionID: uuid.NewString(), Content: "x"})
	assert.ErrorIs(t, err, ErrBadRequest)

	q, err := qs.Create(ctx, domain.Question{Title: "T", Description: "D"})
	require.NoError(t, err)
	require.NoError(t, qs.Delete(ctx, q.QuestionID))
	require.NoError(t, qs.Delete(ctx, q.QuestionID))

	_, err = as.List(ctx, "nope")
	assert.ErrorIs(t, err, ErrBadRequest)
}
