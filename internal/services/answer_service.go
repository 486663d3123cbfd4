// Package services – AnswerService
//
// This file implements AnswerService over the answers store adapter.
// Whether the referenced question exists is decided by the store's foreign
// key, never checked here; an unknown question surfaces as CodeBadRequest.
package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/qa-backend/internal/domain"
)

// AnswerStore defines the persistence contract required by AnswerService.
type AnswerStore interface {
	CreateAnswer(ctx context.Context, a domain.Answer) (domain.AnswerDetail, error)
	DeleteAnswer(ctx context.Context, answerID string) error
	ListAnswers(ctx context.Context, questionID string) ([]domain.AnswerDetail, error)
}

// AnswerService exposes answer use-cases to the HTTP layer.
type AnswerService struct {
	Store   AnswerStore
	Timeout time.Duration
}

// NewAnswerService constructs an AnswerService over store.
func NewAnswerService(store AnswerStore, timeout time.Duration) *AnswerService {
	return &AnswerService{Store: store, Timeout: timeout}
}

// Create stores a new answer under a.QuestionID.
func (s *AnswerService) Create(ctx context.Context, a domain.Answer) (domain.AnswerDetail, error) {
	ctx, span := otel.Tracer("services/AnswerService").Start(ctx, "Create",
		trace.WithAttributes(attribute.String("question.id", a.QuestionID)),
	)
	defer span.End()

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	a.Content = normalizeText(a.Content)

	d, err := s.Store.CreateAnswer(ctx, a)
	if err != nil {
		return domain.AnswerDetail{}, storeFailure(ctx, "create answer", err)
	}
	span.SetAttributes(attribute.String("answer.id", d.AnswerID))
	zerolog.Ctx(ctx).Debug().
		Str("answer_id", d.AnswerID).
		Str("question_id", d.QuestionID).
		Msg("answer created")
	return d, nil
}

// List returns the answers stored under questionID. Unknown questions yield
// an empty slice.
func (s *AnswerService) List(ctx context.Context, questionID string) ([]domain.AnswerDetail, error) {
	ctx, span := otel.Tracer("services/AnswerService").Start(ctx, "List",
		trace.WithAttributes(attribute.String("question.id", questionID)),
	)
	defer span.End()

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	out, err := s.Store.ListAnswers(ctx, questionID)
	if err != nil {
		return nil, storeFailure(ctx, "list answers", err)
	}
	span.SetAttributes(attribute.Int("answers.count", len(out)))
	return out, nil
}

// Delete removes the answer named by answerID.
func (s *AnswerService) Delete(ctx context.Context, answerID string) error {
	ctx, span := otel.Tracer("services/AnswerService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("answer.id", answerID)),
	)
	defer span.End()

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	if err := s.Store.DeleteAnswer(ctx, answerID); err != nil {
		return storeFailure(ctx, "delete answer", err)
	}
	return nil
}
