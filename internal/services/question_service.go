// Package services – QuestionService
//
// This file implements QuestionService, a thin layer over the questions
// store adapter. It normalizes submitted text, bounds each store call with
// the configured timeout, and converts storage errors into *Error so that
// handlers can map them to HTTP results consistently.
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

// QuestionStore defines the persistence contract required by QuestionService.
// repo.QuestionsRepo and repo.MemoryStore both satisfy it.
type QuestionStore interface {
	// CreateQuestion inserts a question; the store assigns id and created_at.
	CreateQuestion(ctx context.Context, q domain.Question) (domain.QuestionDetail, error)
	// DeleteQuestion removes a question; unknown ids succeed.
	DeleteQuestion(ctx context.Context, questionID string) error
	// ListQuestions returns all stored questions.
	ListQuestions(ctx context.Context) ([]domain.QuestionDetail, error)
}

// QuestionService exposes question use-cases to the HTTP layer.
type QuestionService struct {
	Store QuestionStore
	// Timeout bounds a single store call, including the wait for a pooled
	// connection. Zero means no bound.
	Timeout time.Duration
}

// NewQuestionService constructs a QuestionService over store.
func NewQuestionService(store QuestionStore, timeout time.Duration) *QuestionService {
	return &QuestionService{Store: store, Timeout: timeout}
}

// Create stores a new question.
func (s *QuestionService) Create(ctx context.Context, q domain.Question) (domain.QuestionDetail, error) {
	ctx, span := otel.Tracer("services/QuestionService").Start(ctx, "Create")
	defer span.End()

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	q.Title = normalizeText(q.Title)
	q.Description = normalizeText(q.Description)

	d, err := s.Store.CreateQuestion(ctx, q)
	if err != nil {
		return domain.QuestionDetail{}, storeFailure(ctx, "create question", err)
	}
	span.SetAttributes(attribute.String("question.id", d.QuestionID))
	zerolog.Ctx(ctx).Debug().Str("question_id", d.QuestionID).Msg("question created")
	return d, nil
}

// List returns every question.
func (s *QuestionService) List(ctx context.Context) ([]domain.QuestionDetail, error) {
	ctx, span := otel.Tracer("services/QuestionService").Start(ctx, "List")
	defer span.End()

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	out, err := s.Store.ListQuestions(ctx)
	if err != nil {
		return nil, storeFailure(ctx, "list questions", err)
	}
	span.SetAttributes(attribute.Int("questions.count", len(out)))
	return out, nil
}

// Delete removes the question named by questionID.
func (s *QuestionService) Delete(ctx context.Context, questionID string) error {
	ctx, span := otel.Tracer("services/QuestionService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("question.id", questionID)),
	)
	defer span.End()

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	if err := s.Store.DeleteQuestion(ctx, questionID); err != nil {
		return storeFailure(ctx, "delete question", err)
	}
	return nil
}
