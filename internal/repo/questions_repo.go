// Package repo implements the data persistence layer for questions and
// answers. This file provides the SQL-backed questions adapter.
//
// The adapter is thin: it parses identifiers, issues exactly one statement
// per call, and classifies failures into *Error. Identifiers and creation
// timestamps come from column defaults and are read back with RETURNING, so
// the store stays the single source of truth for both.
//
// Methods:
//
//   - CreateQuestion(ctx, q) -> domain.QuestionDetail, error
//     Inserts a row. Failures are always KindOther.
//
//   - DeleteQuestion(ctx, id) -> error
//     Parses id first (KindInvalidIdentifier on failure). Deleting a
//     missing row succeeds. Every execution failure is KindOther, including
//     the foreign key refusal for a question that still has answers.
//
//   - ListQuestions(ctx) -> []domain.QuestionDetail, error
//     Every row, in whatever order the store returns them.
package repo

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/tbourn/qa-backend/internal/domain"
)

const (
	opCreateQuestion = "question.create"
	opDeleteQuestion = "question.delete"
	opListQuestions  = "question.list"
)

// QuestionsRepo is the SQL questions adapter. The zero value is unusable;
// DB must be set. It is safe for concurrent use.
type QuestionsRepo struct {
	DB *gorm.DB
}

// NewQuestionsRepo returns a questions adapter bound to the pool db.
func NewQuestionsRepo(db *gorm.DB) *QuestionsRepo {
	return &QuestionsRepo{DB: db}
}

// CreateQuestion inserts q and returns the stored record.
func (r *QuestionsRepo) CreateQuestion(ctx context.Context, q domain.Question) (domain.QuestionDetail, error) {
	var row questionRow
	err := returning(r.DB.WithContext(ctx).Raw(
		`INSERT INTO questions (title, description) VALUES (?, ?)
		 RETURNING question_id, title, description, created_at`,
		q.Title, q.Description,
	).Scan(&row))
	if err != nil {
		return domain.QuestionDetail{}, observe(opCreateQuestion, other(err))
	}
	observe(opCreateQuestion, nil)
	return row.detail(), nil
}

// DeleteQuestion removes the question named by questionID.
func (r *QuestionsRepo) DeleteQuestion(ctx context.Context, questionID string) error {
	id, err := parseID(questionID)
	if err != nil {
		return observe(opDeleteQuestion, err)
	}
	if err := r.DB.WithContext(ctx).Exec(`DELETE FROM questions WHERE question_id = ?`, id.String()).Error; err != nil {
		return observe(opDeleteQuestion, other(err))
	}
	return observe(opDeleteQuestion, nil)
}

// ListQuestions returns every stored question. The result is never nil.
func (r *QuestionsRepo) ListQuestions(ctx context.Context) ([]domain.QuestionDetail, error) {
	var rows []questionRow
	if err := r.DB.WithContext(ctx).
		Raw(`SELECT question_id, title, description, created_at FROM questions`).
		Scan(&rows).Error; err != nil {
		return nil, observe(opListQuestions, other(err))
	}

	out := make([]domain.QuestionDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.detail())
	}
	observe(opListQuestions, nil)
	return out, nil
}

// returning checks a single-row INSERT ... RETURNING. A statement that
// yields no row is reported as sql.ErrNoRows.
func returning(tx *gorm.DB) error {
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
