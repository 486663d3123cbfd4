// Package repo implements the data persistence layer for questions and
// answers. This file provides the SQL-backed answers adapter.
//
// Referential integrity is enforced by the answers.question_id foreign key,
// never by a read-before-write here. A syntactically valid question_id that
// names no question is rejected by the store and reported exactly like a
// malformed one: KindInvalidIdentifier.
//
// ListAnswers does not check that the question exists. An unknown question
// and a question without answers both yield an empty slice.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/qa-backend/internal/domain"
)

const (
	opCreateAnswer = "answer.create"
	opDeleteAnswer = "answer.delete"
	opListAnswers  = "answer.list"
)

// AnswersRepo is the SQL answers adapter. It is safe for concurrent use.
type AnswersRepo struct {
	DB *gorm.DB
}

// NewAnswersRepo returns an answers adapter bound to the pool db.
func NewAnswersRepo(db *gorm.DB) *AnswersRepo {
	return &AnswersRepo{DB: db}
}

// CreateAnswer inserts a under its question and returns the stored record.
func (r *AnswersRepo) CreateAnswer(ctx context.Context, a domain.Answer) (domain.AnswerDetail, error) {
	qid, err := parseID(a.QuestionID)
	if err != nil {
		return domain.AnswerDetail{}, observe(opCreateAnswer, err)
	}

	var row answerRow
	err = returning(r.DB.WithContext(ctx).Raw(
		`INSERT INTO answers (question_id, content) VALUES (?, ?)
		 RETURNING answer_id, question_id, content, created_at`,
		qid.String(), a.Content,
	).Scan(&row))
	if err != nil {
		return domain.AnswerDetail{}, observe(opCreateAnswer, classifyWrite(err))
	}
	observe(opCreateAnswer, nil)
	return row.detail(), nil
}

// DeleteAnswer removes the answer named by answerID. Missing rows are not an
// error.
func (r *AnswersRepo) DeleteAnswer(ctx context.Context, answerID string) error {
	id, err := parseID(answerID)
	if err != nil {
		return observe(opDeleteAnswer, err)
	}
	if err := r.DB.WithContext(ctx).Exec(`DELETE FROM answers WHERE answer_id = ?`, id.String()).Error; err != nil {
		return observe(opDeleteAnswer, other(err))
	}
	return observe(opDeleteAnswer, nil)
}

// ListAnswers returns the answers stored under questionID. The result is
// never nil.
func (r *AnswersRepo) ListAnswers(ctx context.Context, questionID string) ([]domain.AnswerDetail, error) {
	qid, err := parseID(questionID)
	if err != nil {
		return nil, observe(opListAnswers, err)
	}

	var rows []answerRow
	if err := r.DB.WithContext(ctx).
		Raw(`SELECT answer_id, question_id, content, created_at FROM answers WHERE question_id = ?`, qid.String()).
		Scan(&rows).Error; err != nil {
		return nil, observe(opListAnswers, other(err))
	}

	out := make([]domain.AnswerDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.detail())
	}
	observe(opListAnswers, nil)
	return out, nil
}
