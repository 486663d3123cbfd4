package repo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tbourn/qa-backend/internal/domain"
)

// errMemoryForeignKey mirrors the message SQLite reports for a foreign key
// violation so that both store variants produce the same diagnostic.
var errMemoryForeignKey = errors.New("FOREIGN KEY constraint failed")

// MemoryStore is an in-process questions and answers store. It applies the
// same identifier, foreign key, and no-cascade rules as the SQL schema and
// is meant for tests and local runs (DB_DRIVER=memory).
type MemoryStore struct {
	mu        sync.RWMutex
	now       func() time.Time
	questions map[uuid.UUID]domain.QuestionDetail
	qOrder    []uuid.UUID
	answers   map[uuid.UUID]domain.AnswerDetail
	aOrder    []uuid.UUID
	// answerCount tracks answers per question to enforce the foreign key on
	// question deletion.
	answerCount map[uuid.UUID]int
	// issued holds every identifier ever handed out so none is reused.
	issued map[uuid.UUID]struct{}
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:         time.Now,
		questions:   make(map[uuid.UUID]domain.QuestionDetail),
		answers:     make(map[uuid.UUID]domain.AnswerDetail),
		answerCount: make(map[uuid.UUID]int),
		issued:      make(map[uuid.UUID]struct{}),
	}
}

// newID returns an identifier never issued before. Caller holds mu.
func (m *MemoryStore) newID() uuid.UUID {
	for {
		id := uuid.New()
		if _, dup := m.issued[id]; !dup {
			m.issued[id] = struct{}{}
			return id
		}
	}
}

// CreateQuestion stores q with a fresh identifier and timestamp.
func (m *MemoryStore) CreateQuestion(ctx context.Context, q domain.Question) (domain.QuestionDetail, error) {
	if err := ctx.Err(); err != nil {
		return domain.QuestionDetail{}, observe(opCreateQuestion, other(err))
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.newID()
	d := domain.QuestionDetail{
		QuestionID:  id.String(),
		Title:       q.Title,
		Description: q.Description,
		CreatedAt:   domain.FormatTimestamp(m.now()),
	}
	m.questions[id] = d
	m.qOrder = append(m.qOrder, id)
	observe(opCreateQuestion, nil)
	return d, nil
}

// DeleteQuestion removes a question. Missing identifiers succeed; a question
// still referenced by answers is refused like the SQL foreign key would, as
// KindOther.
func (m *MemoryStore) DeleteQuestion(ctx context.Context, questionID string) error {
	id, err := parseID(questionID)
	if err != nil {
		return observe(opDeleteQuestion, err)
	}
	if err := ctx.Err(); err != nil {
		return observe(opDeleteQuestion, other(err))
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.questions[id]; !ok {
		return observe(opDeleteQuestion, nil)
	}
	if m.answerCount[id] > 0 {
		return observe(opDeleteQuestion, other(errMemoryForeignKey))
	}
	delete(m.questions, id)
	m.qOrder = without(m.qOrder, id)
	return observe(opDeleteQuestion, nil)
}

// ListQuestions returns questions in insertion order.
func (m *MemoryStore) ListQuestions(ctx context.Context) ([]domain.QuestionDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, observe(opListQuestions, other(err))
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.QuestionDetail, 0, len(m.qOrder))
	for _, id := range m.qOrder {
		out = append(out, m.questions[id])
	}
	observe(opListQuestions, nil)
	return out, nil
}

// CreateAnswer stores a under an existing question.
func (m *MemoryStore) CreateAnswer(ctx context.Context, a domain.Answer) (domain.AnswerDetail, error) {
	qid, err := parseID(a.QuestionID)
	if err != nil {
		return domain.AnswerDetail{}, observe(opCreateAnswer, err)
	}
	if err := ctx.Err(); err != nil {
		return domain.AnswerDetail{}, observe(opCreateAnswer, other(err))
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.questions[qid]; !ok {
		return domain.AnswerDetail{}, observe(opCreateAnswer, invalidIdentifier(errMemoryForeignKey))
	}
	id := m.newID()
	d := domain.AnswerDetail{
		AnswerID:   id.String(),
		QuestionID: qid.String(),
		Content:    a.Content,
		CreatedAt:  domain.FormatTimestamp(m.now()),
	}
	m.answers[id] = d
	m.aOrder = append(m.aOrder, id)
	m.answerCount[qid]++
	observe(opCreateAnswer, nil)
	return d, nil
}

// DeleteAnswer removes an answer. Missing identifiers succeed.
func (m *MemoryStore) DeleteAnswer(ctx context.Context, answerID string) error {
	id, err := parseID(answerID)
	if err != nil {
		return observe(opDeleteAnswer, err)
	}
	if err := ctx.Err(); err != nil {
		return observe(opDeleteAnswer, other(err))
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.answers[id]
	if !ok {
		return observe(opDeleteAnswer, nil)
	}
	delete(m.answers, id)
	m.aOrder = without(m.aOrder, id)
	qid := uuid.MustParse(d.QuestionID)
	if m.answerCount[qid]--; m.answerCount[qid] <= 0 {
		delete(m.answerCount, qid)
	}
	return observe(opDeleteAnswer, nil)
}

// ListAnswers returns the answers stored under questionID in insertion
// order. Unknown questions yield an empty slice.
func (m *MemoryStore) ListAnswers(ctx context.Context, questionID string) ([]domain.AnswerDetail, error) {
	qid, err := parseID(questionID)
	if err != nil {
		return nil, observe(opListAnswers, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, observe(opListAnswers, other(err))
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := qid.String()
	out := make([]domain.AnswerDetail, 0)
	for _, id := range m.aOrder {
		if d := m.answers[id]; d.QuestionID == key {
			out = append(out, d)
		}
	}
	observe(opListAnswers, nil)
	return out, nil
}

func without(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
