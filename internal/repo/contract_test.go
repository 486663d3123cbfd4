package repo

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/qa-backend/internal/domain"
)

// qaStore is the union of both adapter contracts; each variant under test
// must satisfy it.
type qaStore interface {
	CreateQuestion(ctx context.Context, q domain.Question) (domain.QuestionDetail, error)
	DeleteQuestion(ctx context.Context, questionID string) error
	ListQuestions(ctx context.Context) ([]domain.QuestionDetail, error)
	CreateAnswer(ctx context.Context, a domain.Answer) (domain.AnswerDetail, error)
	DeleteAnswer(ctx context.Context, answerID string) error
	ListAnswers(ctx context.Context, questionID string) ([]domain.AnswerDetail, error)
}

func newTestDB(t *testing.T, bootstrap bool) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qa.db")
	db, err := OpenSQLite(path, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if bootstrap {
		require.NoError(t, BootstrapSchema(db))
	}
	return db
}

func variants(t *testing.T) map[string]func(t *testing.T) qaStore {
	t.Helper()
	return map[string]func(t *testing.T) qaStore{
		"sqlite": func(t *testing.T) qaStore {
			db := newTestDB(t, true)
			return NewSQLStore(db)
		},
		"memory": func(t *testing.T) qaStore { return NewMemoryStore() },
	}
}

func forEachVariant(t *testing.T, fn func(t *testing.T, s qaStore)) {
	for name, mk := range variants(t) {
		mk := mk
		t.Run(name, func(t *testing.T) { fn(t, mk(t)) })
	}
}

func requireKind(t *testing.T, err error, want Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, KindOf(err), "err=%v", err)
}

func TestContract_QuestionRoundTrip(t *testing.T) {
	forEachVariant(t, func(t *testing.T, s qaStore) {
		ctx := context.Background()
		start := time.Now().UTC().Add(-time.Minute)

		created, err := s.CreateQuestion(ctx, domain.Question{Title: "T", Description: "D"})
		require.NoError(t, err)

		list, err := s.ListQuestions(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)

		got := list[0]
		assert.Equal(t, created, got)
		assert.Equal(t, "T", got.Title)
		assert.Equal(t, "D", got.Description)
		_, err = uuid.Parse(got.QuestionID)
		assert.NoError(t, err, "question_id must be a UUID")
		require.NotEmpty(t, got.CreatedAt)

		ts, err := time.Parse(domain.TimestampLayout, got.CreatedAt)
		require.NoError(t, err)
		assert.True(t, ts.After(start), "created_at %v looks unset", ts)
	})
}

func TestContract_ListQuestions_EmptyIsNotNil(t *testing.T) {
	forEachVariant(t, func(t *testing.T, s qaStore) {
		list, err := s.ListQuestions(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestContract_DeleteQuestion_Idempotent(t *testing.T) {
	forEachVariant(t, func(t *testing.T, s qaStore) {
		ctx := context.Background()
		q, err := s.CreateQuestion(ctx, domain.Question{Title: "T", Description: "D"})
		require.NoError(t, err)

		require.NoError(t, s.DeleteQuestion(ctx, q.QuestionID))
		require.NoError(t, s.DeleteQuestion(ctx, q.QuestionID))
		// Never created at all.
		require.NoError(t, s.DeleteQuestion(ctx, uuid.NewString()))

		list, err := s.ListQuestions(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestContract_DeleteAnswer_Idempotent(t *testing.T) {
	forEachVariant(t, func(t *testing.T, s qaStore) {
		ctx := context.Background()
		q, err := s.CreateQuestion(ctx, domain.Question{Title: "T", Description: "D"})
		require.NoError(t, err)
		a, err := s.CreateAnswer(ctx, domain.Answer{QuestionID: q.QuestionID, Content: "A"})
		require.NoError(t, err)

		require.NoError(t, s.DeleteAnswer(ctx, a.AnswerID))
		require.NoError(t, s.DeleteAnswer(ctx, a.AnswerID))

		list, err := s.ListAnswers(ctx, q.QuestionID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestContract_MalformedIdentifier(t *testing.T) {
	_, parseErr := uuid.Parse("not-a-uuid")
	require.Error(t, parseErr)

	forEachVariant(t, func(t *testing.T, s qaStore) {
		ctx := context.Background()

		err := s.DeleteQuestion(ctx, "not-a-uuid")
		requireKind(t, err, KindInvalidIdentifier)
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
		assert.NotErrorIs(t, err, ErrOther)
		assert.Equal(t, parseErr.Error(), err.Error(), "detail must be the parser diagnostic")

		requireKind(t, s.DeleteAnswer(ctx, "not-a-uuid"), KindInvalidIdentifier)

		_, err = s.ListAnswers(ctx, "")
		requireKind(t, err, KindInvalidIdentifier)

		_, err = s.CreateAnswer(ctx, domain.Answer{QuestionID: "123", Content: "x"})
		requireKind(t, err, KindInvalidIdentifier)
	})
}

func TestContract_ReferentialIntegrity(t *testing.T) {
	forEachVariant(t, func(t *testing.T, s qaStore) {
		ctx := context.Background()
		_, err := s.CreateAnswer(ctx, domain.Answer{QuestionID: uuid.NewString(), Content: "orphan"})
		requireKind(t, err, KindInvalidIdentifier)
		assert.Contains(t, strings.ToLower(err.Error()), "foreign key")
	})
}

func TestContract_ScopedListing(t *testing.T) {
	forEachVariant(t, func(t *testing.T, s qaStore) {
		ctx := context.Background()
		q1, err := s.CreateQuestion(ctx, domain.Question{Title: "Q1", Description: "d1"})
		require.NoError(t, err)
		q2, err := s.CreateQuestion(ctx, domain.Question{Title: "Q2", Description: "d2"})
		require.NoError(t, err)

		a, err := s.CreateAnswer(ctx, domain.Answer{QuestionID: q1.QuestionID, Content: "A1"})
		require.NoError(t, err)
		assert.Equal(t, q1.QuestionID, a.QuestionID)
		assert.Equal(t, "A1", a.Content)

		empty, err := s.ListAnswers(ctx, q2.QuestionID)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		one, err := s.ListAnswers(ctx, q1.QuestionID)
		require.NoError(t, err)
		require.Len(t, one, 1)
		assert.Equal(t, a, one[0])

		// Unknown question: empty, not an error.
		none, err := s.ListAnswers(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestContract_ListAnswers_AcceptsNonCanonicalCase(t *testing.T) {
	forEachVariant(t, func(t *testing.T, s qaStore) {
		ctx := context.Background()
		q, err := s.CreateQuestion(ctx, domain.Question{Title: "Q", Description: "d"})
		require.NoError(t, err)
		_, err = s.CreateAnswer(ctx, domain.Answer{QuestionID: strings.ToUpper(q.QuestionID), Content: "A"})
		require.NoError(t, err)

		list, err := s.ListAnswers(ctx, strings.ToUpper(q.QuestionID))
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, q.QuestionID, list[0].QuestionID)
	})
}

// Deleting a question that still has answers is refused by the foreign key
// as a storage failure, not an identifier error; nothing cascades and nothing
// is orphaned. Once its answers are gone the question can be deleted.
func TestContract_DeleteReferencedQuestion_Refused(t *testing.T) {
	forEachVariant(t, func(t *testing.T, s qaStore) {
		ctx := context.Background()
		q, err := s.CreateQuestion(ctx, domain.Question{Title: "Q", Description: "d"})
		require.NoError(t, err)
		a, err := s.CreateAnswer(ctx, domain.Answer{QuestionID: q.QuestionID, Content: "A"})
		require.NoError(t, err)

		err = s.DeleteQuestion(ctx, q.QuestionID)
		requireKind(t, err, KindOther)
		assert.Contains(t, strings.ToLower(err.Error()), "foreign key")

		answers, err := s.ListAnswers(ctx, q.QuestionID)
		require.NoError(t, err)
		require.Len(t, answers, 1)
		assert.Equal(t, a.AnswerID, answers[0].AnswerID)

		questions, err := s.ListQuestions(ctx)
		require.NoError(t, err)
		require.Len(t, questions, 1)

		require.NoError(t, s.DeleteAnswer(ctx, a.AnswerID))
		require.NoError(t, s.DeleteQuestion(ctx, q.QuestionID))

		answers, err = s.ListAnswers(ctx, q.QuestionID)
		require.NoError(t, err)
		assert.Empty(t, answers)
	})
}

func TestContract_ConcurrentCreates_UniqueIDs(t *testing.T) {
	forEachVariant(t, func(t *testing.T, s qaStore) {
		ctx := context.Background()
		const n = 16

		var (
			wg  sync.WaitGroup
			mu  sync.Mutex
			ids = make(map[string]struct{}, n)
		)
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				q, err := s.CreateQuestion(ctx, domain.Question{Title: "T", Description: "D"})
				if err != nil {
					errs <- err
					return
				}
				mu.Lock()
				ids[q.QuestionID] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
		assert.Len(t, ids, n)
	})
}

func TestSQL_StorageFailures_AreOther(t *testing.T) {
	db := newTestDB(t, false) // no tables
	s := NewSQLStore(db)
	ctx := context.Background()

	_, err := s.CreateQuestion(ctx, domain.Question{Title: "T", Description: "D"})
	requireKind(t, err, KindOther)
	assert.ErrorIs(t, err, ErrOther)

	_, err = s.ListQuestions(ctx)
	requireKind(t, err, KindOther)

	requireKind(t, s.DeleteQuestion(ctx, uuid.NewString()), KindOther)
	requireKind(t, s.DeleteAnswer(ctx, uuid.NewString()), KindOther)

	_, err = s.CreateAnswer(ctx, domain.Answer{QuestionID: uuid.NewString(), Content: "x"})
	requireKind(t, err, KindOther)

	_, err = s.ListAnswers(ctx, uuid.NewString())
	requireKind(t, err, KindOther)
}

func TestMemory_CanceledContext_IsOther(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.CreateQuestion(ctx, domain.Question{Title: "T"})
	requireKind(t, err, KindOther)
	assert.ErrorIs(t, err, context.Canceled)

	// Identifier parsing still comes first.
	requireKind(t, s.DeleteQuestion(ctx, "bad"), KindInvalidIdentifier)
	requireKind(t, s.DeleteQuestion(ctx, uuid.NewString()), KindOther)
}

func TestMemory_UsesClock(t *testing.T) {
	s := NewMemoryStore()
	fixed := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	q, err := s.CreateQuestion(context.Background(), domain.Question{Title: "T", Description: "D"})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T10:00:00Z", q.CreatedAt)
}

func TestStores_PingAndClose(t *testing.T) {
	ctx := context.Background()

	s := NewSQLStore(newTestDB(t, true))
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())
	assert.Error(t, s.Ping(ctx), "ping after close")

	m := NewMemoryStore()
	require.NoError(t, m.Ping(ctx))
	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, m.Ping(canceled), context.Canceled)
	assert.NoError(t, m.Close())
}

func TestReturning_ScansThroughGORM(t *testing.T) {
	db := newTestDB(t, true)

	var row questionRow
	err := returning(db.Raw(`SELECT question_id, title, description, created_at FROM questions WHERE 1 = 0`).Scan(&row))
	assert.ErrorIs(t, err, sql.ErrNoRows)

	err = returning(db.Raw(
		`INSERT INTO questions (title, description) VALUES (?, ?)
		 RETURNING question_id, title, description, created_at`, "t", "d",
	).Scan(&row))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, row.QuestionID)
	assert.Equal(t, "t", row.Title)
	assert.False(t, row.CreatedAt.IsZero(), "created_at scanned from TEXT default")

	var ans answerRow
	err = returning(db.Raw(
		`INSERT INTO answers (question_id, content) VALUES (?, ?)
		 RETURNING answer_id, question_id, content, created_at`, uuid.NewString(), "c",
	).Scan(&ans))
	require.Error(t, err)
	assert.True(t, isForeignKeyViolation(err), "err=%v", err)
}

