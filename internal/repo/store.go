package repo

import (
	"context"

	"gorm.io/gorm"
)

// SQLStore pairs the question and answer adapters over one pool, so a single
// value satisfies both service store contracts.
type SQLStore struct {
	*QuestionsRepo
	*AnswersRepo
	db *gorm.DB
}

// NewSQLStore binds both adapters to db.
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{QuestionsRepo: NewQuestionsRepo(db), AnswersRepo: NewAnswersRepo(db), db: db}
}

// Ping verifies that a pooled connection can reach the store.
func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the pool.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping always succeeds for the in-process store.
func (m *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

// Close is a no-op for the in-process store.
func (m *MemoryStore) Close() error { return nil }
