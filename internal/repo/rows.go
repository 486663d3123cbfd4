package repo

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tbourn/qa-backend/internal/domain"
)

// storeTime scans a created_at column. Postgres (pgx) yields time.Time while
// SQLite yields the TEXT default, so both are accepted.
type storeTime struct{ time.Time }

var storeTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Scan implements sql.Scanner.
func (t *storeTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("created_at: unsupported type %T", src)
	}
}

func (t *storeTime) parse(s string) error {
	for _, layout := range storeTimeLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return fmt.Errorf("created_at: unrecognized timestamp %q", s)
}

type questionRow struct {
	QuestionID  uuid.UUID `gorm:"column:question_id"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	CreatedAt   storeTime `gorm:"column:created_at"`
}

func (r questionRow) detail() domain.QuestionDetail {
	return domain.QuestionDetail{
		QuestionID:  r.QuestionID.String(),
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   domain.FormatTimestamp(r.CreatedAt.Time),
	}
}

type answerRow struct {
	AnswerID   uuid.UUID `gorm:"column:answer_id"`
	QuestionID uuid.UUID `gorm:"column:question_id"`
	Content    string    `gorm:"column:content"`
	CreatedAt  storeTime `gorm:"column:created_at"`
}

func (r answerRow) detail() domain.AnswerDetail {
	return domain.AnswerDetail{
		AnswerID:   r.AnswerID.String(),
		QuestionID: r.QuestionID.String(),
		Content:    r.Content,
		CreatedAt:  domain.FormatTimestamp(r.CreatedAt.Time),
	}
}
