// Package repo implements the data persistence layer for questions and
// answers. This file defines the storage-level error taxonomy returned by
// every store adapter.
//
// Error semantics:
//   - KindInvalidIdentifier: the caller's reference is unusable. Either the
//     identifier string is not a UUID, or the store rejected the write with a
//     referential-integrity (foreign key) violation.
//   - KindOther: any other storage failure (connectivity, unclassified
//     constraint, scan/serialization).
//
// Adapters never recover from a store error locally; they classify it and
// return it. Callers branch with errors.Is(err, ErrInvalidIdentifier) or
// KindOf(err). The original cause stays reachable through errors.Unwrap, so a
// uuid parse failure can still be told apart from a constraint violation.
package repo

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies a storage failure.
type Kind int

const (
	// KindInvalidIdentifier marks a malformed identifier or a foreign key
	// violation.
	KindInvalidIdentifier Kind = iota + 1
	// KindOther marks every other storage failure.
	KindOther
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "invalid_identifier"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Sentinels matched by (*Error).Is.
var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrOther             = errors.New("storage failure")
)

const (
	// pgForeignKeyViolation is SQLSTATE foreign_key_violation.
	pgForeignKeyViolation = "23503"
	// sqliteConstraintForeignKey is SQLITE_CONSTRAINT_FOREIGNKEY.
	sqliteConstraintForeignKey = 787
)

// Error is a classified storage failure.
type Error struct {
	Kind Kind
	// Detail is the original diagnostic (parser or driver message).
	Detail string
	// Err is the underlying cause.
	Err error
}

// Error returns the original diagnostic unchanged.
func (e *Error) Error() string { return e.Detail }

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidIdentifier:
		return e.Kind == KindInvalidIdentifier
	case ErrOther:
		return e.Kind == KindOther
	}
	return false
}

// KindOf reports the Kind of err, or 0 when err is nil or not a *Error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

func invalidIdentifier(err error) *Error {
	return &Error{Kind: KindInvalidIdentifier, Detail: err.Error(), Err: err}
}

func other(err error) *Error {
	return &Error{Kind: KindOther, Detail: err.Error(), Err: err}
}

// parseID parses s as a UUID. Failure is always KindInvalidIdentifier with
// the parser's diagnostic.
func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, invalidIdentifier(err)
	}
	return id, nil
}

// classifyWrite maps an insert failure: foreign key violations become
// KindInvalidIdentifier, everything else KindOther.
func classifyWrite(err error) error {
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return invalidIdentifier(err)
	}
	return other(err)
}

// isForeignKeyViolation detects referential-integrity failures across the
// supported drivers. glebarez/sqlite does not always expose a typed error,
// so the message is checked as a last resort.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var coded interface{ Code() int }
	if errors.As(err, &coded) && coded.Code() == sqliteConstraintForeignKey {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
