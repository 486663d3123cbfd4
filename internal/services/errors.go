// Package services defines the business logic for questions and answers.
// This file centralizes the business-level error taxonomy so that service
// methods return it consistently and handlers can map it to HTTP results.
//
// Two kinds exist:
//   - CodeBadRequest: the caller's input is unusable (a storage
//     KindInvalidIdentifier).
//   - CodeInternal: any other failure (a storage KindOther).
//
// The message is always the original storage diagnostic, unredacted.
package services

import (
	"errors"

	"github.com/tbourn/qa-backend/internal/repo"
)

// Code identifies a business error kind.
type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeInternal   Code = "internal_error"
)

// Sentinels matched by (*Error).Is.
var (
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal error")
)

// Error is a business-level failure carrying a message for the client.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error returns the client message.
func (e *Error) Error() string { return e.Message }

// Unwrap exposes the storage error that caused e.
func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrBadRequest and ErrInternal.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.Code == CodeBadRequest
	case ErrInternal:
		return e.Code == CodeInternal
	}
	return false
}

// BadRequest builds a CodeBadRequest error.
func BadRequest(msg string, cause error) *Error {
	return &Error{Code: CodeBadRequest, Message: msg, Err: cause}
}

// Internal builds a CodeInternal error.
func Internal(msg string, cause error) *Error {
	return &Error{Code: CodeInternal, Message: msg, Err: cause}
}

// FromStore converts a storage error into a business error. Invalid
// identifiers become CodeBadRequest; everything else, including errors that
// are not *repo.Error, becomes CodeInternal.
func FromStore(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repo.ErrInvalidIdentifier) {
		return BadRequest(err.Error(), err)
	}
	return Internal(err.Error(), err)
}
