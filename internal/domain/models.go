// Package domain defines the records exchanged between the HTTP layer, the
// services, and the store adapters: questions and answers in their submitted
// form and in their stored (detail) form.
//
// Detail records carry the fields the store assigns on insert (identifier and
// creation timestamp). Both are rendered as strings so that the transport
// layer never depends on driver-specific types.
package domain

import "time"

// TimestampLayout is the wire format of every created_at field.
const TimestampLayout = time.RFC3339Nano

// Question is a question as submitted by a client. It has no identifier;
// the store assigns one on insert.
type Question struct {
	Title       string `json:"title"       example:"How do I reverse a slice?"`
	Description string `json:"description" example:"In place, without allocating."`
}

// QuestionDetail is a stored question.
//
// Fields:
//   - QuestionID: store-generated UUID in canonical string form.
//   - Title / Description: as submitted (NFC-normalized).
//   - CreatedAt: store-assigned creation time, immutable.
type QuestionDetail struct {
	QuestionID  string `json:"question_id" example:"b068cd2f-edac-479e-98f1-c5f91008dcbd"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"  example:"2025-01-01T10:00:00.123456Z"`
}

// QuestionID is the request body naming a single question.
type QuestionID struct {
	QuestionID string `json:"question_id" example:"b068cd2f-edac-479e-98f1-c5f91008dcbd"`
}

// Answer is an answer as submitted by a client. QuestionID must name an
// existing question; the store rejects it otherwise.
type Answer struct {
	QuestionID string `json:"question_id" example:"b068cd2f-edac-479e-98f1-c5f91008dcbd"`
	Content    string `json:"content"     example:"Swap from both ends towards the middle."`
}

// AnswerDetail is a stored answer.
type AnswerDetail struct {
	AnswerID   string `json:"answer_id"   example:"a1a14a9c-ab9e-481b-8120-67f675531ed2"`
	QuestionID string `json:"question_id" example:"b068cd2f-edac-479e-98f1-c5f91008dcbd"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

// AnswerID is the request body naming a single answer.
type AnswerID struct {
	AnswerID string `json:"answer_id" example:"a1a14a9c-ab9e-481b-8120-67f675531ed2"`
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
