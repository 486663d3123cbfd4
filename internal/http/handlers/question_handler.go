// Question HTTP handlers.
//
// This file exposes REST endpoints for question resources:
//   - POST   /question   (create)
//   - GET    /questions  (list)
//   - DELETE /question   (delete; id in JSON body)
//
// Handlers are transport-thin: they decode input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/qa-backend/internal/domain"
)

//
// Service contracts (context-aware)
//

// QuestionService defines question operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type QuestionService interface {
	Create(ctx context.Context, q domain.Question) (domain.QuestionDetail, error)
	List(ctx context.Context) ([]domain.QuestionDetail, error)
	Delete(ctx context.Context, questionID string) error
}

// AnswerService defines answer operations consumed by HTTP handlers.
type AnswerService interface {
	Create(ctx context.Context, a domain.Answer) (domain.AnswerDetail, error)
	List(ctx context.Context, questionID string) ([]domain.AnswerDetail, error)
	Delete(ctx context.Context, answerID string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for questions and answers.
type Handlers struct {
	questions QuestionService
	answers   AnswerService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(questions QuestionService, answers AnswerService) *Handlers {
	return &Handlers{questions: questions, answers: answers}
}

//
// Handlers
//

// CreateQuestion godoc
// @ID          createQuestion
// @Summary     Create a question
// @Description Stores a question; the store assigns question_id and created_at.
// @Tags        Questions
// @Accept      json
// @Produce     json
// @Param       body  body      domain.Question  true  "Question"
// @Success     200   {object}  domain.QuestionDetail
// @Failure     400   {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question [post]
func (h *Handlers) CreateQuestion(c *gin.Context) {
	var req domain.Question
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	d, err := h.questions.Create(c.Request.Context(), req)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

// ListQuestions godoc
// @ID          listQuestions
// @Summary     List questions
// @Description Returns every stored question in store order.
// @Tags        Questions
// @Produce     json
// @Success     200  {array}   domain.QuestionDetail
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /questions [get]
func (h *Handlers) ListQuestions(c *gin.Context) {
	list, err := h.questions.List(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, list)
}

// DeleteQuestion godoc
// @ID          deleteQuestion
// @Summary     Delete a question
// @Description Deletes by question_id. Unknown ids succeed. A question that still has answers is refused with 500.
// @Tags        Questions
// @Accept      json
// @Param       body  body  domain.QuestionID  true  "Question id"
// @Success     200
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question [delete]
func (h *Handlers) DeleteQuestion(c *gin.Context) {
	var req domain.QuestionID
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if err := h.questions.Delete(c.Request.Context(), req.QuestionID); err != nil {
		failErr(c, err)
		return
	}
	empty(c)
}
