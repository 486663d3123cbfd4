// Answer HTTP handlers.
//
// This file exposes REST endpoints for answer resources:
//   - POST   /answer   (create)
//   - GET    /answers  (list by question; id in JSON body or ?question_id=)
//   - DELETE /answer   (delete; id in JSON body)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/qa-backend/internal/domain"
)

// CreateAnswer godoc
// @ID          createAnswer
// @Summary     Create an answer
// @Description Stores an answer under an existing question. A question_id that is malformed or names no question yields 400.
// @Tags        Answers
// @Accept      json
// @Produce     json
// @Param       body  body      domain.Answer  true  "Answer"
// @Success     200   {object}  domain.AnswerDetail
// @Failure     400   {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /answer [post]
func (h *Handlers) CreateAnswer(c *gin.Context) {
	var req domain.Answer
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	d, err := h.answers.Create(c.Request.Context(), req)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

// ListAnswers godoc
// @ID          listAnswers
// @Summary     List answers of a question
// @Description Returns the answers stored under question_id. Unknown questions yield an empty array.
// @Tags        Answers
// @Accept      json
// @Produce     json
// @Param       question_id  query     string             false  "Question id (alternative to the body)"
// @Param       body         body      domain.QuestionID  false  "Question id"
// @Success     200          {array}   domain.AnswerDetail
// @Failure     400          {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500          {object}  handlers.ErrorResponse  "Internal error"
// @Router      /answers [get]
func (h *Handlers) ListAnswers(c *gin.Context) {
	qid := strings.TrimSpace(c.Query("question_id"))
	if qid == "" {
		var req domain.QuestionID
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
			return
		}
		qid = req.QuestionID
	}
	list, err := h.answers.List(c.Request.Context(), qid)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, list)
}

// DeleteAnswer godoc
// @ID          deleteAnswer
// @Summary     Delete an answer
// @Description Deletes by answer_id. Unknown ids succeed.
// @Tags        Answers
// @Accept      json
// @Param       body  body  domain.AnswerID  true  "Answer id"
// @Success     200
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /answer [delete]
func (h *Handlers) DeleteAnswer(c *gin.Context) {
	var req domain.AnswerID
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if err := h.answers.Delete(c.Request.Context(), req.AnswerID); err != nil {
		failErr(c, err)
		return
	}
	empty(c)
}
