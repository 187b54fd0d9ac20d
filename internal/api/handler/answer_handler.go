package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/testcreator/quiz-system/internal/core/ports"
)

type AnswerHandler struct {
	quizService ports.QuizService
}

func NewAnswerHandler(quizService ports.QuizService) *AnswerHandler {
	return &AnswerHandler{quizService: quizService}
}

// Create adds an answer to a question.
//
// @Summary      Create an answer
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Question id"
// @Param        body  body      createAnswerRequest  true  "Answer details"
// @Success      201   {object}  domain.Answer
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /questions/{id}/answers [post]
// @Security     BearerAuth
func (h *AnswerHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createAnswerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	answer, err := h.quizService.CreateAnswer(c.Request().Context(), c.Param("id"), req.Text, req.Value, claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, answer)
}

// List returns all answers for a question.
//
// @Summary      List answers
// @Tags         answers
// @Produce      json
// @Param        id  path  string  true  "Question id"
// @Success      200  {array}   domain.Answer
// @Failure      404  {object}  errorResponse
// @Router       /questions/{id}/answers [get]
func (h *AnswerHandler) List(c echo.Context) error {
	answers, err := h.quizService.ListAnswers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, answers)
}

// Update modifies an answer.
//
// @Summary      Update an answer
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Answer id"
// @Param        body  body      createAnswerRequest  true  "Answer details"
// @Success      200   {object}  domain.Answer
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /answers/{id} [put]
// @Security     BearerAuth
func (h *AnswerHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createAnswerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	answer, err := h.quizService.UpdateAnswer(c.Request().Context(), c.Param("id"), req.Text, req.Value, claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, answer)
}

// Delete removes an answer.
//
// @Summary      Delete an answer
// @Tags         answers
// @Param        id  path  string  true  "Answer id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /answers/{id} [delete]
// @Security     BearerAuth
func (h *AnswerHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.quizService.DeleteAnswer(c.Request().Context(), c.Param("id"), claims); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
