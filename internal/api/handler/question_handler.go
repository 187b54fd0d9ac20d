package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/testcreator/quiz-system/internal/core/ports"
)

type QuestionHandler struct {
	quizService ports.QuizService
}

func NewQuestionHandler(quizService ports.QuizService) *QuestionHandler {
	return &QuestionHandler{quizService: quizService}
}

// Create adds a question to a quiz.
//
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Quiz id"
// @Param        body  body      createQuestionRequest  true  "Question details"
// @Success      201   {object}  domain.Question
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /quizzes/{id}/questions [post]
// @Security     BearerAuth
func (h *QuestionHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	question, err := h.quizService.CreateQuestion(c.Request().Context(), c.Param("id"), req.Text, claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, question)
}

// List returns all questions for a quiz.
//
// @Summary      List questions
// @Tags         questions
// @Produce      json
// @Param        id  path  string  true  "Quiz id"
// @Success      200  {array}   domain.Question
// @Failure      404  {object}  errorResponse
// @Router       /quizzes/{id}/questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	questions, err := h.quizService.ListQuestions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, questions)
}

// Update modifies a question's text.
//
// @Summary      Update a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Question id"
// @Param        body  body      createQuestionRequest  true  "Question details"
// @Success      200   {object}  domain.Question
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /questions/{id} [put]
// @Security     BearerAuth
func (h *QuestionHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	question, err := h.quizService.UpdateQuestion(c.Request().Context(), c.Param("id"), req.Text, claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, question)
}

// Delete removes a question.
//
// @Summary      Delete a question
// @Tags         questions
// @Param        id  path  string  true  "Question id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /questions/{id} [delete]
// @Security     BearerAuth
func (h *QuestionHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.quizService.DeleteQuestion(c.Request().Context(), c.Param("id"), claims); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
