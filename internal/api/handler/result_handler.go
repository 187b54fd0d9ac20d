package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/testcreator/quiz-system/internal/core/ports"
)

type ResultHandler struct {
	quizService ports.QuizService
}

func NewResultHandler(quizService ports.QuizService) *ResultHandler {
	return &ResultHandler{quizService: quizService}
}

// Create adds a score-band result to a quiz.
//
// @Summary      Create a result
// @Tags         results
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Quiz id"
// @Param        body  body      createResultRequest  true  "Result details"
// @Success      201   {object}  domain.Result
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /quizzes/{id}/results [post]
// @Security     BearerAuth
func (h *ResultHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createResultRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.quizService.CreateResult(c.Request().Context(), c.Param("id"), req.Text, req.MinValue, req.MaxValue, claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// List returns all results for a quiz.
//
// @Summary      List results
// @Tags         results
// @Produce      json
// @Param        id  path  string  true  "Quiz id"
// @Success      200  {array}   domain.Result
// @Failure      404  {object}  errorResponse
// @Router       /quizzes/{id}/results [get]
func (h *ResultHandler) List(c echo.Context) error {
	results, err := h.quizService.ListResults(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// Update modifies a result.
//
// @Summary      Update a result
// @Tags         results
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Result id"
// @Param        body  body      createResultRequest  true  "Result details"
// @Success      200   {object}  domain.Result
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /results/{id} [put]
// @Security     BearerAuth
func (h *ResultHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createResultRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.quizService.UpdateResult(c.Request().Context(), c.Param("id"), req.Text, req.MinValue, req.MaxValue, claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Delete removes a result.
//
// @Summary      Delete a result
// @Tags         results
// @Param        id  path  string  true  "Result id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /results/{id} [delete]
// @Security     BearerAuth
func (h *ResultHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.quizService.DeleteResult(c.Request().Context(), c.Param("id"), claims); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
