package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/testcreator/quiz-system/internal/core/ports"
)

type QuizHandler struct {
	quizService ports.QuizService
}

func NewQuizHandler(quizService ports.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Create authors a new quiz owned by the authenticated caller.
//
// @Summary      Create a quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        body  body      createQuizRequest  true  "Quiz details"
// @Success      201   {object}  quizResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /quizzes [post]
// @Security     BearerAuth
func (h *QuizHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createQuizRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	quiz, err := h.quizService.CreateQuiz(c.Request().Context(), ports.CreateQuizInput{
		AuthorID:    claims.Subject,
		Title:       req.Title,
		Description: req.Description,
		Text:        req.Text,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toQuizResponse(quiz))
}

// Get fetches a single quiz and records a view.
//
// @Summary      Get a quiz
// @Tags         quizzes
// @Produce      json
// @Param        id   path      string  true  "Quiz id"
// @Success      200  {object}  quizResponse
// @Failure      404  {object}  errorResponse
// @Router       /quizzes/{id} [get]
func (h *QuizHandler) Get(c echo.Context) error {
	quiz, err := h.quizService.GetQuiz(c.Request().Context(), c.Param("id"), viewerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuizResponse(quiz))
}

// Update modifies a quiz; only the author or an Admin may do so.
//
// @Summary      Update a quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Quiz id"
// @Param        body  body      updateQuizRequest  true  "Quiz details"
// @Success      200   {object}  quizResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /quizzes/{id} [put]
// @Security     BearerAuth
func (h *QuizHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateQuizRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	quiz, err := h.quizService.UpdateQuiz(c.Request().Context(), c.Param("id"), ports.UpdateQuizInput{
		Title:       req.Title,
		Description: req.Description,
		Text:        req.Text,
	}, claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toQuizResponse(quiz))
}

// Delete removes a quiz; only the author or an Admin may do so.
//
// @Summary      Delete a quiz
// @Tags         quizzes
// @Param        id  path  string  true  "Quiz id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /quizzes/{id} [delete]
// @Security     BearerAuth
func (h *QuizHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.quizService.DeleteQuiz(c.Request().Context(), c.Param("id"), claims); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Latest lists the most recently created quizzes.
//
// @Summary      List latest quizzes
// @Tags         quizzes
// @Produce      json
// @Param        limit  query     int  false  "Max rows (default 10)"
// @Success      200    {object}  quizListResponse
// @Router       /quizzes/latest [get]
func (h *QuizHandler) Latest(c echo.Context) error {
	quizzes, err := h.quizService.ListLatest(c.Request().Context(), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quizListResponse{Quizzes: toQuizListResponse(quizzes)})
}

// ByTitle lists quizzes ordered by title with optional search and paging.
//
// @Summary      List quizzes by title
// @Tags         quizzes
// @Produce      json
// @Param        search  query     string  false  "Partial title match"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Max rows per page (default 10)"
// @Success      200     {object}  quizListResponse
// @Router       /quizzes/by-title [get]
func (h *QuizHandler) ByTitle(c echo.Context) error {
	filter := ports.ListQuizzesFilter{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}

	quizzes, total, err := h.quizService.ListByTitle(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, quizListResponse{
		Quizzes: toQuizListResponse(quizzes),
		Total:   total,
		Page:    max(filter.Page, 1),
		Limit:   filter.Limit,
	})
}

// Random lists quizzes in random order.
//
// @Summary      List random quizzes
// @Tags         quizzes
// @Produce      json
// @Param        limit  query     int  false  "Max rows (default 10)"
// @Success      200    {object}  quizListResponse
// @Router       /quizzes/random [get]
func (h *QuizHandler) Random(c echo.Context) error {
	quizzes, err := h.quizService.ListRandom(c.Request().Context(), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quizListResponse{Quizzes: toQuizListResponse(quizzes)})
}

// queryInt parses an optional integer query parameter; 0 means unset.
func queryInt(c echo.Context, name string) int {
	n, _ := strconv.Atoi(c.QueryParam(name))
	return n
}
