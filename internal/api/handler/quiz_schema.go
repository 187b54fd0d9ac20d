package handler

import (
	"time"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

// --- Request types ---

type createQuizRequest struct {
	Title       string `json:"title"       validate:"required,max=256"`
	Description string `json:"description" validate:"omitempty,max=1024"`
	Text        string `json:"text"        validate:"omitempty,max=8192"`
}

type updateQuizRequest struct {
	Title       string `json:"title"       validate:"required,max=256"`
	Description string `json:"description" validate:"omitempty,max=1024"`
	Text        string `json:"text"        validate:"omitempty,max=8192"`
}

type createQuestionRequest struct {
	Text string `json:"text" validate:"required,max=1024"`
}

type createAnswerRequest struct {
	Text  string `json:"text"  validate:"required,max=1024"`
	Value int    `json:"value" validate:"gte=0"`
}

type createResultRequest struct {
	Text     string `json:"text"      validate:"required,max=1024"`
	MinValue int    `json:"min_value" validate:"gte=0"`
	MaxValue int    `json:"max_value" validate:"gte=0"`
}

// --- Response types, owned by the transport layer ---

type quizResponse struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Text        string    `json:"text,omitempty"`
	ViewCount   int64     `json:"view_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type quizListResponse struct {
	Quizzes []quizResponse `json:"quizzes"`
	Total   int64          `json:"total,omitempty"`
	Page    int            `json:"page,omitempty"`
	Limit   int            `json:"limit,omitempty"`
}

func toQuizResponse(q *domain.Quiz) quizResponse {
	return quizResponse{
		ID:          q.ID,
		AuthorID:    q.AuthorID,
		Title:       q.Title,
		Description: q.Description,
		Text:        q.Text,
		ViewCount:   q.ViewCount,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func toQuizListResponse(quizzes []*domain.Quiz) []quizResponse {
	out := make([]quizResponse, len(quizzes))
	for i, q := range quizzes {
		out[i] = toQuizResponse(q)
	}
	return out
}
