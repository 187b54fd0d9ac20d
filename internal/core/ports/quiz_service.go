package ports

import (
	"context"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

// CreateQuizInput is the DTO for authoring a new quiz.
type CreateQuizInput struct {
	AuthorID    string
	Title       string
	Description string
	Text        string
}

// UpdateQuizInput carries the mutable quiz fields.
type UpdateQuizInput struct {
	Title       string
	Description string
	Text        string
}

// QuizService exposes quiz authoring and browsing operations. Mutations
// enforce ownership: only the author or an Admin may update or delete.
type QuizService interface {
	CreateQuiz(ctx context.Context, input CreateQuizInput) (*domain.Quiz, error)
	// GetQuiz fetches a quiz and records a view on behalf of viewerID.
	GetQuiz(ctx context.Context, id, viewerID string) (*domain.Quiz, error)
	UpdateQuiz(ctx context.Context, id string, input UpdateQuizInput, caller *domain.TokenClaims) (*domain.Quiz, error)
	DeleteQuiz(ctx context.Context, id string, caller *domain.TokenClaims) error
	ListLatest(ctx context.Context, limit int) ([]*domain.Quiz, error)
	ListByTitle(ctx context.Context, filter ListQuizzesFilter) ([]*domain.Quiz, int64, error)
	ListRandom(ctx context.Context, limit int) ([]*domain.Quiz, error)

	CreateQuestion(ctx context.Context, quizID, text string, caller *domain.TokenClaims) (*domain.Question, error)
	ListQuestions(ctx context.Context, quizID string) ([]*domain.Question, error)
	UpdateQuestion(ctx context.Context, id, text string, caller *domain.TokenClaims) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, id string, caller *domain.TokenClaims) error

	CreateAnswer(ctx context.Context, questionID, text string, value int, caller *domain.TokenClaims) (*domain.Answer, error)
	ListAnswers(ctx context.Context, questionID string) ([]*domain.Answer, error)
	UpdateAnswer(ctx context.Context, id, text string, value int, caller *domain.TokenClaims) (*domain.Answer, error)
	DeleteAnswer(ctx context.Context, id string, caller *domain.TokenClaims) error

	CreateResult(ctx context.Context, quizID, text string, minValue, maxValue int, caller *domain.TokenClaims) (*domain.Result, error)
	ListResults(ctx context.Context, quizID string) ([]*domain.Result, error)
	UpdateResult(ctx context.Context, id, text string, minValue, maxValue int, caller *domain.TokenClaims) (*domain.Result, error)
	DeleteResult(ctx context.Context, id string, caller *domain.TokenClaims) error
}
