package ports

import (
	"context"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

// ListQuizzesFilter carries query parameters for quiz listings.
type ListQuizzesFilter struct {
	// Search is an optional partial, case-insensitive match on the title.
	Search string
	Page   int // 1-based
	Limit  int // max rows per page (capped at 100 by the service)
}

// QuizRepository defines persistence operations for quizzes and their
// questions, answers, and results.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, q *domain.Quiz) error
	FindQuizByID(ctx context.Context, id string) (*domain.Quiz, error)
	UpdateQuiz(ctx context.Context, q *domain.Quiz) error
	DeleteQuiz(ctx context.Context, id string) error
	// ListLatest returns quizzes ordered by creation time, newest first.
	ListLatest(ctx context.Context, limit int) ([]*domain.Quiz, error)
	// ListByTitle returns a page of quizzes matching filter, ordered by title,
	// and the total count.
	ListByTitle(ctx context.Context, filter ListQuizzesFilter) ([]*domain.Quiz, int64, error)
	// ListRandom returns up to limit quizzes in random order.
	ListRandom(ctx context.Context, limit int) ([]*domain.Quiz, error)
	// IncrementViewCount atomically bumps the stored view counter.
	IncrementViewCount(ctx context.Context, id string) error

	CreateQuestion(ctx context.Context, q *domain.Question) error
	FindQuestionByID(ctx context.Context, id string) (*domain.Question, error)
	ListQuestions(ctx context.Context, quizID string) ([]*domain.Question, error)
	UpdateQuestion(ctx context.Context, q *domain.Question) error
	DeleteQuestion(ctx context.Context, id string) error

	CreateAnswer(ctx context.Context, a *domain.Answer) error
	FindAnswerByID(ctx context.Context, id string) (*domain.Answer, error)
	ListAnswers(ctx context.Context, questionID string) ([]*domain.Answer, error)
	UpdateAnswer(ctx context.Context, a *domain.Answer) error
	DeleteAnswer(ctx context.Context, id string) error

	CreateResult(ctx context.Context, r *domain.Result) error
	FindResultByID(ctx context.Context, id string) (*domain.Result, error)
	ListResults(ctx context.Context, quizID string) ([]*domain.Result, error)
	UpdateResult(ctx context.Context, r *domain.Result) error
	DeleteResult(ctx context.Context, id string) error
}
