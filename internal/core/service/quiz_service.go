package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/testcreator/quiz-system/internal/core/domain"
	"github.com/testcreator/quiz-system/internal/core/ports"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// ViewRecorder accepts view events for asynchronous processing.
type ViewRecorder interface {
	Enqueue(event ports.ViewEventInput)
}

type quizService struct {
	repo  ports.QuizRepository
	views ViewRecorder
	log   zerolog.Logger
}

// NewQuizService returns a QuizService implementation. views may be nil, in
// which case quiz fetches do not record views.
func NewQuizService(repo ports.QuizRepository, views ViewRecorder, log zerolog.Logger) ports.QuizService {
	return &quizService{repo: repo, views: views, log: log}
}

// canMutate applies the ownership rule: the author or an Admin.
func canMutate(caller *domain.TokenClaims, authorID string) bool {
	if caller == nil {
		return false
	}
	return caller.Subject == authorID || caller.HasRole(domain.RoleAdmin)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func (s *quizService) CreateQuiz(ctx context.Context, input ports.CreateQuizInput) (*domain.Quiz, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.AuthorID == "" {
		return nil, fmt.Errorf("create quiz: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	quiz := &domain.Quiz{
		ID:          ulid.Make().String(),
		AuthorID:    input.AuthorID,
		Title:       title,
		Description: input.Description,
		Text:        input.Text,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateQuiz(ctx, quiz); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	s.log.Info().Str("quiz_id", quiz.ID).Str("author_id", quiz.AuthorID).Msg("quiz created")
	return quiz, nil
}

func (s *quizService) GetQuiz(ctx context.Context, id, viewerID string) (*domain.Quiz, error) {
	quiz, err := s.repo.FindQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.views != nil {
		s.views.Enqueue(ports.ViewEventInput{QuizID: id, ViewerID: viewerID, Seen: time.Now().UTC()})
	}
	return quiz, nil
}

func (s *quizService) UpdateQuiz(ctx context.Context, id string, input ports.UpdateQuizInput, caller *domain.TokenClaims) (*domain.Quiz, error) {
	quiz, err := s.repo.FindQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(caller, quiz.AuthorID) {
		return nil, domain.ErrForbidden
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		quiz.Title = title
	}
	quiz.Description = input.Description
	quiz.Text = input.Text
	quiz.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateQuiz(ctx, quiz); err != nil {
		return nil, fmt.Errorf("update quiz: %w", err)
	}
	return quiz, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, id string, caller *domain.TokenClaims) error {
	quiz, err := s.repo.FindQuizByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(caller, quiz.AuthorID) {
		return domain.ErrForbidden
	}
	if err := s.repo.DeleteQuiz(ctx, id); err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	s.log.Info().Str("quiz_id", id).Msg("quiz deleted")
	return nil
}

func (s *quizService) ListLatest(ctx context.Context, limit int) ([]*domain.Quiz, error) {
	return s.repo.ListLatest(ctx, clampLimit(limit))
}

func (s *quizService) ListByTitle(ctx context.Context, filter ports.ListQuizzesFilter) ([]*domain.Quiz, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	filter.Limit = clampLimit(filter.Limit)
	return s.repo.ListByTitle(ctx, filter)
}

func (s *quizService) ListRandom(ctx context.Context, limit int) ([]*domain.Quiz, error) {
	return s.repo.ListRandom(ctx, clampLimit(limit))
}

// ownerOfQuiz resolves the quiz's author for child-entity mutations.
func (s *quizService) ownerOfQuiz(ctx context.Context, quizID string) (string, error) {
	quiz, err := s.repo.FindQuizByID(ctx, quizID)
	if err != nil {
		return "", err
	}
	return quiz.AuthorID, nil
}

func (s *quizService) ownerOfQuestion(ctx context.Context, questionID string) (string, error) {
	question, err := s.repo.FindQuestionByID(ctx, questionID)
	if err != nil {
		return "", err
	}
	return s.ownerOfQuiz(ctx, question.QuizID)
}

func (s *quizService) CreateQuestion(ctx context.Context, quizID, text string, caller *domain.TokenClaims) (*domain.Question, error) {
	authorID, err := s.ownerOfQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !canMutate(caller, authorID) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	question := &domain.Question{
		ID:        ulid.Make().String(),
		QuizID:    quizID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

func (s *quizService) ListQuestions(ctx context.Context, quizID string) ([]*domain.Question, error) {
	if _, err := s.repo.FindQuizByID(ctx, quizID); err != nil {
		return nil, err
	}
	return s.repo.ListQuestions(ctx, quizID)
}

func (s *quizService) UpdateQuestion(ctx context.Context, id, text string, caller *domain.TokenClaims) (*domain.Question, error) {
	question, err := s.repo.FindQuestionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	authorID, err := s.ownerOfQuiz(ctx, question.QuizID)
	if err != nil {
		return nil, err
	}
	if !canMutate(caller, authorID) {
		return nil, domain.ErrForbidden
	}

	question.Text = text
	question.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}
	return question, nil
}

func (s *quizService) DeleteQuestion(ctx context.Context, id string, caller *domain.TokenClaims) error {
	authorID, err := s.ownerOfQuestion(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(caller, authorID) {
		return domain.ErrForbidden
	}
	return s.repo.DeleteQuestion(ctx, id)
}

func (s *quizService) CreateAnswer(ctx context.Context, questionID, text string, value int, caller *domain.TokenClaims) (*domain.Answer, error) {
	authorID, err := s.ownerOfQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if !canMutate(caller, authorID) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	answer := &domain.Answer{
		ID:         ulid.Make().String(),
		QuestionID: questionID,
		Text:       text,
		Value:      value,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateAnswer(ctx, answer); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}
	return answer, nil
}

func (s *quizService) ListAnswers(ctx context.Context, questionID string) ([]*domain.Answer, error) {
	if _, err := s.repo.FindQuestionByID(ctx, questionID); err != nil {
		return nil, err
	}
	return s.repo.ListAnswers(ctx, questionID)
}

func (s *quizService) UpdateAnswer(ctx context.Context, id, text string, value int, caller *domain.TokenClaims) (*domain.Answer, error) {
	answer, err := s.repo.FindAnswerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	authorID, err := s.ownerOfQuestion(ctx, answer.QuestionID)
	if err != nil {
		return nil, err
	}
	if !canMutate(caller, authorID) {
		return nil, domain.ErrForbidden
	}

	answer.Text = text
	answer.Value = value
	answer.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateAnswer(ctx, answer); err != nil {
		return nil, fmt.Errorf("update answer: %w", err)
	}
	return answer, nil
}

func (s *quizService) DeleteAnswer(ctx context.Context, id string, caller *domain.TokenClaims) error {
	answer, err := s.repo.FindAnswerByID(ctx, id)
	if err != nil {
		return err
	}
	authorID, err := s.ownerOfQuestion(ctx, answer.QuestionID)
	if err != nil {
		return err
	}
	if !canMutate(caller, authorID) {
		return domain.ErrForbidden
	}
	return s.repo.DeleteAnswer(ctx, id)
}

func (s *quizService) CreateResult(ctx context.Context, quizID, text string, minValue, maxValue int, caller *domain.TokenClaims) (*domain.Result, error) {
	authorID, err := s.ownerOfQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !canMutate(caller, authorID) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	result := &domain.Result{
		ID:        ulid.Make().String(),
		QuizID:    quizID,
		Text:      text,
		MinValue:  minValue,
		MaxValue:  maxValue,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateResult(ctx, result); err != nil {
		return nil, fmt.Errorf("create result: %w", err)
	}
	return result, nil
}

func (s *quizService) ListResults(ctx context.Context, quizID string) ([]*domain.Result, error) {
	if _, err := s.repo.FindQuizByID(ctx, quizID); err != nil {
		return nil, err
	}
	return s.repo.ListResults(ctx, quizID)
}

func (s *quizService) UpdateResult(ctx context.Context, id, text string, minValue, maxValue int, caller *domain.TokenClaims) (*domain.Result, error) {
	result, err := s.repo.FindResultByID(ctx, id)
	if err != nil {
		return nil, err
	}
	authorID, err := s.ownerOfQuiz(ctx, result.QuizID)
	if err != nil {
		return nil, err
	}
	if !canMutate(caller, authorID) {
		return nil, domain.ErrForbidden
	}

	result.Text = text
	result.MinValue = minValue
	result.MaxValue = maxValue
	result.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateResult(ctx, result); err != nil {
		return nil, fmt.Errorf("update result: %w", err)
	}
	return result, nil
}

func (s *quizService) DeleteResult(ctx context.Context, id string, caller *domain.TokenClaims) error {
	result, err := s.repo.FindResultByID(ctx, id)
	if err != nil {
		return err
	}
	authorID, err := s.ownerOfQuiz(ctx, result.QuizID)
	if err != nil {
		return err
	}
	if !canMutate(caller, authorID) {
		return domain.ErrForbidden
	}
	return s.repo.DeleteResult(ctx, id)
}
