package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/testcreator/quiz-system/internal/core/domain"
	"github.com/testcreator/quiz-system/internal/core/ports"
)

const (
	quizCollection     = "quizzes"
	questionCollection = "questions"
	answerCollection   = "answers"
	resultCollection   = "results"
)

// MongoQuizRepository persists quizzes and their questions, answers, and
// results across four collections.
type MongoQuizRepository struct {
	quizzes   *mongo.Collection
	questions *mongo.Collection
	answers   *mongo.Collection
	results   *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *MongoQuizRepository {
	return &MongoQuizRepository{
		quizzes:   db.Collection(quizCollection),
		questions: db.Collection(questionCollection),
		answers:   db.Collection(answerCollection),
		results:   db.Collection(resultCollection),
	}
}

// --- Quizzes ---

func (r *MongoQuizRepository) CreateQuiz(ctx context.Context, q *domain.Quiz) error {
	if _, err := r.quizzes.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("insert quiz: %w", err)
	}
	return nil
}

func (r *MongoQuizRepository) FindQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var q domain.Quiz
	if err := r.quizzes.FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuizNotFound
		}
		return nil, fmt.Errorf("find quiz: %w", err)
	}
	return &q, nil
}

func (r *MongoQuizRepository) UpdateQuiz(ctx context.Context, q *domain.Quiz) error {
	res, err := r.quizzes.ReplaceOne(ctx, bson.M{"_id": q.ID}, q)
	if err != nil {
		return fmt.Errorf("update quiz: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrQuizNotFound
	}
	return nil
}

// DeleteQuiz removes the quiz and cascades to its questions, answers, and
// results so no orphaned child documents remain.
func (r *MongoQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	res, err := r.quizzes.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuizNotFound
	}

	cursor, err := r.questions.Find(ctx, bson.M{"quiz_id": id}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return fmt.Errorf("delete quiz questions: %w", err)
	}
	var ids []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &ids); err != nil {
		return fmt.Errorf("delete quiz questions: %w", err)
	}
	if len(ids) > 0 {
		questionIDs := make([]string, len(ids))
		for i, doc := range ids {
			questionIDs[i] = doc.ID
		}
		if _, err := r.answers.DeleteMany(ctx, bson.M{"question_id": bson.M{"$in": questionIDs}}); err != nil {
			return fmt.Errorf("delete quiz answers: %w", err)
		}
	}
	if _, err := r.questions.DeleteMany(ctx, bson.M{"quiz_id": id}); err != nil {
		return fmt.Errorf("delete quiz questions: %w", err)
	}
	if _, err := r.results.DeleteMany(ctx, bson.M{"quiz_id": id}); err != nil {
		return fmt.Errorf("delete quiz results: %w", err)
	}
	return nil
}

func (r *MongoQuizRepository) ListLatest(ctx context.Context, limit int) ([]*domain.Quiz, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return r.listQuizzes(ctx, bson.M{}, opts)
}

func (r *MongoQuizRepository) ListByTitle(ctx context.Context, filter ports.ListQuizzesFilter) ([]*domain.Quiz, int64, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}

	total, err := r.quizzes.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count quizzes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "title", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))
	quizzes, err := r.listQuizzes(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return quizzes, total, nil
}

func (r *MongoQuizRepository) ListRandom(ctx context.Context, limit int) ([]*domain.Quiz, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": limit}}},
	}
	cursor, err := r.quizzes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sample quizzes: %w", err)
	}
	var quizzes []*domain.Quiz
	if err := cursor.All(ctx, &quizzes); err != nil {
		return nil, fmt.Errorf("sample quizzes: %w", err)
	}
	return quizzes, nil
}

func (r *MongoQuizRepository) IncrementViewCount(ctx context.Context, id string) error {
	res, err := r.quizzes.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"view_count": 1}})
	if err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrQuizNotFound
	}
	return nil
}

func (r *MongoQuizRepository) listQuizzes(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*domain.Quiz, error) {
	cursor, err := r.quizzes.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	var quizzes []*domain.Quiz
	if err := cursor.All(ctx, &quizzes); err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	return quizzes, nil
}

// --- Questions ---

func (r *MongoQuizRepository) CreateQuestion(ctx context.Context, q *domain.Question) error {
	if _, err := r.questions.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

func (r *MongoQuizRepository) FindQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	var q domain.Question
	if err := r.questions.FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}
	return &q, nil
}

func (r *MongoQuizRepository) ListQuestions(ctx context.Context, quizID string) ([]*domain.Question, error) {
	cursor, err := r.questions.Find(ctx, bson.M{"quiz_id": quizID})
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	var questions []*domain.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (r *MongoQuizRepository) UpdateQuestion(ctx context.Context, q *domain.Question) error {
	res, err := r.questions.ReplaceOne(ctx, bson.M{"_id": q.ID}, q)
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *MongoQuizRepository) DeleteQuestion(ctx context.Context, id string) error {
	res, err := r.questions.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	if _, err := r.answers.DeleteMany(ctx, bson.M{"question_id": id}); err != nil {
		return fmt.Errorf("delete question answers: %w", err)
	}
	return nil
}

// --- Answers ---

func (r *MongoQuizRepository) CreateAnswer(ctx context.Context, a *domain.Answer) error {
	if _, err := r.answers.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

func (r *MongoQuizRepository) FindAnswerByID(ctx context.Context, id string) (*domain.Answer, error) {
	var a domain.Answer
	if err := r.answers.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, fmt.Errorf("find answer: %w", err)
	}
	return &a, nil
}

func (r *MongoQuizRepository) ListAnswers(ctx context.Context, questionID string) ([]*domain.Answer, error) {
	cursor, err := r.answers.Find(ctx, bson.M{"question_id": questionID})
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	var answers []*domain.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	return answers, nil
}

func (r *MongoQuizRepository) UpdateAnswer(ctx context.Context, a *domain.Answer) error {
	res, err := r.answers.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return fmt.Errorf("update answer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAnswerNotFound
	}
	return nil
}

func (r *MongoQuizRepository) DeleteAnswer(ctx context.Context, id string) error {
	res, err := r.answers.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAnswerNotFound
	}
	return nil
}

// --- Results ---

func (r *MongoQuizRepository) CreateResult(ctx context.Context, res *domain.Result) error {
	if _, err := r.results.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (r *MongoQuizRepository) FindResultByID(ctx context.Context, id string) (*domain.Result, error) {
	var res domain.Result
	if err := r.results.FindOne(ctx, bson.M{"_id": id}).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("find result: %w", err)
	}
	return &res, nil
}

func (r *MongoQuizRepository) ListResults(ctx context.Context, quizID string) ([]*domain.Result, error) {
	cursor, err := r.results.Find(ctx, bson.M{"quiz_id": quizID})
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	var results []*domain.Result
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}

func (r *MongoQuizRepository) UpdateResult(ctx context.Context, res *domain.Result) error {
	updated, err := r.results.ReplaceOne(ctx, bson.M{"_id": res.ID}, res)
	if err != nil {
		return fmt.Errorf("update result: %w", err)
	}
	if updated.MatchedCount == 0 {
		return domain.ErrResultNotFound
	}
	return nil
}

func (r *MongoQuizRepository) DeleteResult(ctx context.Context, id string) error {
	res, err := r.results.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrResultNotFound
	}
	return nil
}
