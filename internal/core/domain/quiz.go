package domain

import "time"

// Quiz is an authored quiz: the aggregate root for questions and results.
type Quiz struct {
	ID          string    `json:"id"          bson:"_id"`
	AuthorID    string    `json:"author_id"   bson:"author_id"`
	Title       string    `json:"title"       bson:"title"`
	Description string    `json:"description" bson:"description,omitempty"`
	Text        string    `json:"text"        bson:"text,omitempty"`
	ViewCount   int64     `json:"view_count"  bson:"view_count"`
	CreatedAt   time.Time `json:"created_at"  bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"  bson:"updated_at"`
}

// Question belongs to a quiz and owns a set of answers.
type Question struct {
	ID        string    `json:"id"         bson:"_id"`
	QuizID    string    `json:"quiz_id"    bson:"quiz_id"`
	Text      string    `json:"text"       bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Answer is one selectable option for a question. Value contributes to the
// taker's score used to pick a result.
type Answer struct {
	ID         string    `json:"id"          bson:"_id"`
	QuestionID string    `json:"question_id" bson:"question_id"`
	Text       string    `json:"text"        bson:"text"`
	Value      int       `json:"value"       bson:"value"`
	CreatedAt  time.Time `json:"created_at"  bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"  bson:"updated_at"`
}

// Result is the outcome shown when a taker's score lands in [MinValue, MaxValue].
type Result struct {
	ID        string    `json:"id"         bson:"_id"`
	QuizID    string    `json:"quiz_id"    bson:"quiz_id"`
	Text      string    `json:"text"       bson:"text"`
	MinValue  int       `json:"min_value"  bson:"min_value"`
	MaxValue  int       `json:"max_value"  bson:"max_value"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
