package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the indexes the application depends on. The unique
// indexes on identity username and email are the authoritative uniqueness
// mechanism under concurrent registration; service-level pre-checks are only
// a fast path.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	identityIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(usernameIndex),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(emailIndex),
		},
	}
	if _, err := db.Collection(identityCollection).Indexes().CreateMany(ctx, identityIndexes); err != nil {
		return fmt.Errorf("create identity indexes: %w", err)
	}

	quizIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "title", Value: 1}}},
	}
	if _, err := db.Collection(quizCollection).Indexes().CreateMany(ctx, quizIndexes); err != nil {
		return fmt.Errorf("create quiz indexes: %w", err)
	}

	childIndexes := map[string]bson.D{
		questionCollection: {{Key: "quiz_id", Value: 1}},
		answerCollection:   {{Key: "question_id", Value: 1}},
		resultCollection:   {{Key: "quiz_id", Value: 1}},
	}
	for coll, keys := range childIndexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys}); err != nil {
			return fmt.Errorf("create %s index: %w", coll, err)
		}
	}

	return nil
}
