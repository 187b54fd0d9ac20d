package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/testcreator/quiz-system/internal/api/metrics"
)

const viewTTL = time.Hour

// ViewDedupStore provides repeat-view checks backed by Redis, so one viewer
// refreshing a quiz inside the TTL window counts as a single view.
// Key format: view:<quiz_id>:<viewer_id>
type ViewDedupStore struct {
	client *redis.Client
}

// NewViewDedupStore creates a ViewDedupStore wrapping the given Redis client.
func NewViewDedupStore(client *redis.Client) *ViewDedupStore {
	return &ViewDedupStore{client: client}
}

// IsViewed reports whether this viewer already viewed the quiz within the window.
func (d *ViewDedupStore) IsViewed(ctx context.Context, quizID, viewerID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(quizID, viewerID)).Result()
	if err != nil {
		return false, fmt.Errorf("view dedup check: %w", err)
	}
	if n > 0 {
		metrics.QuizViewsDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.QuizViewsDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// MarkViewed records the view (expires after viewTTL).
func (d *ViewDedupStore) MarkViewed(ctx context.Context, quizID, viewerID string, _ time.Time) error {
	return d.client.Set(ctx, d.key(quizID, viewerID), "1", viewTTL).Err()
}

func (d *ViewDedupStore) key(quizID, viewerID string) string {
	return fmt.Sprintf("view:%s:%s", quizID, viewerID)
}
