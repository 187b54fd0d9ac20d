package ports

import (
	"context"
	"time"
)

// ViewEventInput is the DTO for one quiz view, passed from the transport
// layer to the view dispatcher.
type ViewEventInput struct {
	QuizID   string
	ViewerID string // identity id, or a request-scoped id for anonymous viewers
	Seen     time.Time
}

// ViewService processes quiz view events: deduplicates repeat views within a
// window and bumps the persistent view counter.
type ViewService interface {
	Process(ctx context.Context, event ViewEventInput) error
}
